package tui

import "strings"

// Seven-segment-style glyphs for the readout, five rows tall. Only the
// characters that duration.Format emits are defined.
const glyphRows = 5

var glyphs = map[rune][]string{
	'0': {
		"█████",
		"█   █",
		"█   █",
		"█   █",
		"█████",
	},
	'1': {
		"    █",
		"    █",
		"    █",
		"    █",
		"    █",
	},
	'2': {
		"█████",
		"    █",
		"█████",
		"█    ",
		"█████",
	},
	'3': {
		"█████",
		"    █",
		"█████",
		"    █",
		"█████",
	},
	'4': {
		"█   █",
		"█   █",
		"█████",
		"    █",
		"    █",
	},
	'5': {
		"█████",
		"█    ",
		"█████",
		"    █",
		"█████",
	},
	'6': {
		"█████",
		"█    ",
		"█████",
		"█   █",
		"█████",
	},
	'7': {
		"█████",
		"    █",
		"    █",
		"    █",
		"    █",
	},
	'8': {
		"█████",
		"█   █",
		"█████",
		"█   █",
		"█████",
	},
	'9': {
		"█████",
		"█   █",
		"█████",
		"    █",
		"█████",
	},
	':': {
		" ",
		"█",
		" ",
		"█",
		" ",
	},
}

// renderBig renders s using the block glyphs, one space between characters.
// Characters without a glyph are skipped.
func renderBig(s string) string {
	rows := make([]string, glyphRows)
	for _, r := range s {
		g, ok := glyphs[r]
		if !ok {
			continue
		}
		for i := range rows {
			if rows[i] != "" {
				rows[i] += " "
			}
			rows[i] += g[i]
		}
	}
	return strings.Join(rows, "\n")
}
