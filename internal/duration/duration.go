// Package duration parses and formats HH:MM:SS countdown durations.
package duration

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatError reports a duration argument that does not match HH:MM:SS.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid duration %q: %s", e.Input, e.Reason)
}

// Parse converts an HH:MM:SS string into a duration. The string must have
// exactly three colon-separated fields of one or more digits each. Minutes
// and seconds must be below 60; hours are unbounded so timers longer than
// 24h work. Malformed input returns a *FormatError, never a clamped value.
func Parse(s string) (time.Duration, error) {
	fields := strings.Split(s, ":")
	if len(fields) != 3 {
		return 0, &FormatError{Input: s, Reason: "expected three colon-separated fields (HH:MM:SS)"}
	}

	var parts [3]int64
	names := [3]string{"hours", "minutes", "seconds"}
	for i, f := range fields {
		if !isDigits(f) {
			return 0, &FormatError{Input: s, Reason: fmt.Sprintf("%s field %q is not a number", names[i], f)}
		}
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return 0, &FormatError{Input: s, Reason: fmt.Sprintf("%s field %q is out of range", names[i], f)}
		}
		parts[i] = n
	}

	if parts[1] > 59 {
		return 0, &FormatError{Input: s, Reason: fmt.Sprintf("minutes must be in [0,59], got %d", parts[1])}
	}
	if parts[2] > 59 {
		return 0, &FormatError{Input: s, Reason: fmt.Sprintf("seconds must be in [0,59], got %d", parts[2])}
	}

	// Hours are unbounded by the grammar but not by the representation:
	// both the hour multiplication and the conversion to nanoseconds must
	// stay within int64, or a huge timer would wrap negative.
	const maxSeconds = math.MaxInt64 / int64(time.Second)
	if parts[0] > (maxSeconds-parts[1]*60-parts[2])/3600 {
		return 0, &FormatError{Input: s, Reason: "duration too large"}
	}

	total := parts[0]*3600 + parts[1]*60 + parts[2]
	return time.Duration(total) * time.Second, nil
}

// isDigits reports whether s is one or more ASCII digits. ParseInt alone
// would accept a leading sign, which the HH:MM:SS grammar does not.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Format renders a duration as zero-padded hh:mm:ss for display. Partial
// seconds round up, so the readout only shows 00:00:00 once the countdown
// has actually reached zero. Negative durations format as 00:00:00, and the
// hours field widens past two digits when needed.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64((d + time.Second - 1) / time.Second)
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
