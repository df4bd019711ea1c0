package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run displays the countdown and blocks until the user quits or the context
// is canceled. Terminal initialization failure is fatal; there is no
// fallback rendering path.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(NewModel(opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		// Context cancellation (SIGINT/SIGTERM) is a normal way out,
		// equivalent to an explicit quit.
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("failed to run timer display: %w", err)
	}
	return nil
}
