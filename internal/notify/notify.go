// Package notify delivers the expiry notification.
package notify

import (
	"log/slog"

	"github.com/gen2brain/beeep"
)

// TimeUp raises a desktop notification that the countdown finished, with an
// audible beep where the platform supports one. The beep is best-effort;
// only the notification result is returned.
func TimeUp() error {
	if err := beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration); err != nil {
		slog.Debug("beep failed", "error", err)
	}
	return beeep.Notify("tock", "Time's up!", "")
}
