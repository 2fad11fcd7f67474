package ports

import "time"

// Notifier delivers best-effort desktop notifications on phase boundaries.
// Delivery failures are reported to the caller but never retried; a timer
// never stops because a notification could not be shown.
// This is a driven port (implemented by adapters).
type Notifier interface {
	// NotifyWorkComplete announces a finished work phase and the length of
	// the break that follows.
	NotifyWorkComplete(breakDuration time.Duration) error

	// NotifyBreakComplete announces the end of a break.
	NotifyBreakComplete() error

	// IsEnabled reports whether notifications are currently on.
	IsEnabled() bool

	// SetEnabled toggles notification delivery at runtime.
	SetEnabled(enabled bool)
}
