// Package notification delivers desktop notifications for phase changes.
package notification

import (
	"fmt"
	"sync"
	"time"

	"github.com/gen2brain/beeep"

	"github.com/RandomEggs/randomEggsTracker/internal/config"
	"github.com/RandomEggs/randomEggsTracker/internal/ports"
)

// Notifier sends desktop notifications through the system notifier.
// The first delivery failure latches the notifier as unavailable and no
// further attempts are made; re-enabling does not clear the latch.
type Notifier struct {
	mu          sync.Mutex
	enabled     bool
	sound       bool
	unavailable bool
}

// Ensure Notifier implements the notification port.
var _ ports.Notifier = (*Notifier)(nil)

// New creates a notifier from the notification configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	n := &Notifier{}
	if cfg != nil {
		n.enabled = cfg.Enabled
		n.sound = cfg.Sound
	}
	return n
}

// NotifyWorkComplete announces the end of a work phase and the break ahead.
func (n *Notifier) NotifyWorkComplete(breakDuration time.Duration) error {
	title := "🍅 Work Complete!"
	minutes := int(breakDuration.Round(time.Minute).Minutes())
	message := "Great job! Take a short break."
	if minutes >= 1 {
		message = fmt.Sprintf("Great job! Take a %d-minute break.", minutes)
	}
	return n.notify(title, message)
}

// NotifyBreakComplete announces the end of a break.
func (n *Notifier) NotifyBreakComplete() error {
	return n.notify("🌿 Break Over!", "Ready to focus?")
}

// IsEnabled reports the user's notification toggle.
func (n *Notifier) IsEnabled() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.enabled
}

// SetEnabled flips the user's notification toggle at runtime.
func (n *Notifier) SetEnabled(enabled bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.enabled = enabled
}

func (n *Notifier) notify(title, message string) error {
	n.mu.Lock()
	if !n.enabled || n.unavailable {
		n.mu.Unlock()
		return nil
	}
	sound := n.sound
	n.mu.Unlock()

	var err error
	if sound {
		err = beeep.Alert(title, message, "")
	} else {
		err = beeep.Notify(title, message, "")
	}
	if err != nil {
		n.mu.Lock()
		n.unavailable = true
		n.mu.Unlock()
		return fmt.Errorf("desktop notification unavailable: %w", err)
	}
	return nil
}
