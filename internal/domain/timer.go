package domain

import (
	"math"
	"time"
)

// Phase represents which half of the pomodoro cycle is active.
type Phase string

const (
	PhaseWork  Phase = "work"
	PhaseBreak Phase = "break"
)

// Label returns a human-readable label for the phase.
func (p Phase) Label() string {
	if p == PhaseBreak {
		return "Break"
	}
	return "Work"
}

// TimerState is a snapshot of the countdown state machine. The timer engine
// owns the mutable copy; everyone else receives values.
type TimerState struct {
	WorkDuration  time.Duration
	BreakDuration time.Duration
	Remaining     time.Duration
	Phase         Phase
	Running       bool
	SessionID     *int
	TaskID        *int
}

// NewTimerState returns an idle work-phase state seeded from the configured
// durations.
func NewTimerState(work, brk time.Duration) TimerState {
	return TimerState{
		WorkDuration:  work,
		BreakDuration: brk,
		Remaining:     work,
		Phase:         PhaseWork,
	}
}

// PhaseDuration returns the configured duration of the active phase.
func (s TimerState) PhaseDuration() time.Duration {
	if s.Phase == PhaseBreak {
		return s.BreakDuration
	}
	return s.WorkDuration
}

// Elapsed returns how much of the active phase has passed. Time spent paused
// counts as elapsed; this is the duration reported for finished sessions.
func (s TimerState) Elapsed() time.Duration {
	return s.PhaseDuration() - s.Remaining
}

// Progress returns the completion fraction of the active phase (0.0 to 1.0).
func (s TimerState) Progress() float64 {
	total := s.PhaseDuration()
	if total <= 0 {
		return 0
	}
	progress := 1 - float64(s.Remaining)/float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// Percent returns the progress as a rounded whole percentage.
func (s TimerState) Percent() int {
	return int(math.Round(s.Progress() * 100))
}

// Idle reports whether the timer sits at the top of an untouched work phase.
func (s TimerState) Idle() bool {
	return !s.Running && s.Phase == PhaseWork && s.Remaining == s.WorkDuration
}
