package services

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/RandomEggs/randomEggsTracker/internal/domain"
	"github.com/RandomEggs/randomEggsTracker/internal/ports"
)

// TimerService owns the countdown state machine. All mutable timer state
// lives here, guarded by one mutex; the TUI, CLI and MCP layers receive
// value snapshots and drive transitions through the exported methods.
//
// A single 1-second ticker is live while the timer runs. The ticker is
// always stopped before a new one is armed, so a double start can never
// double-count a second.
type TimerService struct {
	mu    sync.Mutex
	state domain.TimerState

	sessions ports.SessionGateway
	notifier ports.Notifier

	ticker   *time.Ticker
	stopTick chan struct{}
	// tickInterval is one second in production; tests stretch it so they
	// can step the machine manually.
	tickInterval time.Duration

	listeners       []func(domain.TimerState)
	onPhaseComplete func(domain.Phase)
}

// NewTimerService creates a timer seeded with the configured durations.
func NewTimerService(sessions ports.SessionGateway, notifier ports.Notifier, work, brk time.Duration) *TimerService {
	return &TimerService{
		state:        domain.NewTimerState(work, brk),
		sessions:     sessions,
		notifier:     notifier,
		tickInterval: time.Second,
	}
}

// State returns a snapshot of the current timer state.
func (s *TimerService) State() domain.TimerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers a callback invoked with a state snapshot after every
// transition and tick. Callbacks must not call back into the service.
func (s *TimerService) Subscribe(fn func(domain.TimerState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// SetOnPhaseComplete registers a callback fired when a phase runs down to
// zero, after the session has been reported.
func (s *TimerService) SetOnPhaseComplete(fn func(domain.Phase)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onPhaseComplete = fn
}

// SetActiveTask attaches a task id to future session starts. A session that
// is already running keeps the task it was started with.
func (s *TimerService) SetActiveTask(taskID *int) {
	s.mu.Lock()
	s.state.TaskID = taskID
	snap := s.state
	s.mu.Unlock()
	s.publish(snap)
}

// Start begins the countdown from a non-running state. For a fresh work
// phase it first asks the backend for a session id; the countdown begins
// only once that call has resolved. A failed session start is logged and
// swallowed: the timer runs unrecorded and the end report is skipped.
func (s *TimerService) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.state.Running {
		s.mu.Unlock()
		return domain.ErrTimerRunning
	}
	needSession := s.state.Phase == domain.PhaseWork && s.state.SessionID == nil
	taskID := s.state.TaskID
	s.mu.Unlock()

	if needSession {
		id, err := s.sessions.StartSession(ctx, taskID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to start session: %v\n", err)
		} else {
			s.mu.Lock()
			s.state.SessionID = &id
			s.mu.Unlock()
		}
	}

	s.mu.Lock()
	if s.state.Running {
		s.mu.Unlock()
		return domain.ErrTimerRunning
	}
	s.state.Running = true
	s.armTicker()
	snap := s.state
	s.mu.Unlock()
	s.publish(snap)
	return nil
}

// Pause stops the ticker without touching the session or remaining time.
// Pausing a timer that is not running has no effect.
func (s *TimerService) Pause() {
	s.mu.Lock()
	if !s.state.Running {
		s.mu.Unlock()
		return
	}
	s.state.Running = false
	s.stopTicker()
	snap := s.state
	s.mu.Unlock()
	s.publish(snap)
}

// Resume continues a paused countdown. Resuming a running or exhausted
// timer has no effect.
func (s *TimerService) Resume() {
	s.mu.Lock()
	if s.state.Running || s.state.Remaining <= 0 {
		s.mu.Unlock()
		return
	}
	s.state.Running = true
	s.armTicker()
	snap := s.state
	s.mu.Unlock()
	s.publish(snap)
}

// Reset returns the timer to an idle work phase. Any active session
// reference is dropped without an end report.
func (s *TimerService) Reset() {
	s.mu.Lock()
	s.stopTicker()
	s.state.Running = false
	s.state.Phase = domain.PhaseWork
	s.state.Remaining = s.state.WorkDuration
	s.state.SessionID = nil
	snap := s.state
	s.mu.Unlock()
	s.publish(snap)
}

// SetWorkDuration changes the work duration while the timer is stopped.
// If the work phase is active its remaining time is re-seeded.
func (s *TimerService) SetWorkDuration(d time.Duration) error {
	return s.setDuration(domain.PhaseWork, d)
}

// SetBreakDuration changes the break duration while the timer is stopped.
// If the break phase is active its remaining time is re-seeded.
func (s *TimerService) SetBreakDuration(d time.Duration) error {
	return s.setDuration(domain.PhaseBreak, d)
}

func (s *TimerService) setDuration(phase domain.Phase, d time.Duration) error {
	if d <= 0 {
		return domain.ErrInvalidDuration
	}
	s.mu.Lock()
	if s.state.Running {
		s.mu.Unlock()
		return domain.ErrTimerRunning
	}
	if phase == domain.PhaseWork {
		s.state.WorkDuration = d
	} else {
		s.state.BreakDuration = d
	}
	if s.state.Phase == phase {
		s.state.Remaining = d
	}
	snap := s.state
	s.mu.Unlock()
	s.publish(snap)
	return nil
}

// Close stops the ticker. The service must not be used afterwards.
func (s *TimerService) Close() {
	s.mu.Lock()
	s.stopTicker()
	s.state.Running = false
	s.mu.Unlock()
}

// armTicker starts the repeating tick, stopping any previous ticker first.
// Callers must hold mu.
func (s *TimerService) armTicker() {
	s.stopTicker()
	ticker := time.NewTicker(s.tickInterval)
	stop := make(chan struct{})
	s.ticker = ticker
	s.stopTick = stop
	go func() {
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				s.tickOnce(stop)
			}
		}
	}()
}

// stopTicker cancels the live ticker, if any. Callers must hold mu.
func (s *TimerService) stopTicker() {
	if s.ticker != nil {
		s.ticker.Stop()
		close(s.stopTick)
		s.ticker = nil
		s.stopTick = nil
	}
}

// tickOnce advances the countdown by one second. The stop channel identifies
// the ticker that delivered the tick: one that raced with a stopTicker call
// finds its channel closed and drops the tick, preserving the at-most-one-
// active-tick invariant. Tests pass nil and step the machine directly.
func (s *TimerService) tickOnce(stop <-chan struct{}) {
	s.mu.Lock()
	if stop != nil {
		select {
		case <-stop:
			s.mu.Unlock()
			return
		default:
		}
	}
	if !s.state.Running {
		s.mu.Unlock()
		return
	}
	s.state.Remaining -= time.Second
	if s.state.Remaining > 0 {
		snap := s.state
		s.mu.Unlock()
		s.publish(snap)
		return
	}

	// Phase boundary: the ticker is stopped before any completion work so
	// the next phase always arms a fresh one.
	s.state.Remaining = 0
	s.state.Running = false
	s.stopTicker()
	finished := s.state.Phase
	sessionID := s.state.SessionID
	elapsed := s.state.Elapsed()
	breakDuration := s.state.BreakDuration
	s.state.SessionID = nil
	snap := s.state
	s.mu.Unlock()
	s.publish(snap)

	s.completePhase(finished, sessionID, elapsed, breakDuration)
}

// completePhase reports the finished phase and immediately starts the next
// one. Runs outside the mutex: the end-of-session call may block on the
// network and the countdown state must stay readable meanwhile.
func (s *TimerService) completePhase(finished domain.Phase, sessionID *int, elapsed, breakDuration time.Duration) {
	ctx := context.Background()

	if finished == domain.PhaseWork {
		if sessionID != nil {
			if err := s.sessions.EndSession(ctx, *sessionID, elapsed); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to record session: %v\n", err)
			}
		}
		if s.notifier != nil && s.notifier.IsEnabled() {
			if err := s.notifier.NotifyWorkComplete(breakDuration); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: notification failed: %v\n", err)
			}
		}
		s.firePhaseComplete(domain.PhaseWork)

		s.mu.Lock()
		s.state.Phase = domain.PhaseBreak
		s.state.Remaining = s.state.BreakDuration
		s.state.Running = true
		s.armTicker()
		snap := s.state
		s.mu.Unlock()
		s.publish(snap)
		return
	}

	if s.notifier != nil && s.notifier.IsEnabled() {
		if err := s.notifier.NotifyBreakComplete(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: notification failed: %v\n", err)
		}
	}
	s.firePhaseComplete(domain.PhaseBreak)

	s.mu.Lock()
	s.state.Phase = domain.PhaseWork
	s.state.Remaining = s.state.WorkDuration
	s.mu.Unlock()

	// The fresh work phase goes through Start so it acquires its own
	// session id before the countdown resumes.
	if err := s.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to restart timer: %v\n", err)
	}
}

func (s *TimerService) firePhaseComplete(phase domain.Phase) {
	s.mu.Lock()
	fn := s.onPhaseComplete
	s.mu.Unlock()
	if fn != nil {
		fn(phase)
	}
}

func (s *TimerService) publish(snap domain.TimerState) {
	s.mu.Lock()
	listeners := make([]func(domain.TimerState), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(snap)
	}
}
