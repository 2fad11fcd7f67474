package ports

// TimerCommand represents a user action during timer operation.
type TimerCommand string

const (
	// CmdStart starts the timer from idle.
	CmdStart TimerCommand = "start"

	// CmdPause pauses the running timer.
	CmdPause TimerCommand = "pause"

	// CmdResume resumes a paused timer.
	CmdResume TimerCommand = "resume"

	// CmdReset stops the timer and returns to an idle work phase.
	CmdReset TimerCommand = "reset"

	// CmdQuit exits the application.
	CmdQuit TimerCommand = "quit"
)
