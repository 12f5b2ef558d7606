package domain

// SessionState is the mode the tracker is currently in
type SessionState string

const (
	StateBreak SessionState = "break"
	StateIdle  SessionState = "idle"
	StateWork  SessionState = "work"
)

// Status symbols (Unicode)
const (
	SymbolBreak = "◐" // Cyan - on a break
	SymbolIdle  = "○" // Gray - not tracking
	SymbolWork  = "●" // Green - working
)

// TimerID identifies one of the countdown timers
type TimerID string

const (
	TimerBreak TimerID = "break"
	TimerWork  TimerID = "work"
)

// Valid reports whether s is one of the known session states
func (s SessionState) Valid() bool {
	switch s {
	case StateBreak, StateIdle, StateWork:
		return true
	}
	return false
}

// Symbol returns the status symbol for the state
func (s SessionState) Symbol() string {
	switch s {
	case StateWork:
		return SymbolWork
	case StateBreak:
		return SymbolBreak
	default:
		return SymbolIdle
	}
}

// TimerIDFor returns the timer bound to a session state.
// IDLE has no timer.
func TimerIDFor(s SessionState) (TimerID, bool) {
	switch s {
	case StateWork:
		return TimerWork, true
	case StateBreak:
		return TimerBreak, true
	}
	return "", false
}

// ActivityKind returns the activity kind recorded for the timer
func (id TimerID) ActivityKind() ActivityKind {
	if id == TimerBreak {
		return ActivityBreak
	}
	return ActivityWork
}
