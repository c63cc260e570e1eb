package config

// GameStateID is the global game state. Exactly one is active at a time.
type GameStateID int

const (
	StateReady GameStateID = iota
	StatePlaying
	StatePaused
	StateGameover
)

func (s GameStateID) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameover:
		return "Gameover"
	}
	return "Unknown"
}

// PausedStateID is the pause toggle layered over Playing.
type PausedStateID int

const (
	Unpaused PausedStateID = iota
	Paused
)

// Not returns the opposite pause state.
func (p PausedStateID) Not() PausedStateID {
	if p == Unpaused {
		return Paused
	}
	return Unpaused
}

// GameOverReason tags why a run ended.
type GameOverReason int

const (
	ReasonCrashed GameOverReason = iota
)

// Message returns the text shown on the game over panel.
func (r GameOverReason) Message() string {
	switch r {
	case ReasonCrashed:
		return "You crashed!"
	}
	return ""
}

func (r GameOverReason) String() string {
	switch r {
	case ReasonCrashed:
		return "Crashed"
	}
	return "Unknown"
}
