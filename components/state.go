package components

import (
	cfg "github.com/automoto/batflap/config"
	"github.com/yohamta/donburi"
)

// GameStateData is the single authority over the global game state. Systems
// never assign Current; they Request a transition and ApplyStateTransitions
// commits it at the end of the frame.
type GameStateData struct {
	Current    cfg.GameStateID
	Previous   cfg.GameStateID
	StateTimer int // frames spent in Current

	next    cfg.GameStateID
	pending bool
}

// Request asks for a transition. The first request of a frame wins; later
// ones are dropped and Request returns false.
func (s *GameStateData) Request(next cfg.GameStateID) bool {
	if s.pending {
		return false
	}
	s.next = next
	s.pending = true
	return true
}

// Pending returns the transition requested this frame, if any.
func (s *GameStateData) Pending() (cfg.GameStateID, bool) {
	return s.next, s.pending
}

// Commit applies the pending request and reports whether the state changed.
func (s *GameStateData) Commit() bool {
	if !s.pending || s.next == s.Current {
		s.pending = false
		s.StateTimer++
		return false
	}
	s.Previous = s.Current
	s.Current = s.next
	s.StateTimer = 0
	s.pending = false
	return true
}

// JustEntered reports whether this is the first frame in Current.
func (s *GameStateData) JustEntered() bool {
	return s.StateTimer == 0
}

// PausedState is the pause toggle view of the game state.
func (s *GameStateData) PausedState() cfg.PausedStateID {
	if s.Current == cfg.StatePaused {
		return cfg.Paused
	}
	return cfg.Unpaused
}

var GameState = donburi.NewComponentType[GameStateData]()
