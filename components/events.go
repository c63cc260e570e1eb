package components

import (
	cfg "github.com/automoto/batflap/config"
	"github.com/yohamta/donburi"
)

// GameOverEvent reports why the current run should end.
type GameOverEvent struct {
	Reason cfg.GameOverReason
}

// EventsData holds the per-frame semantic event queues. Producers append
// during the frame, consumers read later in the same frame, and EndFrame
// clears everything.
type EventsData struct {
	GameInputs []cfg.GameInput
	MenuInputs []cfg.MenuInput
	GameOvers  []GameOverEvent
}

// HasGameInput reports whether the input was emitted this frame.
func (e *EventsData) HasGameInput(in cfg.GameInput) bool {
	for _, gi := range e.GameInputs {
		if gi == in {
			return true
		}
	}
	return false
}

// HasMenuInput reports whether the input was emitted this frame.
func (e *EventsData) HasMenuInput(in cfg.MenuInput) bool {
	for _, mi := range e.MenuInputs {
		if mi == in {
			return true
		}
	}
	return false
}

// Clear empties every queue while keeping capacity.
func (e *EventsData) Clear() {
	e.GameInputs = e.GameInputs[:0]
	e.MenuInputs = e.MenuInputs[:0]
	e.GameOvers = e.GameOvers[:0]
}

var Events = donburi.NewComponentType[EventsData]()
