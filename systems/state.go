package systems

import (
	"log"

	"github.com/automoto/batflap/components"
	cfg "github.com/automoto/batflap/config"
	"github.com/yohamta/donburi/ecs"
)

// inputTransition returns the state a game input moves current to.
func inputTransition(current cfg.GameStateID, input cfg.GameInput) (cfg.GameStateID, bool) {
	if input == cfg.GameInputReset {
		if current == cfg.StateGameover || current == cfg.StatePaused {
			return cfg.StateReady, true
		}
		return current, false
	}
	switch current {
	case cfg.StateReady:
		if input == cfg.GameInputFlap || input == cfg.GameInputScreetch {
			return cfg.StatePlaying, true
		}
	case cfg.StatePlaying:
		if input == cfg.GameInputStart {
			return cfg.StatePaused, true
		}
	case cfg.StatePaused:
		// Flap resumes directly instead of toggling
		if input == cfg.GameInputStart || input == cfg.GameInputFlap {
			return cfg.StatePlaying, true
		}
	}
	return current, false
}

// UpdateStateInput requests the transition for the first game input this
// frame that matches one. Covers game start, pause toggle and quick resume.
// Must run AFTER UpdateInputTranslation.
func UpdateStateInput(ecs *ecs.ECS) {
	state := GetOrCreateGameState(ecs)
	events := GetOrCreateEvents(ecs)

	for _, input := range events.GameInputs {
		next, ok := inputTransition(state.Current, input)
		if !ok {
			continue
		}
		// Reset also rewinds the player, UpdatePlayerReset requests it
		if input != cfg.GameInputReset {
			state.Request(next)
		}
		return
	}
}

// UpdateGameOver turns crash reports into the Gameover transition.
// Must run AFTER CheckCrashed.
func UpdateGameOver(ecs *ecs.ECS) {
	state := GetOrCreateGameState(ecs)
	events := GetOrCreateEvents(ecs)

	if len(events.GameOvers) == 0 || state.Current != cfg.StatePlaying {
		return
	}
	if state.Request(cfg.StateGameover) {
		GetOrCreateGameOver(ecs).Reason = events.GameOvers[0].Reason
	}
}

// ApplyStateTransitions commits the transition requested this frame.
// Must run after every system that can request one.
func ApplyStateTransitions(ecs *ecs.ECS) {
	state := GetOrCreateGameState(ecs)
	if state.Commit() {
		log.Printf("game state: %s -> %s", state.Previous, state.Current)
		onEnterState(ecs, state)
	}
}

// onEnterState opens the menu that belongs to the new state.
func onEnterState(ecs *ecs.ECS, state *components.GameStateData) {
	menu := GetOrCreateMenu(ecs)
	switch state.Current {
	case cfg.StatePaused:
		menu.Open(components.MenuItemResume, components.MenuItemRestart)
	case cfg.StateGameover:
		menu.Open(components.MenuItemRestart)
		startGameOverFade(ecs)
	default:
		menu.Close()
	}
}
