package systems

import (
	"time"

	"github.com/automoto/batflap/archetypes"
	"github.com/automoto/batflap/components"
	cfg "github.com/automoto/batflap/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// timeNow is swapped in tests.
var timeNow = time.Now

// frameEntry returns the entity holding the per-frame singletons, creating it
// on first use.
func frameEntry(e *ecs.ECS) *donburi.Entry {
	if entry, ok := components.Events.First(e.World); ok {
		return entry
	}
	return archetypes.Frame.Spawn(e)
}

// GetOrCreateEvents returns the per-frame event queues.
func GetOrCreateEvents(e *ecs.ECS) *components.EventsData {
	return components.Events.Get(frameEntry(e))
}

// GetOrCreateGameState returns the global game state.
func GetOrCreateGameState(e *ecs.ECS) *components.GameStateData {
	return components.GameState.Get(frameEntry(e))
}

// GetOrCreateDirectionalInput returns the horizontal input accumulator.
func GetOrCreateDirectionalInput(e *ecs.ECS) *components.DirectionalInputData {
	return components.DirectionalInput.Get(frameEntry(e))
}

// GetOrCreateRawInput returns the device state sampled this frame.
func GetOrCreateRawInput(e *ecs.ECS) *components.RawInputData {
	return components.RawInput.Get(frameEntry(e))
}

// GetOrCreateClock returns the frame clock.
func GetOrCreateClock(e *ecs.ECS) *components.ClockData {
	return components.Clock.Get(frameEntry(e))
}

// GetOrCreateMenu returns the open menu.
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	return components.Menu.Get(frameEntry(e))
}

// GetOrCreateGameOver returns the game over panel state.
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	return components.GameOver.Get(frameEntry(e))
}

// GetOrCreateAudio returns the SFX queue.
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	return components.Audio.Get(frameEntry(e))
}

// UpdateClock measures the time since the previous frame. The first frame
// assumes one logical tick.
func UpdateClock(e *ecs.ECS) {
	clock := GetOrCreateClock(e)
	now := timeNow()
	if clock.Last.IsZero() {
		clock.Delta = time.Second / time.Duration(cfg.C.TPS)
	} else {
		clock.Delta = now.Sub(clock.Last)
	}
	clock.Last = now
}

// EndFrame is the frame boundary: the accumulator and every event queue are
// cleared after all consumers ran. Must be the last system.
func EndFrame(e *ecs.ECS) {
	GetOrCreateDirectionalInput(e).Reset()
	GetOrCreateEvents(e).Clear()
}

// WithState wraps a system to run only while the game is in state.
func WithState(state cfg.GameStateID, system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetOrCreateGameState(e).Current != state {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to run only while playing and unpaused.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithState(cfg.StatePlaying, system)
}

// WithFocusCheck wraps a system to skip execution when the window has no
// focus.
func WithFocusCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !GetOrCreateRawInput(e).Focused {
			return
		}
		system(e)
	}
}
