package systems

import (
	"slices"

	cfg "github.com/automoto/batflap/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInputTranslation turns this frame's raw device state into semantic
// game and menu inputs and feeds the directional accumulator. It only
// classifies; game state is left to later systems.
// Must run AFTER UpdateInput and BEFORE any consumer. Wrap with
// WithFocusCheck.
func UpdateInputTranslation(ecs *ecs.ECS) {
	raw := GetOrCreateRawInput(ecs)
	events := GetOrCreateEvents(ecs)

	// Keyboard, then gamepad, then mouse. At most one emission per action
	// per source kind.
	for id := range cfg.GameInputCount {
		if containsAny(raw.KeysJustPressed, cfg.Input.GameBindings[id].Keys) {
			events.GameInputs = append(events.GameInputs, id)
		}
	}
	for id := range cfg.GameInputCount {
		if containsAny(raw.ButtonsJustPressed, cfg.Input.GameBindings[id].StandardGamepadButtons) {
			events.GameInputs = append(events.GameInputs, id)
		}
	}
	for id := range cfg.GameInputCount {
		if containsAny(raw.MouseJustPressed, cfg.Input.GameBindings[id].MouseButtons) {
			events.GameInputs = append(events.GameInputs, id)
		}
	}

	for id := range cfg.MenuInputCount {
		binding := cfg.Input.MenuBindings[id]
		if containsAny(raw.KeysJustPressed, binding.Keys) ||
			containsAny(raw.ButtonsJustPressed, binding.StandardGamepadButtons) {
			events.MenuInputs = append(events.MenuInputs, id)
		}
	}

	direction := GetOrCreateDirectionalInput(ecs)
	for _, key := range raw.KeysPressed {
		if slices.Contains(cfg.Input.LeftKeys, key) {
			direction.AddLeft()
		}
		if slices.Contains(cfg.Input.RightKeys, key) {
			direction.AddRight()
		}
	}
	for _, x := range raw.StickX {
		direction.AddValue(x, cfg.Input.AnalogDeadzone)
	}
}

func containsAny[T comparable](pressed, bound []T) bool {
	for _, b := range bound {
		if slices.Contains(pressed, b) {
			return true
		}
	}
	return false
}
