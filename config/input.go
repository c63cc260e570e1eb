package config

import "github.com/hajimehoshi/ebiten/v2"

// GameInput is a device-independent gameplay action.
type GameInput int

const (
	GameInputStart GameInput = iota
	GameInputFlap
	GameInputScreetch
	GameInputReset
	GameInputCount // Must be last - used for array sizing
)

func (g GameInput) String() string {
	switch g {
	case GameInputStart:
		return "Start"
	case GameInputFlap:
		return "Flap"
	case GameInputScreetch:
		return "Screetch"
	case GameInputReset:
		return "Reset"
	}
	return "Unknown"
}

// MenuInput is a device-independent menu navigation action.
type MenuInput int

const (
	MenuInputUp MenuInput = iota
	MenuInputDown
	MenuInputLeft
	MenuInputRight
	MenuInputAccept
	MenuInputBack
	MenuInputCount // Must be last - used for array sizing
)

func (m MenuInput) String() string {
	switch m {
	case MenuInputUp:
		return "Up"
	case MenuInputDown:
		return "Down"
	case MenuInputLeft:
		return "Left"
	case MenuInputRight:
		return "Right"
	case MenuInputAccept:
		return "Accept"
	case MenuInputBack:
		return "Back"
	}
	return "Unknown"
}

// InputBinding represents the keys and buttons that trigger an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
	MouseButtons           []ebiten.MouseButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	// Order matters: actions are emitted in slice order within a frame.
	GameBindings [GameInputCount]InputBinding
	MenuBindings [MenuInputCount]InputBinding

	// Held keys that push the directional accumulator
	LeftKeys  []ebiten.Key
	RightKeys []ebiten.Key

	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.08,
		LeftKeys:       []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		RightKeys:      []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
	}

	Input.GameBindings[GameInputStart] = InputBinding{
		Keys: []ebiten.Key{ebiten.KeyEscape},
		// Start / Options button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonCenterRight,
		},
	}
	Input.GameBindings[GameInputFlap] = InputBinding{
		Keys: []ebiten.Key{ebiten.KeySpace},
		// A / Cross button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightBottom,
		},
		MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
	}
	Input.GameBindings[GameInputScreetch] = InputBinding{
		Keys: []ebiten.Key{ebiten.KeyControlLeft},
		// X / Square button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightLeft,
		},
		MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonRight},
	}
	Input.GameBindings[GameInputReset] = InputBinding{
		Keys: []ebiten.Key{ebiten.KeyR},
		// Back / Share button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonCenterLeft,
		},
	}

	Input.MenuBindings[MenuInputUp] = InputBinding{
		Keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyK},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftTop,
		},
	}
	Input.MenuBindings[MenuInputDown] = InputBinding{
		Keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyJ},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftBottom,
		},
	}
	Input.MenuBindings[MenuInputLeft] = InputBinding{
		Keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyH},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftLeft,
		},
	}
	Input.MenuBindings[MenuInputRight] = InputBinding{
		Keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyL},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftRight,
		},
	}
	Input.MenuBindings[MenuInputAccept] = InputBinding{
		Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyE},
	}
	Input.MenuBindings[MenuInputBack] = InputBinding{
		Keys: []ebiten.Key{ebiten.KeyEscape},
		// B / Circle button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightRight,
		},
	}
}
