package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw device state from ebiten into RawInput.
// Must run BEFORE UpdateInputTranslation in the system order.
func UpdateInput(ecs *ecs.ECS) {
	raw := GetOrCreateRawInput(ecs)
	raw.Clear()

	raw.Focused = ebiten.IsFocused()
	raw.KeysJustPressed = inpututil.AppendJustPressedKeys(raw.KeysJustPressed)
	raw.KeysPressed = inpututil.AppendPressedKeys(raw.KeysPressed)

	for btn := ebiten.MouseButton(0); btn <= ebiten.MouseButtonMax; btn++ {
		if inpututil.IsMouseButtonJustPressed(btn) {
			raw.MouseJustPressed = append(raw.MouseJustPressed, btn)
		}
	}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for btn := ebiten.StandardGamepadButton(0); btn <= ebiten.StandardGamepadButtonMax; btn++ {
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			// One emission per button no matter how many pads pressed it
			if inpututil.IsStandardGamepadButtonJustPressed(gpID, btn) {
				raw.ButtonsJustPressed = append(raw.ButtonsJustPressed, btn)
				break
			}
		}
	}

	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		raw.StickX = append(raw.StickX,
			ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal))
	}
}
