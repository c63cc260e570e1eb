package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// RawInputData is the device state sampled this frame. It is the only
// input data written from ebiten; translation reads from here so it can run
// without a window.
type RawInputData struct {
	Focused bool

	// Edge-triggered this frame
	KeysJustPressed    []ebiten.Key
	ButtonsJustPressed []ebiten.StandardGamepadButton
	MouseJustPressed   []ebiten.MouseButton

	// Level-triggered this frame
	KeysPressed []ebiten.Key
	StickX      []float64 // left stick horizontal axis, one per gamepad
}

// Clear empties every slice while keeping capacity for the next poll.
func (r *RawInputData) Clear() {
	r.KeysJustPressed = r.KeysJustPressed[:0]
	r.ButtonsJustPressed = r.ButtonsJustPressed[:0]
	r.MouseJustPressed = r.MouseJustPressed[:0]
	r.KeysPressed = r.KeysPressed[:0]
	r.StickX = r.StickX[:0]
}

var RawInput = donburi.NewComponentType[RawInputData]()

// DirectionalInputData sums horizontal intent from every source this frame.
// It is cleared once per frame, after physics and facing have read it.
type DirectionalInputData struct {
	raw float64
}

func (d *DirectionalInputData) AddLeft() {
	d.raw -= 1.0
}

func (d *DirectionalInputData) AddRight() {
	d.raw += 1.0
}

// AddValue adds an analog contribution when it lies outside the deadzone.
func (d *DirectionalInputData) AddValue(v, deadzone float64) {
	if v > deadzone || v < -deadzone {
		d.raw += v
	}
}

func (d *DirectionalInputData) Reset() {
	d.raw = 0
}

// Normalized returns the summed input clamped to [-1, 1].
func (d *DirectionalInputData) Normalized() float64 {
	switch {
	case d.raw > 1:
		return 1
	case d.raw < -1:
		return -1
	}
	return d.raw
}

var DirectionalInput = donburi.NewComponentType[DirectionalInputData]()
