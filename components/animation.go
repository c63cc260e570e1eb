package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// AnimationTimerData drives a one-shot frame cycle. Start arms it, every
// completed frame period advances the frame, and running past the last frame
// wraps to 0 and pauses until the next Start.
type AnimationTimerData struct {
	frames  int
	period  time.Duration
	elapsed time.Duration
	paused  bool
	current int
}

// NewAnimationTimer returns a stopped timer that cycles through frames over
// total.
func NewAnimationTimer(frames int, total time.Duration) AnimationTimerData {
	if frames < 1 {
		frames = 1
	}
	return AnimationTimerData{
		frames: frames,
		period: total / time.Duration(frames),
		paused: true,
	}
}

// Start rewinds to frame 0 and runs.
func (a *AnimationTimerData) Start() {
	a.elapsed = 0
	a.paused = false
	a.current = 0
}

// Stop rewinds to frame 0 and halts.
func (a *AnimationTimerData) Stop() {
	a.elapsed = 0
	a.paused = true
	a.current = 0
}

// Tick advances by dt and returns the frame to display. Slow frames catch up
// by however many periods completed.
func (a *AnimationTimerData) Tick(dt time.Duration) int {
	if a.paused || a.period <= 0 {
		return a.current
	}
	a.elapsed += dt
	completed := int(a.elapsed / a.period)
	a.elapsed %= a.period
	a.current += completed
	if a.current >= a.frames {
		a.paused = true
		a.elapsed = 0
		a.current = 0
	}
	return a.current
}

func (a *AnimationTimerData) Frame() int {
	return a.current
}

func (a *AnimationTimerData) Frames() int {
	return a.frames
}

func (a *AnimationTimerData) Paused() bool {
	return a.paused
}

var AnimationTimer = donburi.NewComponentType[AnimationTimerData]()

// Facing is the way a sprite is facing.
type Facing int

const (
	Forward Facing = iota
	Backward
)

type DirectionData struct {
	Facing Facing
}

// Face updates facing from a signed horizontal input. Zero keeps the current
// facing.
func (d *DirectionData) Face(input float64) {
	switch {
	case input < 0:
		d.Facing = Backward
	case input > 0:
		d.Facing = Forward
	}
}

var Direction = donburi.NewComponentType[DirectionData]()
