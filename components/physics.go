package components

import (
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TransformData is a world position. The origin is the screen centre, +Y up.
type TransformData struct {
	Position math.Vec2
}

var Transform = donburi.NewComponentType[TransformData]()

// VelocityData is in px/s.
type VelocityData struct {
	math.Vec2
}

// AddGravity subtracts the gravity acceleration over dt from Y.
func (v *VelocityData) AddGravity(g *GravityData, dt time.Duration) {
	v.Y -= g.Acceleration * dt.Seconds()
}

// AddFriction decays both axes by factor*dt.
func (v *VelocityData) AddFriction(f *FrictionData, dt time.Duration) {
	scale := 1 - f.Factor*dt.Seconds()
	v.X *= scale
	v.Y *= scale
}

var Velocity = donburi.NewComponentType[VelocityData]()

// GravityData is a constant downward acceleration in px/s².
type GravityData struct {
	Acceleration float64
}

var Gravity = donburi.NewComponentType[GravityData]()

// FrictionData is a per-second multiplicative velocity decay.
type FrictionData struct {
	Factor float64
}

var Friction = donburi.NewComponentType[FrictionData]()
