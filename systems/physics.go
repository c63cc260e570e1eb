package systems

import (
	"github.com/automoto/batflap/components"
	cfg "github.com/automoto/batflap/config"
	"github.com/automoto/batflap/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// The integrator is split across systems that must run in this order each
// frame: UpdatePlayerInput (acceleration and flap impulses), UpdateGravity,
// UpdateMovement, UpdateFriction, UpdateWrap. Gravity lands before the
// position step and friction after it.

// UpdateGravity pulls every entity with Gravity down over the frame time.
func UpdateGravity(ecs *ecs.ECS) {
	dt := GetOrCreateClock(ecs).Delta
	components.Gravity.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Velocity) {
			return
		}
		components.Velocity.Get(e).AddGravity(components.Gravity.Get(e), dt)
	})
}

// UpdateMovement integrates position from velocity.
func UpdateMovement(ecs *ecs.ECS) {
	dt := GetOrCreateClock(ecs).DeltaSeconds()
	components.Velocity.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Transform) {
			return
		}
		v := components.Velocity.Get(e)
		t := components.Transform.Get(e)
		t.Position.X += v.X * dt
		t.Position.Y += v.Y * dt
	})
}

// UpdateFriction decays velocity after it has been applied to position.
func UpdateFriction(ecs *ecs.ECS) {
	dt := GetOrCreateClock(ecs).Delta
	components.Friction.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Velocity) {
			return
		}
		components.Velocity.Get(e).AddFriction(components.Friction.Get(e), dt)
	})
}

// UpdateWrap teleports wrapping entities that left the screen horizontally
// to the opposite edge.
func UpdateWrap(ecs *ecs.ECS) {
	width := float64(cfg.C.Width)
	tags.WrappingMovement.Each(ecs.World, func(e *donburi.Entry) {
		t := components.Transform.Get(e)
		t.Position.X = wrapX(t.Position.X, width)
	})
}

// wrapX shifts x by one width when it is beyond ±width/2.
func wrapX(x, width float64) float64 {
	limit := width / 2
	if x < -limit {
		return x + width
	}
	if x > limit {
		return x - width
	}
	return x
}

// clampSpeed limits v to [-limit, limit].
func clampSpeed(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
