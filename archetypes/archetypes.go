package archetypes

import (
	"github.com/automoto/batflap/components"
	cfg "github.com/automoto/batflap/config"
	"github.com/automoto/batflap/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		tags.WrappingMovement,
		components.Player,
		components.Transform,
		components.Velocity,
		components.Gravity,
		components.Friction,
		components.AnimationTimer,
		components.Direction,
		components.Sprite,
	)
	// Frame holds the per-frame singletons shared by every system.
	Frame = newArchetype(
		components.Clock,
		components.RawInput,
		components.DirectionalInput,
		components.Events,
		components.GameState,
		components.Menu,
		components.GameOver,
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
