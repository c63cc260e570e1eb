package systems

import (
	"log"

	"github.com/automoto/batflap/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimation advances animation timers and selects the sprite frame.
func UpdateAnimation(ecs *ecs.ECS) {
	dt := GetOrCreateClock(ecs).Delta
	components.AnimationTimer.Each(ecs.World, func(e *donburi.Entry) {
		frame := components.AnimationTimer.Get(e).Tick(dt)
		if !e.HasComponent(components.Sprite) {
			log.Printf("Warning: animated entity %v has no sprite", e.Entity())
			return
		}
		components.Sprite.Get(e).Index = frame
	})
}

// UpdateFacing turns sprites toward this frame's directional input. No input
// keeps the previous facing. Must run before EndFrame clears the input.
func UpdateFacing(ecs *ecs.ECS) {
	direction := GetOrCreateDirectionalInput(ecs).Normalized()
	components.Direction.Each(ecs.World, func(e *donburi.Entry) {
		d := components.Direction.Get(e)
		d.Face(direction)
		if e.HasComponent(components.Sprite) {
			components.Sprite.Get(e).FlipX = d.Facing == components.Backward
		}
	})
}
