package factory

import (
	"time"

	"github.com/automoto/batflap/archetypes"
	"github.com/automoto/batflap/components"
	cfg "github.com/automoto/batflap/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the bat at the world origin, at rest and facing
// forward, with its flap animation stopped on frame 0.
func CreatePlayer(ecs *ecs.ECS, sprite components.SpriteData) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	spawn := math.Vec2{X: 0, Y: 0}
	components.Player.SetValue(player, components.PlayerData{Spawn: spawn})
	components.Transform.SetValue(player, components.TransformData{Position: spawn})
	components.Gravity.SetValue(player, components.GravityData{
		Acceleration: cfg.Player.Gravity,
	})
	components.Friction.SetValue(player, components.FrictionData{
		Factor: cfg.Player.Friction,
	})

	total := time.Duration(cfg.Animation.TotalSecs * float64(time.Second))
	components.AnimationTimer.SetValue(player, components.NewAnimationTimer(cfg.Animation.Frames, total))
	components.Direction.SetValue(player, components.DirectionData{Facing: components.Forward})

	sprite.Index = 0
	sprite.FlipX = false
	components.Sprite.SetValue(player, sprite)

	return player
}
