package systems

import (
	"log"

	"github.com/automoto/batflap/components"
	cfg "github.com/automoto/batflap/config"
	"github.com/automoto/batflap/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerInput applies this frame's directional input and flap impulses
// to the player and publishes sound events.
// Must run BEFORE UpdateGravity in the system order.
func UpdatePlayerInput(ecs *ecs.ECS) {
	events := GetOrCreateEvents(ecs)
	direction := GetOrCreateDirectionalInput(ecs).Normalized()
	dt := GetOrCreateClock(ecs).DeltaSeconds()

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		v := components.Velocity.Get(e)

		v.X = clampSpeed(v.X+direction*cfg.Player.HorizontalAccel*dt, cfg.Player.MaxHorizontalSpeed)

		for _, input := range events.GameInputs {
			switch input {
			case cfg.GameInputFlap:
				// Impulses are per event and not scaled by dt
				v.Y += cfg.Player.FlapLift
				v.X += direction * cfg.Player.FlapPush
				components.AnimationTimer.Get(e).Start()
				PlayerFlapped.Publish(ecs.World, PlayerFlappedEvent{})
			case cfg.GameInputScreetch:
				PlayerScreetched.Publish(ecs.World, PlayerScreetchedEvent{})
			}
		}
	})
}

// CheckCrashed reports a crash for a player below the bottom screen edge.
// It only emits the event; UpdateGameOver owns the transition.
func CheckCrashed(ecs *ecs.ECS) {
	events := GetOrCreateEvents(ecs)
	bottom := -float64(cfg.C.Height) / 2

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if components.Transform.Get(e).Position.Y < bottom {
			events.GameOvers = append(events.GameOvers, components.GameOverEvent{Reason: cfg.ReasonCrashed})
		}
	})
}

// UpdatePlayerReset handles a Reset input: from Gameover or Paused the game
// returns to Ready and the player is put back at its spawn.
// Must run AFTER UpdateMenus, which can queue a Reset.
func UpdatePlayerReset(ecs *ecs.ECS) {
	events := GetOrCreateEvents(ecs)
	if !events.HasGameInput(cfg.GameInputReset) {
		return
	}

	state := GetOrCreateGameState(ecs)
	next, ok := inputTransition(state.Current, cfg.GameInputReset)
	if !ok {
		return
	}
	if !state.Request(next) {
		return
	}

	player, ok := tags.Player.First(ecs.World)
	if !ok {
		log.Printf("Warning: reset requested without a player entity")
		return
	}
	ResetPlayer(player)
}

// ResetPlayer restores spawn position, zero velocity and a stopped
// animation. Facing is kept.
func ResetPlayer(e *donburi.Entry) {
	components.Transform.Get(e).Position = components.Player.Get(e).Spawn
	v := components.Velocity.Get(e)
	v.X, v.Y = 0, 0
	components.AnimationTimer.Get(e).Stop()
	components.Sprite.Get(e).Index = 0
}
