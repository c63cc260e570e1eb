package factory

import (
	"testing"

	"github.com/automoto/batflap/components"
	cfg "github.com/automoto/batflap/config"
	"github.com/automoto/batflap/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestCreatePlayer(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	player := CreatePlayer(e, components.SpriteData{Index: 3, FlipX: true})

	if !player.HasComponent(tags.Player) || !player.HasComponent(tags.WrappingMovement) {
		t.Error("expected player and wrapping tags")
	}
	if p := components.Transform.Get(player).Position; p.X != 0 || p.Y != 0 {
		t.Errorf("position = %v, want origin", p)
	}
	if v := components.Velocity.Get(player); v.X != 0 || v.Y != 0 {
		t.Errorf("velocity = %v, want zero", v)
	}
	if g := components.Gravity.Get(player).Acceleration; g != cfg.Player.Gravity {
		t.Errorf("gravity = %v, want %v", g, cfg.Player.Gravity)
	}
	if f := components.Friction.Get(player).Factor; f != cfg.Player.Friction {
		t.Errorf("friction = %v, want %v", f, cfg.Player.Friction)
	}
	timer := components.AnimationTimer.Get(player)
	if !timer.Paused() || timer.Frame() != 0 || timer.Frames() != cfg.Animation.Frames {
		t.Errorf("timer paused=%v frame=%d frames=%d", timer.Paused(), timer.Frame(), timer.Frames())
	}
	if d := components.Direction.Get(player).Facing; d != components.Forward {
		t.Errorf("facing = %v, want Forward", d)
	}
	if s := components.Sprite.Get(player); s.Index != 0 || s.FlipX {
		t.Errorf("sprite index=%d flip=%v, want 0 and unflipped", s.Index, s.FlipX)
	}
}
