package systems

import (
	"testing"

	"github.com/automoto/batflap/components"
	cfg "github.com/automoto/batflap/config"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestReadyFlapStartsPlaying(t *testing.T) {
	h := newHarness(t)

	h.step(pressed(ebiten.KeySpace))

	if got := h.state().Current; got != cfg.StatePlaying {
		t.Fatalf("state = %s, want Playing", got)
	}
	// The starting flap only changes state
	if x, y := h.position(); x != 0 || y != 0 {
		t.Errorf("position = (%v, %v), want origin", x, y)
	}
}

func TestReadyScreetchStartsPlaying(t *testing.T) {
	h := newHarness(t)
	h.step(pressed(ebiten.KeyControlLeft))
	if got := h.state().Current; got != cfg.StatePlaying {
		t.Errorf("state = %s, want Playing", got)
	}
}

func TestReadyIgnoresStartAndReset(t *testing.T) {
	h := newHarness(t)
	h.step(pressed(ebiten.KeyEscape))
	h.step(pressed(ebiten.KeyR))
	if got := h.state().Current; got != cfg.StateReady {
		t.Errorf("state = %s, want Ready", got)
	}
}

func TestUnfocusedWindowIgnoresInput(t *testing.T) {
	h := newHarness(t)

	raw := pressed(ebiten.KeySpace)
	raw.Focused = false
	h.step(raw)

	if got := h.state().Current; got != cfg.StateReady {
		t.Errorf("state = %s, want Ready", got)
	}
}

func TestFlapPhysicsSingleFrame(t *testing.T) {
	h := newHarness(t)
	h.play()

	h.step(pressed(ebiten.KeySpace))

	dt := tick.Seconds()
	vy := cfg.Player.FlapLift - cfg.Player.Gravity*dt
	wantY := vy * dt
	vy *= 1 - cfg.Player.Friction*dt

	x, y := h.position()
	if x != 0 {
		t.Errorf("x = %v, want 0 without direction", x)
	}
	if !near(y, wantY) {
		t.Errorf("y = %v, want %v", y, wantY)
	}
	if v := h.velocity(); !near(v.Y, vy) {
		t.Errorf("vy = %v, want %v", v.Y, vy)
	}
}

func TestFlapsStackWithinFrame(t *testing.T) {
	h := newHarness(t)
	h.play()

	// Keyboard and mouse both emit a flap
	raw := pressed(ebiten.KeySpace)
	raw.MouseJustPressed = []ebiten.MouseButton{ebiten.MouseButtonLeft}
	h.step(raw)

	dt := tick.Seconds()
	want := (2*cfg.Player.FlapLift - cfg.Player.Gravity*dt) * (1 - cfg.Player.Friction*dt)
	if v := h.velocity(); !near(v.Y, want) {
		t.Errorf("vy = %v, want %v", v.Y, want)
	}
}

func TestHorizontalAccelerationAndFlapPush(t *testing.T) {
	h := newHarness(t)
	h.play()

	raw := held(ebiten.KeyD)
	raw.KeysJustPressed = []ebiten.Key{ebiten.KeySpace}
	h.step(raw)

	dt := tick.Seconds()
	vx := cfg.Player.HorizontalAccel*dt + cfg.Player.FlapPush
	wantX := vx * dt
	vx *= 1 - cfg.Player.Friction*dt

	if x, _ := h.position(); !near(x, wantX) {
		t.Errorf("x = %v, want %v", x, wantX)
	}
	if v := h.velocity(); !near(v.X, vx) {
		t.Errorf("vx = %v, want %v", v.X, vx)
	}
}

func TestHorizontalSpeedIsClamped(t *testing.T) {
	h := newHarness(t)
	h.play()

	for i := 0; i < 300; i++ {
		h.step(held(ebiten.KeyArrowRight))
		// Keep the bat from crashing while holding right
		components.Transform.Get(h.player).Position.Y = 0
		h.velocity().Y = 0
	}

	if v := h.velocity(); v.X > cfg.Player.MaxHorizontalSpeed || v.X < 0.9*cfg.Player.MaxHorizontalSpeed {
		t.Errorf("vx = %v, want just under %v", v.X, cfg.Player.MaxHorizontalSpeed)
	}
}

func TestOpposingDirectionsCancel(t *testing.T) {
	h := newHarness(t)
	h.play()

	h.step(held(ebiten.KeyA, ebiten.KeyD))

	if v := h.velocity(); v.X != 0 {
		t.Errorf("vx = %v, want 0", v.X)
	}
	if d := components.Direction.Get(h.player); d.Facing != components.Forward {
		t.Errorf("facing = %v, want Forward", d.Facing)
	}
}

func TestWrapAroundRightEdge(t *testing.T) {
	h := newHarness(t)
	h.play()

	half := float64(cfg.C.Width) / 2
	components.Transform.Get(h.player).Position.X = half - 0.001
	h.velocity().X = 100

	h.idle(1)

	x, _ := h.position()
	if x >= 0 || x < -half {
		t.Errorf("x = %v, want just inside the left edge", x)
	}
}

func TestWrapX(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"inside", 10, 10},
		{"on edge", 640, 640},
		{"past right", 641, -639},
		{"past left", -641, 639},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrapX(tt.x, 1280); got != tt.want {
				t.Errorf("wrapX(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestZeroFrameTimeLeavesBodyUnchanged(t *testing.T) {
	h := newHarness(t)
	h.play()
	h.velocity().X, h.velocity().Y = 120, -40
	components.Transform.Get(h.player).Position.X = 5

	GetOrCreateClock(h.ecs).Delta = 0
	UpdateGravity(h.ecs)
	UpdateMovement(h.ecs)
	UpdateFriction(h.ecs)
	UpdateWrap(h.ecs)

	if x, y := h.position(); x != 5 || y != 0 {
		t.Errorf("position = (%v, %v), want (5, 0)", x, y)
	}
	if v := h.velocity(); v.X != 120 || v.Y != -40 {
		t.Errorf("velocity = (%v, %v), want (120, -40)", v.X, v.Y)
	}
}

func TestCrashEndsGame(t *testing.T) {
	h := newHarness(t)
	h.play()
	components.Transform.Get(h.player).Position.Y = -float64(cfg.C.Height)/2 - 1

	h.idle(1)

	if got := h.state().Current; got != cfg.StateGameover {
		t.Fatalf("state = %s, want Gameover", got)
	}
	if got := GetOrCreateGameOver(h.ecs).Reason; got != cfg.ReasonCrashed {
		t.Errorf("reason = %s, want Crashed", got)
	}
	if item, ok := GetOrCreateMenu(h.ecs).Focused(); !ok || item != components.MenuItemRestart {
		t.Errorf("focused menu item = %v, %v, want Restart", item, ok)
	}

	// Gameplay is frozen
	_, y := h.position()
	h.idle(5)
	if _, after := h.position(); after != y {
		t.Errorf("y moved from %v to %v while game over", y, after)
	}

	if alpha := GetOrCreateGameOver(h.ecs).Alpha; alpha <= 0 || alpha > 1 {
		t.Errorf("panel alpha = %v, want fading in", alpha)
	}
}

func TestFreeFallCrashes(t *testing.T) {
	h := newHarness(t)
	h.step(pressed(ebiten.KeySpace))

	for i := 0; i < 600 && h.state().Current == cfg.StatePlaying; i++ {
		h.idle(1)
	}

	if got := h.state().Current; got != cfg.StateGameover {
		t.Fatalf("state = %s, want Gameover", got)
	}
	if _, y := h.position(); y >= -float64(cfg.C.Height)/2 {
		t.Errorf("y = %v, want below the bottom edge", y)
	}
}

func TestResetFromGameover(t *testing.T) {
	h := newHarness(t)
	h.play()
	h.step(pressed(ebiten.KeySpace))
	components.Transform.Get(h.player).Position.Y = -float64(cfg.C.Height)
	h.idle(1)
	if got := h.state().Current; got != cfg.StateGameover {
		t.Fatalf("state = %s, want Gameover", got)
	}

	h.step(pressed(ebiten.KeyR))

	if got := h.state().Current; got != cfg.StateReady {
		t.Fatalf("state = %s, want Ready", got)
	}
	if x, y := h.position(); x != 0 || y != 0 {
		t.Errorf("position = (%v, %v), want origin", x, y)
	}
	if v := h.velocity(); v.X != 0 || v.Y != 0 {
		t.Errorf("velocity = (%v, %v), want zero", v.X, v.Y)
	}
	timer := components.AnimationTimer.Get(h.player)
	if !timer.Paused() || timer.Frame() != 0 {
		t.Errorf("timer paused=%v frame=%d, want stopped on 0", timer.Paused(), timer.Frame())
	}
	if idx := components.Sprite.Get(h.player).Index; idx != 0 {
		t.Errorf("sprite index = %d, want 0", idx)
	}
	if len(GetOrCreateMenu(h.ecs).Items) != 0 {
		t.Error("expected menu to close on reset")
	}
}

func TestPauseFreezesAndResumes(t *testing.T) {
	h := newHarness(t)
	h.play()
	h.step(pressed(ebiten.KeySpace))

	h.step(pressed(ebiten.KeyEscape))
	if got := h.state().PausedState(); got != cfg.Paused {
		t.Fatalf("paused state = %v, want Paused", got)
	}

	x, y := h.position()
	vy := h.velocity().Y
	h.idle(10)
	if ax, ay := h.position(); ax != x || ay != y || h.velocity().Y != vy {
		t.Error("body moved while paused")
	}

	h.step(pressed(ebiten.KeyEscape))
	if got := h.state().Current; got != cfg.StatePlaying {
		t.Errorf("state = %s, want Playing", got)
	}
	if h.velocity().Y != vy {
		t.Error("velocity changed across pause")
	}
}

func TestFlapQuickResumes(t *testing.T) {
	h := newHarness(t)
	h.play()
	h.step(pressed(ebiten.KeyEscape))

	h.step(pressed(ebiten.KeySpace))

	if got := h.state().Current; got != cfg.StatePlaying {
		t.Errorf("state = %s, want Playing", got)
	}
}

func TestPauseMenuResume(t *testing.T) {
	h := newHarness(t)
	h.play()
	h.step(pressed(ebiten.KeyEscape))

	h.step(pressed(ebiten.KeyEnter))

	if got := h.state().Current; got != cfg.StatePlaying {
		t.Errorf("state = %s, want Playing", got)
	}
}

func TestPauseMenuRestart(t *testing.T) {
	h := newHarness(t)
	h.play()
	h.step(pressed(ebiten.KeySpace))
	h.step(pressed(ebiten.KeyEscape))

	h.step(pressed(ebiten.KeyArrowDown))
	if item, _ := GetOrCreateMenu(h.ecs).Focused(); item != components.MenuItemRestart {
		t.Fatalf("focused = %s, want Restart", item.Label())
	}
	h.step(pressed(ebiten.KeyEnter))

	if got := h.state().Current; got != cfg.StateReady {
		t.Fatalf("state = %s, want Ready", got)
	}
	if x, y := h.position(); x != 0 || y != 0 {
		t.Errorf("position = (%v, %v), want origin", x, y)
	}
}

func TestFirstMatchingInputWins(t *testing.T) {
	tests := []struct {
		name string
		raw  components.RawInputData
		want cfg.GameStateID
	}{
		{
			// Keyboard is read before gamepads
			name: "reset before flap",
			raw: components.RawInputData{
				Focused:            true,
				KeysJustPressed:    []ebiten.Key{ebiten.KeyR},
				ButtonsJustPressed: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
			},
			want: cfg.StateReady,
		},
		{
			name: "flap before reset",
			raw: components.RawInputData{
				Focused:            true,
				KeysJustPressed:    []ebiten.Key{ebiten.KeySpace},
				ButtonsJustPressed: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
			},
			want: cfg.StatePlaying,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.play()
			h.step(pressed(ebiten.KeyEscape))

			h.step(tt.raw)

			if got := h.state().Current; got != tt.want {
				t.Errorf("state = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFlapAnimationRunsOnce(t *testing.T) {
	h := newHarness(t)
	h.play()

	h.step(pressed(ebiten.KeySpace))
	timer := components.AnimationTimer.Get(h.player)
	if timer.Paused() {
		t.Fatal("expected flap to start the animation")
	}

	h.idle(5)
	if idx := components.Sprite.Get(h.player).Index; idx == 0 {
		t.Error("expected the animation to advance")
	}

	h.idle(40)
	if !timer.Paused() || components.Sprite.Get(h.player).Index != 0 {
		t.Errorf("timer paused=%v index=%d, want stopped on frame 0",
			timer.Paused(), components.Sprite.Get(h.player).Index)
	}
}

func TestFacingFollowsDirection(t *testing.T) {
	h := newHarness(t)
	h.play()

	h.step(held(ebiten.KeyArrowLeft))
	if d := components.Direction.Get(h.player); d.Facing != components.Backward {
		t.Errorf("facing = %v, want Backward", d.Facing)
	}
	if !components.Sprite.Get(h.player).FlipX {
		t.Error("expected sprite to flip when facing backward")
	}

	// No input keeps the facing
	h.idle(1)
	if d := components.Direction.Get(h.player); d.Facing != components.Backward {
		t.Errorf("facing = %v, want Backward", d.Facing)
	}
}

func TestEndFrameClearsInput(t *testing.T) {
	h := newHarness(t)
	h.step(held(ebiten.KeyD))

	if got := GetOrCreateDirectionalInput(h.ecs).Normalized(); got != 0 {
		t.Errorf("direction = %v after frame, want 0", got)
	}
	if events := GetOrCreateEvents(h.ecs); len(events.GameInputs)+len(events.MenuInputs)+len(events.GameOvers) != 0 {
		t.Error("expected event queues to be empty after frame")
	}
}
