package systems

import (
	"testing"
	"time"

	"github.com/automoto/batflap/components"
	cfg "github.com/automoto/batflap/config"
	"github.com/automoto/batflap/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const tick = time.Second / 60

// harness runs the full frame pipeline with scripted device input and a
// fixed frame time.
type harness struct {
	ecs    *ecs.ECS
	player *donburi.Entry
	next   components.RawInputData
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	now := time.Unix(0, 0)
	prevNow := timeNow
	timeNow = func() time.Time {
		now = now.Add(tick)
		return now
	}
	muted := cfg.Audio.Muted
	cfg.Audio.Muted = true
	t.Cleanup(func() {
		timeNow = prevNow
		cfg.Audio.Muted = muted
	})

	h := &harness{next: focused()}
	h.ecs = ecs.NewECS(donburi.NewWorld())
	SubscribeSoundEvents(h.ecs.World)

	for _, s := range []ecs.System{
		UpdateClock,
		h.poll,
		WithFocusCheck(UpdateInputTranslation),
		UpdateStateInput,
		UpdateMenus,
		WithGameplayChecks(UpdatePlayerInput),
		WithGameplayChecks(UpdateGravity),
		WithGameplayChecks(UpdateMovement),
		WithGameplayChecks(UpdateFriction),
		WithGameplayChecks(UpdateWrap),
		WithGameplayChecks(UpdateAnimation),
		WithGameplayChecks(UpdateFacing),
		WithGameplayChecks(CheckCrashed),
		UpdateGameOver,
		UpdatePlayerReset,
		ApplyStateTransitions,
		UpdateEffects,
		UpdateAudio,
		EndFrame,
	} {
		h.ecs.AddSystem(s)
	}

	h.player = factory.CreatePlayer(h.ecs, components.SpriteData{
		Frames: make([]*ebiten.Image, cfg.Animation.Frames),
	})
	return h
}

func (h *harness) poll(e *ecs.ECS) {
	*GetOrCreateRawInput(e) = h.next
	h.next = focused()
}

// step runs one frame with raw as the sampled device state.
func (h *harness) step(raw components.RawInputData) {
	h.next = raw
	h.ecs.Update()
}

// idle runs n frames without input.
func (h *harness) idle(n int) {
	for i := 0; i < n; i++ {
		h.step(focused())
	}
}

func (h *harness) state() *components.GameStateData {
	return GetOrCreateGameState(h.ecs)
}

// play moves the game to Playing without a flap impulse.
func (h *harness) play() {
	h.state().Request(cfg.StatePlaying)
	h.state().Commit()
}

func (h *harness) position() (float64, float64) {
	p := components.Transform.Get(h.player).Position
	return p.X, p.Y
}

func (h *harness) velocity() *components.VelocityData {
	return components.Velocity.Get(h.player)
}

func focused() components.RawInputData {
	return components.RawInputData{Focused: true}
}

func pressed(keys ...ebiten.Key) components.RawInputData {
	raw := focused()
	raw.KeysJustPressed = keys
	return raw
}

func held(keys ...ebiten.Key) components.RawInputData {
	raw := focused()
	raw.KeysPressed = keys
	return raw
}

func near(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
