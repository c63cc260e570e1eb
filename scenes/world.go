package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/batflap/assets"
	"github.com/automoto/batflap/components"
	cfg "github.com/automoto/batflap/config"
	"github.com/automoto/batflap/systems"
	"github.com/automoto/batflap/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BatScene is the single play field: a bat flapping over a wrapping sky.
type BatScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

func NewBatScene() *BatScene {
	return &BatScene{}
}

func (bs *BatScene) Update() {
	bs.once.Do(bs.configure)
	bs.ecs.Update()
}

func (bs *BatScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if bs.ecs == nil {
		return
	}
	bs.ecs.Draw(screen)
}

func (bs *BatScene) configure() {
	// Preload assets to avoid lag on first use
	systems.PreloadAllSFX()

	atlas := assets.BatAtlas(cfg.Animation.Frames, cfg.Player.FrameSize)
	sprite := components.SpriteData{
		Atlas:  atlas,
		Frames: assets.BatFrames(atlas, cfg.Animation.Frames, cfg.Player.FrameSize),
	}

	bs.ecs = NewWorld(systems.UpdateInput)
	factory.CreatePlayer(bs.ecs, sprite)
}

// NewWorld builds the ECS with every system in frame order. poll samples
// raw device state; tests pass a stub.
func NewWorld(poll ecs.System) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	systems.SubscribeSoundEvents(e.World)

	e.AddSystem(systems.UpdateClock)
	e.AddSystem(poll)
	e.AddSystem(systems.WithFocusCheck(systems.UpdateInputTranslation))
	e.AddSystem(systems.UpdateStateInput)
	e.AddSystem(systems.UpdateMenus)

	// Gameplay only advances while playing
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayerInput))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateGravity))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateMovement))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateFriction))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateWrap))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateAnimation))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateFacing))
	e.AddSystem(systems.WithGameplayChecks(systems.CheckCrashed))

	e.AddSystem(systems.UpdateGameOver)
	e.AddSystem(systems.UpdatePlayerReset)
	e.AddSystem(systems.ApplyStateTransitions)
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.UpdateAudio)
	e.AddSystem(systems.EndFrame)

	e.AddRenderer(cfg.Default, systems.DrawBackground)
	e.AddRenderer(cfg.Default, systems.DrawSprites)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawPause)
	e.AddRenderer(cfg.Default, systems.DrawGameOver)

	return e
}
