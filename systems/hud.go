package systems

import (
	cfg "github.com/automoto/batflap/config"
	"github.com/automoto/batflap/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const (
	readyHint = "Press Space to flap"
	hudMargin = 10
)

// DrawHUD renders the start hint while the game is Ready. The hint blinks
// with the time spent in the state.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	state := GetOrCreateGameState(ecs)
	if state.Current != cfg.StateReady {
		return
	}
	// One blink per second
	if period := cfg.C.TPS; state.StateTimer%period >= period*3/4 {
		return
	}

	face := fonts.Bold.Get()
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	x := width/2 - fonts.Width(face, readyHint)/2
	y := height*3/4 + hudMargin
	text.Draw(screen, readyHint, face, x, y, cfg.White)
}
