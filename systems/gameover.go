package systems

import (
	"image/color"

	cfg "github.com/automoto/batflap/config"
	"github.com/automoto/batflap/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// startGameOverFade restarts the panel fade-in.
func startGameOverFade(e *ecs.ECS) {
	gameOver := GetOrCreateGameOver(e)
	gameOver.Alpha = 0
	gameOver.Fade = gween.New(0, 1, cfg.GameOver.FadeSecs, ease.OutQuad)
}

// UpdateEffects advances the game over panel fade. It keeps running while
// the game is over so the panel finishes fading in.
func UpdateEffects(e *ecs.ECS) {
	gameOver := GetOrCreateGameOver(e)
	if gameOver.Fade == nil {
		return
	}
	if GetOrCreateGameState(e).Current != cfg.StateGameover {
		gameOver.Fade = nil
		gameOver.Alpha = 0
		return
	}

	alpha, finished := gameOver.Fade.Update(float32(GetOrCreateClock(e).DeltaSeconds()))
	gameOver.Alpha = alpha
	if finished {
		gameOver.Fade = nil
	}
}

// DrawGameOver renders the game over panel with its title, the reason the
// run ended and the menu.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	if GetOrCreateGameState(e).Current != cfg.StateGameover {
		return
	}
	gameOver := GetOrCreateGameOver(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	panelW := width * cfg.GameOver.PanelWidth
	panelH := height * cfg.GameOver.PanelHeight
	panelX := (width - panelW) / 2
	panelY := (height - panelH) / 2

	panel := fade(cfg.GameOver.PanelColor, gameOver.Alpha)
	vector.FillRect(screen,
		float32(panelX), float32(panelY),
		float32(panelW), float32(panelH),
		panel, false)

	centerX := int(width / 2)
	titleFont := fonts.Title.Get()
	title := cfg.GameOver.Title
	titleY := int(panelY) + titleFont.Metrics().Ascent.Round() + int(cfg.Pause.MenuItemGap)
	text.Draw(screen, title, titleFont, centerX-fonts.Width(titleFont, title)/2, titleY, cfg.GameOver.TitleColor)

	reasonFont := fonts.Regular.Get()
	reason := gameOver.Reason.Message()
	reasonY := titleY + reasonFont.Metrics().Height.Round() + int(cfg.Pause.MenuItemGap)
	text.Draw(screen, reason, reasonFont, centerX-fonts.Width(reasonFont, reason)/2, reasonY, cfg.GameOver.TitleColor)

	drawMenu(screen, GetOrCreateMenu(e), width/2, float64(reasonY)+cfg.Pause.MenuItemGap,
		cfg.Pause.MenuItemHeight, cfg.Pause.MenuItemGap,
		cfg.GameOver.TextColorNormal, cfg.GameOver.TextColorSelected)
}

// fade scales a premultiplied colour by alpha.
func fade(c color.RGBA, alpha float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
