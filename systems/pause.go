package systems

import (
	cfg "github.com/automoto/batflap/config"
	"github.com/automoto/batflap/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const pauseHint = "Arrows: Navigate   Enter: Select   Esc: Resume"

// DrawPause renders the pause overlay and menu.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if GetOrCreateGameState(ecs).PausedState() != cfg.Paused {
		return
	}
	menu := GetOrCreateMenu(ecs)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw semi-transparent overlay
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	// Calculate menu positioning
	totalMenuHeight := float64(len(menu.Items)) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	startY := (height - totalMenuHeight) / 2

	drawMenu(screen, menu, width/2, startY,
		cfg.Pause.MenuItemHeight, cfg.Pause.MenuItemGap,
		cfg.Pause.TextColorNormal, cfg.Pause.TextColorSelected)

	hintFont := fonts.Small.Get()
	hintX := int(width)/2 - fonts.Width(hintFont, pauseHint)/2
	text.Draw(screen, pauseHint, hintFont, hintX, int(height)-12, cfg.Pause.TextColorNormal)
}
