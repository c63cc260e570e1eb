package systems

import (
	"image/color"

	"github.com/automoto/batflap/components"
	cfg "github.com/automoto/batflap/config"
	"github.com/automoto/batflap/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// menuActions maps each menu entry to what accepting it does.
var menuActions = map[components.MenuItemID]func(e *ecs.ECS){
	components.MenuItemResume: func(e *ecs.ECS) {
		state := GetOrCreateGameState(e)
		if state.Current == cfg.StatePaused {
			state.Request(cfg.StatePlaying)
		}
	},
	components.MenuItemRestart: func(e *ecs.ECS) {
		// Handled by UpdatePlayerReset like a Reset key press
		events := GetOrCreateEvents(e)
		events.GameInputs = append(events.GameInputs, cfg.GameInputReset)
	},
}

// UpdateMenus moves focus through the open menu and runs accepted entries.
// Must run AFTER UpdateInputTranslation and BEFORE UpdatePlayerReset.
func UpdateMenus(e *ecs.ECS) {
	menu := GetOrCreateMenu(e)
	if len(menu.Items) == 0 {
		return
	}
	events := GetOrCreateEvents(e)

	for _, input := range events.MenuInputs {
		switch input {
		case cfg.MenuInputUp:
			menu.MoveFocus(-1)
			PlaySFX(e, cfg.SoundMenuNavigate)
		case cfg.MenuInputDown:
			menu.MoveFocus(1)
			PlaySFX(e, cfg.SoundMenuNavigate)
		case cfg.MenuInputAccept:
			item, ok := menu.Focused()
			if !ok {
				continue
			}
			PlaySFX(e, cfg.SoundMenuSelect)
			if action, ok := menuActions[item]; ok {
				action(e)
			}
		case cfg.MenuInputBack:
			menuActions[components.MenuItemResume](e)
		}
	}
}

// drawMenu renders the menu entries centred on centerX starting at top.
func drawMenu(screen *ebiten.Image, menu *components.MenuData, centerX, top, itemHeight, gap float64, normal, selected color.Color) {
	face := fonts.Bold.Get()
	for i, item := range menu.Items {
		y := top + float64(i)*(itemHeight+gap)

		textColor := normal
		if i == menu.Focus {
			textColor = selected
		}

		label := item.Label()
		x := int(centerX) - fonts.Width(face, label)/2
		text.Draw(screen, label, face, x, int(y+itemHeight), textColor)
	}
}
