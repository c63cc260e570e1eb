package components

import (
	cfg "github.com/automoto/batflap/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GameOverData stores why the last run ended and the panel fade
type GameOverData struct {
	Reason cfg.GameOverReason
	Fade   *gween.Tween
	Alpha  float32
}

// GameOver is the component type for game over panel state
var GameOver = donburi.NewComponentType[GameOverData]()
