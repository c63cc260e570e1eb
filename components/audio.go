package components

import (
	cfg "github.com/automoto/batflap/config"
	"github.com/yohamta/donburi"
)

// AudioData stores SFX queued this frame (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
