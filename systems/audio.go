package systems

import (
	"log"
	"sync"

	"github.com/automoto/batflap/assets"
	"github.com/automoto/batflap/components"
	cfg "github.com/automoto/batflap/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// PlayerFlappedEvent is published once per applied flap.
type PlayerFlappedEvent struct{}

// PlayerScreetchedEvent is published once per screetch input while playing.
type PlayerScreetchedEvent struct{}

var (
	PlayerFlapped    = events.NewEventType[PlayerFlappedEvent]()
	PlayerScreetched = events.NewEventType[PlayerScreetchedEvent]()
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX synthesises all sound effects at startup to avoid lag on
// first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for id := range cfg.Sound.Tones {
		if err := globalAudioLoader.PreloadSFX(id); err != nil {
			log.Printf("Warning: preload sound %d: %v", id, err)
		}
	}
}

// SubscribeSoundEvents routes gameplay events into the SFX queue.
func SubscribeSoundEvents(w donburi.World) {
	PlayerFlapped.Subscribe(w, func(w donburi.World, _ PlayerFlappedEvent) {
		queueSFX(w, cfg.SoundFlap)
	})
	PlayerScreetched.Subscribe(w, func(w donburi.World, _ PlayerScreetchedEvent) {
		queueSFX(w, cfg.SoundScreetch)
	})
}

func queueSFX(w donburi.World, id cfg.SoundID) {
	entry, ok := components.Audio.First(w)
	if !ok {
		return
	}
	a := components.Audio.Get(entry)
	a.PendingSFX = append(a.PendingSFX, id)
}

// PlaySFX queues a sound effect for this frame.
func PlaySFX(e *ecs.ECS, id cfg.SoundID) {
	a := GetOrCreateAudio(e)
	a.PendingSFX = append(a.PendingSFX, id)
}

// processSoundEvents delivers published sound events to their subscribers.
func processSoundEvents(w donburi.World) {
	PlayerFlapped.ProcessEvents(w)
	PlayerScreetched.ProcessEvents(w)
}

// UpdateAudio plays the SFX queued this frame.
func UpdateAudio(e *ecs.ECS) {
	processSoundEvents(e.World)

	a := GetOrCreateAudio(e)
	if len(a.PendingSFX) == 0 {
		return
	}
	if !cfg.Audio.Muted && cfg.Audio.SFXVolume > 0 {
		initGlobalAudio()
		for _, id := range a.PendingSFX {
			playSFX(id)
		}
	}
	a.PendingSFX = a.PendingSFX[:0]
}

func playSFX(id cfg.SoundID) {
	player, err := globalAudioLoader.LoadSFX(id)
	if err != nil {
		log.Printf("Warning: play sound %d: %v", id, err)
		return
	}
	player.SetVolume(cfg.Audio.SFXVolume)
	player.Play()
}
