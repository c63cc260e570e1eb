package assets

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/automoto/batflap/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesises sound effects and caches the PCM bytes per sound
type AudioLoader struct {
	sfxCache map[config.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[config.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX synthesises a sound effect and caches it without creating a
// player.
func (l *AudioLoader) PreloadSFX(id config.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}
	tone, ok := config.Sound.Tones[id]
	if !ok {
		return fmt.Errorf("no tone configured for sound %d", id)
	}
	l.sfxCache[id] = SynthesizeTone(tone, l.context.SampleRate())
	return nil
}

// LoadSFX returns a new player for the sound each time.
func (l *AudioLoader) LoadSFX(id config.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[id]), nil
}

// SynthesizeTone renders tone as 16-bit little-endian stereo PCM.
func SynthesizeTone(tone config.ToneConfig, sampleRate int) []byte {
	n := int(tone.Seconds * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n*4)
	noise := rand.New(rand.NewPCG(1, 2))

	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := tone.StartHz + (tone.EndHz-tone.StartHz)*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)

		s := math.Sin(phase)
		if tone.Square {
			if s >= 0 {
				s = 1
			} else {
				s = -1
			}
		}
		if tone.Noise > 0 {
			s = s*(1-tone.Noise) + (noise.Float64()*2-1)*tone.Noise
		}
		s *= tone.Volume * (1 - progress)

		v := int16(s * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
