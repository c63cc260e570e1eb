package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundFlap
	SoundScreetch
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int     `yaml:"sampleRate"`
	SFXVolume  float64 `yaml:"sfxVolume"`
	Muted      bool    `yaml:"muted"`
}

// ToneConfig describes a synthesised clip: a frequency sweep with a linear
// decay envelope.
type ToneConfig struct {
	StartHz float64
	EndHz   float64
	Seconds float64
	Volume  float64
	Noise   float64 // 0..1 mix of white noise
	Square  bool
}

// SoundConfig maps sound IDs to their synthesis parameters
type SoundConfig struct {
	Tones map[SoundID]ToneConfig
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		SFXVolume:  0.6,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]ToneConfig{
			SoundFlap:         {StartHz: 180, EndHz: 90, Seconds: 0.12, Volume: 0.8, Noise: 0.6},
			SoundScreetch:     {StartHz: 2400, EndHz: 3600, Seconds: 0.25, Volume: 0.5, Square: true},
			SoundMenuNavigate: {StartHz: 660, EndHz: 660, Seconds: 0.05, Volume: 0.4, Square: true},
			SoundMenuSelect:   {StartHz: 660, EndHz: 990, Seconds: 0.1, Volume: 0.4, Square: true},
		},
	}
}
