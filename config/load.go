package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk layout. Sections absent from the file keep the
// values set in init().
type fileConfig struct {
	Window    Config          `yaml:"window"`
	Player    PlayerConfig    `yaml:"player"`
	Animation AnimationConfig `yaml:"animation"`
	Audio     AudioConfig     `yaml:"audio"`
	Input     struct {
		AnalogDeadzone *float64 `yaml:"analogDeadzone"`
	} `yaml:"input"`
}

// LoadFile overlays the YAML file at path onto the global configuration.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// Apply overlays YAML data onto the global configuration. Globals are only
// replaced when the merged result validates.
func Apply(data []byte) error {
	f := fileConfig{
		Window:    *C,
		Player:    Player,
		Animation: Animation,
		Audio:     Audio,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	if err := f.validate(); err != nil {
		return err
	}

	window := f.Window
	C = &window
	Player = f.Player
	Animation = f.Animation
	Audio = f.Audio
	if f.Input.AnalogDeadzone != nil {
		Input.AnalogDeadzone = *f.Input.AnalogDeadzone
	}
	return nil
}

func (f *fileConfig) validate() error {
	var errs []error
	if f.Window.Width <= 0 || f.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", f.Window.Width, f.Window.Height))
	}
	if f.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", f.Window.TPS))
	}
	if f.Player.MaxHorizontalSpeed < 0 {
		errs = append(errs, fmt.Errorf("maxHorizontalSpeed must not be negative, got %v", f.Player.MaxHorizontalSpeed))
	}
	if f.Player.Friction < 0 {
		errs = append(errs, fmt.Errorf("friction must not be negative, got %v", f.Player.Friction))
	}
	if f.Animation.Frames <= 0 {
		errs = append(errs, fmt.Errorf("animation frames must be positive, got %d", f.Animation.Frames))
	}
	if f.Animation.TotalSecs <= 0 {
		errs = append(errs, fmt.Errorf("animation totalSecs must be positive, got %v", f.Animation.TotalSecs))
	}
	if f.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("sampleRate must be positive, got %d", f.Audio.SampleRate))
	}
	if dz := f.Input.AnalogDeadzone; dz != nil && (*dz < 0 || *dz >= 1) {
		errs = append(errs, fmt.Errorf("analogDeadzone must be in [0, 1), got %v", *dz))
	}
	return errors.Join(errs...)
}
