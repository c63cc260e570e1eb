package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer used by every scene.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	// TPS is the logical tick rate requested from ebiten. Physics still
	// scales by measured frame time.
	TPS int `yaml:"tps"`
}

// PlayerConfig contains all player-related configuration values.
// Speeds are px/s, accelerations px/s².
type PlayerConfig struct {
	// Movement
	HorizontalAccel    float64 `yaml:"horizontalAccel"`
	MaxHorizontalSpeed float64 `yaml:"maxHorizontalSpeed"`
	FlapLift           float64 `yaml:"flapLift"`
	FlapPush           float64 `yaml:"flapPush"`

	// Physics
	Gravity  float64 `yaml:"gravity"`
	Friction float64 `yaml:"friction"`

	// Dimensions
	FrameSize int `yaml:"frameSize"`
}

// AnimationConfig contains the flap animation timing
type AnimationConfig struct {
	Frames    int     `yaml:"frames"`
	TotalSecs float64 `yaml:"totalSecs"`
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
}

// GameOverConfig contains game over panel configuration values
type GameOverConfig struct {
	PanelColor        color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	PanelWidth        float64
	PanelHeight       float64
	FadeSecs          float32
	Title             string
}

// BackgroundConfig contains the sky gradient used behind the player
type BackgroundConfig struct {
	Top    color.RGBA
	Bottom color.RGBA
	Bands  int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Animation AnimationConfig
var Pause PauseConfig
var GameOver GameOverConfig
var Background BackgroundConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
	BatBrown     = color.RGBA{R: 70, G: 45, B: 40, A: 255}
	BatWing      = color.RGBA{R: 110, G: 70, B: 60, A: 255}
	BatEye       = color.RGBA{R: 255, G: 220, B: 80, A: 255}
)

func init() {
	C = &Config{
		Title:  "Bat Game",
		Width:  1280,
		Height: 800,
		TPS:    60,
	}

	Player = PlayerConfig{
		HorizontalAccel:    2000.0,
		MaxHorizontalSpeed: 1000.0,
		FlapLift:           500.0,
		FlapPush:           400.0,

		Gravity:  1500.0,
		Friction: 0.05,

		FrameSize: 64,
	}

	Animation = AnimationConfig{
		Frames:    8,
		TotalSecs: 0.5,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		MenuItemHeight:    24,
		MenuItemGap:       12,
	}

	GameOver = GameOverConfig{
		PanelColor:        color.RGBA{R: 204, G: 128, B: 51, A: 255},
		TitleColor:        White,
		TextColorNormal:   DarkBlue,
		TextColorSelected: White,
		PanelWidth:        0.4,
		PanelHeight:       0.3,
		FadeSecs:          0.4,
		Title:             "Game Over",
	}

	Background = BackgroundConfig{
		Top:    color.RGBA{R: 20, G: 24, B: 48, A: 255},
		Bottom: color.RGBA{R: 70, G: 50, B: 90, A: 255},
		Bands:  32,
	}
}
