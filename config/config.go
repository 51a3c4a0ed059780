package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer demo entities and renderers live on.
const Default = ecs.LayerDefault

// LoopConfig contains fixed-timestep loop defaults for the demo.
type LoopConfig struct {
	TickRate    float64   // starting tick rate
	TickRates   []float64 // rates the demo cycles through
	RenderCap   time.Duration
	Interpolate bool
}

// DemoConfig contains demo scene tuning values.
type DemoConfig struct {
	LevelPath string

	// Bouncers
	BouncerCount int
	BouncerSize  int
	BouncerSpeed float64

	// Orbiters
	OrbiterCount  int
	OrbiterSize   int
	OrbitRadius   float64
	OrbitSpeed    float64 // radians per tick
	OrbiterSpin   float64 // radians per tick around own pivot
	OrbiterCenterX,
	OrbiterCenterY float64

	// Tween platform
	PlatformW, PlatformH float64
	PlatformTravel       float64
	PlatformPeriod       float32 // seconds for one leg of the tween

	// Background scroll, pixels per tick
	ScrollSpeedX float64
	ScrollSpeedY float64

	// Collision space cell size
	CellSize int
}

// HUDConfig contains HUD layout and colors.
type HUDConfig struct {
	Margin     int
	LineHeight int
	TextColor  color.RGBA
	DimColor   color.RGBA
}

// Config holds general window configuration.
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Loop LoopConfig
var Demo DemoConfig
var HUD HUDConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gray      = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue  = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Magenta   = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 384,
		Title:  "smoothtick demo",
	}

	Loop = LoopConfig{
		TickRate:    30,
		TickRates:   []float64{10, 15, 30, 60, 120},
		RenderCap:   0,
		Interpolate: true,
	}

	Demo = DemoConfig{
		LevelPath: "levels/demo.tmx",

		BouncerCount: 6,
		BouncerSize:  24,
		BouncerSpeed: 4.0,

		OrbiterCount:   5,
		OrbiterSize:    16,
		OrbitRadius:    90.0,
		OrbitSpeed:     0.06,
		OrbiterSpin:    0.12,
		OrbiterCenterX: 320,
		OrbiterCenterY: 192,

		PlatformW:      96,
		PlatformH:      16,
		PlatformTravel: 128,
		PlatformPeriod: 2,

		ScrollSpeedX: 1.5,
		ScrollSpeedY: 0.5,

		CellSize: 16,
	}

	HUD = HUDConfig{
		Margin:     10,
		LineHeight: 16,
		TextColor:  White,
		DimColor:   Gray,
	}
}
