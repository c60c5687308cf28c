package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// TitleConfig contains title screen configuration values
type TitleConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	SubtitleColor     color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	SubtitleY         float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// CharSelectConfig contains character select screen configuration values
type CharSelectConfig struct {
	BackgroundColor color.RGBA
	GridColumns     int
	CellSize        float64
	CellGap         float64
	GridTopY        float64
	CursorColors    [2]color.RGBA
	NameColor       color.RGBA
	LockedColor     color.RGBA
	HintColor       color.RGBA

	// Mugshot slide-in animation
	SlideInDuration float32 // seconds
	SlideInDistance float64 // pixels
}

// StageSelectConfig contains stage select screen configuration values
type StageSelectConfig struct {
	BackgroundColor color.RGBA
	PanelColor      color.RGBA
	NameColor       color.RGBA
	SubtitleColor   color.RGBA
}

// BattleConfig contains battle screen configuration values
type BattleConfig struct {
	RoundSeconds int

	// Horizontal distance from stage center to each spawn point.
	SpawnDistance float64

	// Input sequence matching windows, in ticks.
	InputBufferTicks int
	StepGapTicks     int

	HUDBarWidth    float64
	HUDBarHeight   float64
	HUDBarMargin   float64
	MeterBarHeight float64
	TimerColor     color.RGBA
	MeterColor     color.RGBA
	StaminaBgColor color.RGBA
	StaminaFgColor color.RGBA
	NameColor      color.RGBA
}

// BoxDisplayConfig contains collision-box display configuration values
type BoxDisplayConfig struct {
	HurtboxColor color.RGBA
	HitboxColor  color.RGBA
	OverlapColor color.RGBA
	FlashFrames  int
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// Global configuration instances
var C *Config
var Title TitleConfig
var CharSelect CharSelectConfig
var StageSelect StageSelectConfig
var Battle BattleConfig
var BoxDisplay BoxDisplayConfig
var Pause PauseConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for fighter facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	// Native resolution; the window is this size times the settings scale.
	C = &Config{
		Width:  384,
		Height: 224,
	}

	Title = TitleConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        Orange,
		SubtitleColor:     LightBlue,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            48,
		SubtitleY:         72,
		MenuStartY:        110,
		MenuItemHeight:    22,
		MenuItemGap:       8,
		MenuOptions:       []string{"Start", "Settings", "Exit"},
	}

	CharSelect = CharSelectConfig{
		BackgroundColor: color.RGBA{R: 20, G: 20, B: 35, A: 255},
		GridColumns:     6,
		CellSize:        44,
		CellGap:         6,
		GridTopY:        120,
		CursorColors: [2]color.RGBA{
			{R: 100, G: 180, B: 255, A: 255},
			{R: 255, G: 100, B: 100, A: 255},
		},
		NameColor:       White,
		LockedColor:     Yellow,
		HintColor:       White,
		SlideInDuration: 0.25,
		SlideInDistance: 96,
	}

	StageSelect = StageSelectConfig{
		BackgroundColor: color.RGBA{R: 18, G: 28, B: 24, A: 255},
		PanelColor:      color.RGBA{R: 30, G: 45, B: 40, A: 255},
		NameColor:       White,
		SubtitleColor:   LightBlue,
	}

	Battle = BattleConfig{
		RoundSeconds:     99,
		SpawnDistance:    72,
		InputBufferTicks: 30,
		StepGapTicks:     12,
		HUDBarWidth:      140,
		HUDBarHeight:     10,
		HUDBarMargin:     8,
		MeterBarHeight:   4,
		TimerColor:       White,
		MeterColor:       LightBlue,
		StaminaBgColor:   color.RGBA{R: 60, G: 20, B: 20, A: 255},
		StaminaFgColor:   color.RGBA{R: 230, G: 200, B: 60, A: 255},
		NameColor:        White,
	}

	BoxDisplay = BoxDisplayConfig{
		HurtboxColor: Green,
		HitboxColor:  Red,
		OverlapColor: Magenta,
		FlashFrames:  6,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    22,
		MenuItemGap:       10,
		MenuOptions:       []string{"Resume", "Settings", "Quit to Title"},
	}
}
