package components

import (
	cfg "github.com/MarquisLP/Sidewalk-Champion-sub000/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions. JustPressed/JustReleased are computed on-demand by comparing
// frames. Used for menu navigation, where both players' keys are merged.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state
}

var Input = donburi.NewComponentType[InputData]()

// InputSample is one tick of a player's held actions, recorded for input
// sequence matching.
type InputSample struct {
	Held [cfg.ActionCount]bool
	Tick int
}

// PlayerInputData stores per-player input state. Bindings come from the
// key bindings in the player's settings and can change mid-session when
// the settings overlay rebinds a key.
type PlayerInputData struct {
	PlayerIndex int // 0 or 1
	Bindings    map[cfg.ActionID]ebiten.Key

	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	// History is a rolling window of recent samples, newest last.
	History []InputSample
	Tick    int
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
