// Package fighterdata provides XML character, stage and settings loading.
// It has no dependencies on ebitengine or donburi, only pure data. Loaders
// take an fs.FS so the game can pass embed.FS or os.DirFS and tests can pass
// a fstest.MapFS.
package fighterdata

// CharacterData describes one playable fighter, populated once at load time
// and read-only afterward.
type CharacterData struct {
	Name          string
	Speed         int
	Stamina       int
	StunThreshold int
	Mugshot       string

	// Actions holds every move in file order. DefaultActions maps each of
	// the universal move names to its index in Actions.
	Actions        []Action
	DefaultActions map[string]int
}

// Action returns the action registered under a default-action name.
func (c *CharacterData) Action(name string) *Action {
	i, ok := c.DefaultActions[name]
	if !ok {
		return nil
	}
	return &c.Actions[i]
}

// Stance gates when an action may start.
type Stance int

const (
	StanceStanding Stance = iota
	StanceCrouching
	StanceAerial
	StanceAny
)

func (s Stance) String() string {
	switch s {
	case StanceStanding:
		return "standing"
	case StanceCrouching:
		return "crouching"
	case StanceAerial:
		return "aerial"
	case StanceAny:
		return "any"
	}
	return "unknown"
}

// CancelPolicy controls whether a frame may be interrupted by another action.
type CancelPolicy int

const (
	CancelNever CancelPolicy = iota
	CancelSpecial
	CancelAny
)

// Action is one performable move: its animation frames plus the input
// sequence that triggers it.
type Action struct {
	Name        string
	SpriteSheet string
	FrameWidth  int
	FrameHeight int

	// XOffset shifts the sprite in the facing direction.
	XOffset int

	Stance        Stance
	MultiHit      bool
	InputPriority int
	MeterCost     int
	MeterGain     int

	// Proximity is the maximum distance to the opponent at which the action
	// may start; 0 means unrestricted.
	Proximity int

	// CounterFrame is the frame index from which the action counts as a
	// counter; -1 when the action never counters.
	CounterFrame int

	Frames []Frame

	// InputSteps is the button sequence required to start the action. Each
	// step is a set of buttons that must be pressed together.
	InputSteps [][]string
}

// TotalDuration returns the action's length in ticks.
func (a *Action) TotalDuration() int {
	total := 0
	for i := range a.Frames {
		total += a.Frames[i].Duration
	}
	return total
}

// Frame is one timed animation cell with its collision geometry.
type Frame struct {
	// Duration in 1/60s ticks.
	Duration int

	Cancel CancelPolicy

	// Displacement applied over the frame, in the facing direction.
	ShiftX int
	ShiftY int

	Hurtboxes   []Box
	Hitboxes    []Hitbox
	Projectiles []ProjectileSpawn
}

// Box is a collision rectangle relative to the character origin.
type Box struct {
	X, Y int
	W, H int
}

// Hitbox is an attack-range rectangle with its damage payload.
type Hitbox struct {
	Box

	Damage    int
	Hitstun   int
	Blockstun int
	Knockback int
	DizzyStun int
	Effect    string
	BlockHigh bool
	BlockLow  bool
}

// ProjectileSpawn references a projectile file spawned during a frame.
type ProjectileSpawn struct {
	// Path of the projectile XML, resolved relative to the character file.
	Path string

	// Spawn offset from the character origin.
	X, Y int

	// Data is the loaded projectile document.
	Data *ProjectileData
}

// ProjectileData describes a projectile loaded from its own, separately
// verified XML file.
type ProjectileData struct {
	SpriteSheet string
	FrameWidth  int
	FrameHeight int

	Stamina int

	// LoopFrame is the frame index the animation returns to while flying;
	// CollisionFrame is the first frame shown on impact.
	LoopFrame      int
	CollisionFrame int

	SpeedX int
	SpeedY int

	Frames []Frame
}

// StageData describes one battle stage.
type StageData struct {
	Name     string
	Subtitle string

	Background    string
	Parallax      string
	ParallaxDepth int // percent of camera movement applied to the parallax layer

	GroundLevel int
	XOffset     int
	Music       string

	// PropsFile optionally names a Tiled .tmx file whose "Props" object
	// layer places decorative images on the stage.
	PropsFile string
	Props     []StageProp
}

// StageProp is one decorative image placed on a stage.
type StageProp struct {
	Image string
	X, Y  float64
}

// SettingsData carries the player-editable options. Loading always yields a
// usable value: any validation failure regenerates and persists defaults.
type SettingsData struct {
	// ScreenScale multiplies the native resolution, clamped to 1..3.
	ScreenScale int

	// ShowBoxes toggles the collision-box display during battle.
	ShowBoxes bool

	// KeyBindings maps each name in BindingActions to a key name, one map
	// per player.
	KeyBindings [2]map[string]string
}

// Clone returns a deep copy, so scenes can edit settings without touching
// the persisted value until save.
func (s *SettingsData) Clone() *SettingsData {
	out := &SettingsData{
		ScreenScale: s.ScreenScale,
		ShowBoxes:   s.ShowBoxes,
	}
	for p := range s.KeyBindings {
		out.KeyBindings[p] = make(map[string]string, len(s.KeyBindings[p]))
		for k, v := range s.KeyBindings[p] {
			out.KeyBindings[p][k] = v
		}
	}
	return out
}
