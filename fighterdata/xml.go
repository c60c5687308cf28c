package fighterdata

import (
	"encoding/xml"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
)

// Raw document structs. Required fields are *string so loaders can tell a
// missing field from an empty one. Numeric conversion happens only after
// every required field has been checked, so a record never escapes
// partially converted.

type characterDoc struct {
	XMLName       xml.Name    `xml:"character"`
	Verification  string      `xml:"verification"`
	Name          *string     `xml:"name"`
	Speed         *string     `xml:"speed"`
	Stamina       *string     `xml:"stamina"`
	StunThreshold *string     `xml:"stun_threshold"`
	Mugshot       *string     `xml:"mugshot"`
	Actions       []actionDoc `xml:"actions>action"`
}

type actionDoc struct {
	Name          *string    `xml:"name"`
	SpriteSheet   *string    `xml:"spritesheet"`
	FrameWidth    *string    `xml:"frame_width"`
	FrameHeight   *string    `xml:"frame_height"`
	XOffset       *string    `xml:"x_offset"`
	Stance        *string    `xml:"stance"`
	MultiHit      *string    `xml:"multi_hit"`
	InputPriority *string    `xml:"input_priority"`
	MeterCost     *string    `xml:"meter_cost"`
	MeterGain     *string    `xml:"meter_gain"`
	Proximity     *string    `xml:"proximity"`
	CounterFrame  *string    `xml:"counter_frame"`
	Steps         []string   `xml:"input>step"`
	Frames        []frameDoc `xml:"frames>frame"`
}

type frameDoc struct {
	Duration    *string             `xml:"duration"`
	Cancel      *string             `xml:"cancel"`
	ShiftX      *string             `xml:"x_shift"`
	ShiftY      *string             `xml:"y_shift"`
	Hurtboxes   []boxDoc            `xml:"hurtboxes>hurtbox"`
	Hitboxes    []hitboxDoc         `xml:"hitboxes>hitbox"`
	Projectiles []projectileRefDoc  `xml:"projectiles>projectile"`
}

type boxDoc struct {
	X *string `xml:"x,attr"`
	Y *string `xml:"y,attr"`
	W *string `xml:"w,attr"`
	H *string `xml:"h,attr"`
}

type hitboxDoc struct {
	boxDoc
	Damage    *string `xml:"damage,attr"`
	Hitstun   *string `xml:"hitstun,attr"`
	Blockstun *string `xml:"blockstun,attr"`
	Knockback *string `xml:"knockback,attr"`
	DizzyStun *string `xml:"dizzy,attr"`
	Effect    *string `xml:"effect,attr"`
	BlockHigh *string `xml:"block_high,attr"`
	BlockLow  *string `xml:"block_low,attr"`
}

type projectileRefDoc struct {
	Path *string `xml:"path,attr"`
	X    *string `xml:"x,attr"`
	Y    *string `xml:"y,attr"`
}

type projectileDoc struct {
	XMLName        xml.Name   `xml:"projectile"`
	Verification   string     `xml:"verification"`
	SpriteSheet    *string    `xml:"spritesheet"`
	FrameWidth     *string    `xml:"frame_width"`
	FrameHeight    *string    `xml:"frame_height"`
	Stamina        *string    `xml:"stamina"`
	LoopFrame      *string    `xml:"loop_frame"`
	CollisionFrame *string    `xml:"collision_frame"`
	SpeedX         *string    `xml:"x_speed"`
	SpeedY         *string    `xml:"y_speed"`
	Frames         []frameDoc `xml:"frames>frame"`
}

type stageDoc struct {
	XMLName       xml.Name  `xml:"stage"`
	Verification  string    `xml:"verification"`
	Name          *string   `xml:"name"`
	Subtitle      *string   `xml:"subtitle"`
	Background    *string   `xml:"background"`
	Parallax      *string   `xml:"parallax"`
	ParallaxDepth *string   `xml:"parallax_depth"`
	GroundLevel   *string   `xml:"ground_level"`
	XOffset       *string   `xml:"x_offset"`
	Music         *string   `xml:"music"`
	Props         *propsDoc `xml:"props"`
}

type propsDoc struct {
	File *string `xml:"file,attr"`
}

// loadDoc reads and unmarshals one XML document.
func loadDoc(fsys fs.FS, filePath string, doc any) error {
	data, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", filePath, err)
	}
	if err := xml.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("parse %s: %w", filePath, err)
	}
	return nil
}

// checkVerification enforces the file-type code carried in <verification>.
func checkVerification(filePath, got, want string) error {
	if strings.TrimSpace(got) != want {
		return fmt.Errorf("%s: %w: want %q", filePath, ErrVerification, want)
	}
	return nil
}

// req pairs a field name with its parsed value for the required-field gate.
type req struct {
	name string
	val  *string
}

func firstMissing(fields []req) string {
	for _, f := range fields {
		if f.val == nil {
			return f.name
		}
	}
	return ""
}

// requireElems fails if any required child element is unset.
func requireElems(what string, fields ...req) error {
	if name := firstMissing(fields); name != "" {
		return fmt.Errorf("%s: %w: <%s>", what, ErrMissingElement, name)
	}
	return nil
}

// requireAttrs fails if any required attribute is unset.
func requireAttrs(what string, fields ...req) error {
	if name := firstMissing(fields); name != "" {
		return fmt.Errorf("%s: %w: %q", what, ErrMissingAttribute, name)
	}
	return nil
}

// Conversion helpers. All assume the required-field gate already passed, so
// the pointer is non-nil.

func text(v *string) string {
	return strings.TrimSpace(*v)
}

func toInt(what, name string, v *string) (int, error) {
	n, err := strconv.Atoi(text(v))
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %s=%q", what, ErrBadValue, name, text(v))
	}
	return n, nil
}

func toBool(what, name string, v *string) (bool, error) {
	switch text(v) {
	case "0", "false":
		return false, nil
	case "1", "true":
		return true, nil
	}
	return false, fmt.Errorf("%s: %w: %s=%q", what, ErrBadValue, name, text(v))
}

func toStance(what string, v *string) (Stance, error) {
	switch text(v) {
	case "standing":
		return StanceStanding, nil
	case "crouching":
		return StanceCrouching, nil
	case "aerial":
		return StanceAerial, nil
	case "any":
		return StanceAny, nil
	}
	return 0, fmt.Errorf("%s: %w: stance=%q", what, ErrBadValue, text(v))
}

func toCancel(what string, v *string) (CancelPolicy, error) {
	switch text(v) {
	case "never":
		return CancelNever, nil
	case "special":
		return CancelSpecial, nil
	case "any":
		return CancelAny, nil
	}
	return 0, fmt.Errorf("%s: %w: cancel=%q", what, ErrBadValue, text(v))
}
