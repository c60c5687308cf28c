package fighterdata

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// LoadCharacter parses and validates one character XML file. Projectile
// references inside frames trigger loading of their own, separately verified
// files, resolved relative to the character file. Any failure rejects the
// character whole.
func LoadCharacter(fsys fs.FS, filePath string) (*CharacterData, error) {
	var doc characterDoc
	if err := loadDoc(fsys, filePath, &doc); err != nil {
		return nil, err
	}
	if err := checkVerification(filePath, doc.Verification, CharacterVerification); err != nil {
		return nil, err
	}

	what := "character " + filePath
	err := requireElems(what,
		req{"name", doc.Name},
		req{"speed", doc.Speed},
		req{"stamina", doc.Stamina},
		req{"stun_threshold", doc.StunThreshold},
		req{"mugshot", doc.Mugshot},
	)
	if err != nil {
		return nil, err
	}
	if len(doc.Actions) == 0 {
		return nil, fmt.Errorf("%s: %w: <action>", what, ErrMissingElement)
	}

	c := &CharacterData{
		Name:           text(doc.Name),
		Mugshot:        text(doc.Mugshot),
		Actions:        make([]Action, 0, len(doc.Actions)),
		DefaultActions: make(map[string]int, len(DefaultActionNames)),
	}
	if c.Speed, err = toInt(what, "speed", doc.Speed); err != nil {
		return nil, err
	}
	if c.Stamina, err = toInt(what, "stamina", doc.Stamina); err != nil {
		return nil, err
	}
	if c.StunThreshold, err = toInt(what, "stun_threshold", doc.StunThreshold); err != nil {
		return nil, err
	}

	defaults := make(map[string]bool, len(DefaultActionNames))
	for _, name := range DefaultActionNames {
		defaults[name] = true
	}

	baseDir := path.Dir(filePath)
	for i := range doc.Actions {
		action, err := convertAction(fsys, baseDir, what, &doc.Actions[i])
		if err != nil {
			return nil, err
		}
		// Only universal moves go in the default index; specials are
		// found by input-sequence matching, not by name.
		if defaults[action.Name] {
			c.DefaultActions[action.Name] = len(c.Actions)
		}
		c.Actions = append(c.Actions, *action)
	}

	// Every universal move must be present.
	for _, name := range DefaultActionNames {
		if _, ok := c.DefaultActions[name]; !ok {
			return nil, fmt.Errorf("%s: %w: <action> %q", what, ErrMissingElement, name)
		}
	}

	return c, nil
}

func convertAction(fsys fs.FS, baseDir, parent string, doc *actionDoc) (*Action, error) {
	what := parent + " action"
	if doc.Name != nil {
		what = fmt.Sprintf("%s %q", what, text(doc.Name))
	}

	err := requireElems(what,
		req{"name", doc.Name},
		req{"spritesheet", doc.SpriteSheet},
		req{"frame_width", doc.FrameWidth},
		req{"frame_height", doc.FrameHeight},
		req{"x_offset", doc.XOffset},
		req{"stance", doc.Stance},
		req{"multi_hit", doc.MultiHit},
		req{"input_priority", doc.InputPriority},
		req{"meter_cost", doc.MeterCost},
		req{"meter_gain", doc.MeterGain},
		req{"proximity", doc.Proximity},
		req{"counter_frame", doc.CounterFrame},
	)
	if err != nil {
		return nil, err
	}
	if len(doc.Frames) == 0 {
		return nil, fmt.Errorf("%s: %w: <frame>", what, ErrMissingElement)
	}

	a := &Action{
		Name:        text(doc.Name),
		SpriteSheet: text(doc.SpriteSheet),
		Frames:      make([]Frame, 0, len(doc.Frames)),
	}
	if a.FrameWidth, err = toInt(what, "frame_width", doc.FrameWidth); err != nil {
		return nil, err
	}
	if a.FrameHeight, err = toInt(what, "frame_height", doc.FrameHeight); err != nil {
		return nil, err
	}
	if a.XOffset, err = toInt(what, "x_offset", doc.XOffset); err != nil {
		return nil, err
	}
	if a.Stance, err = toStance(what, doc.Stance); err != nil {
		return nil, err
	}
	if a.MultiHit, err = toBool(what, "multi_hit", doc.MultiHit); err != nil {
		return nil, err
	}
	if a.InputPriority, err = toInt(what, "input_priority", doc.InputPriority); err != nil {
		return nil, err
	}
	if a.MeterCost, err = toInt(what, "meter_cost", doc.MeterCost); err != nil {
		return nil, err
	}
	if a.MeterGain, err = toInt(what, "meter_gain", doc.MeterGain); err != nil {
		return nil, err
	}
	if a.Proximity, err = toInt(what, "proximity", doc.Proximity); err != nil {
		return nil, err
	}
	if a.CounterFrame, err = toInt(what, "counter_frame", doc.CounterFrame); err != nil {
		return nil, err
	}

	for _, step := range doc.Steps {
		buttons, err := parseInputStep(what, step)
		if err != nil {
			return nil, err
		}
		a.InputSteps = append(a.InputSteps, buttons)
	}

	for i := range doc.Frames {
		frame, err := convertFrame(fsys, baseDir, what, i, &doc.Frames[i])
		if err != nil {
			return nil, err
		}
		a.Frames = append(a.Frames, *frame)
	}

	return a, nil
}

// parseInputStep splits a "down+light_punch" style step into button names.
func parseInputStep(what, step string) ([]string, error) {
	parts := strings.Split(step, "+")
	buttons := make([]string, 0, len(parts))
	for _, p := range parts {
		name := strings.TrimSpace(p)
		if !validButton(name) {
			return nil, fmt.Errorf("%s: %w: step button %q", what, ErrBadValue, name)
		}
		buttons = append(buttons, name)
	}
	return buttons, nil
}

func convertFrame(fsys fs.FS, baseDir, parent string, index int, doc *frameDoc) (*Frame, error) {
	what := fmt.Sprintf("%s frame %d", parent, index)

	err := requireElems(what,
		req{"duration", doc.Duration},
		req{"cancel", doc.Cancel},
		req{"x_shift", doc.ShiftX},
		req{"y_shift", doc.ShiftY},
	)
	if err != nil {
		return nil, err
	}

	f := &Frame{}
	if f.Duration, err = toInt(what, "duration", doc.Duration); err != nil {
		return nil, err
	}
	if f.Duration < 1 {
		return nil, fmt.Errorf("%s: %w: duration=%d", what, ErrBadValue, f.Duration)
	}
	if f.Cancel, err = toCancel(what, doc.Cancel); err != nil {
		return nil, err
	}
	if f.ShiftX, err = toInt(what, "x_shift", doc.ShiftX); err != nil {
		return nil, err
	}
	if f.ShiftY, err = toInt(what, "y_shift", doc.ShiftY); err != nil {
		return nil, err
	}

	for i := range doc.Hurtboxes {
		box, err := convertBox(what, &doc.Hurtboxes[i])
		if err != nil {
			return nil, err
		}
		f.Hurtboxes = append(f.Hurtboxes, *box)
	}
	for i := range doc.Hitboxes {
		hb, err := convertHitbox(what, &doc.Hitboxes[i])
		if err != nil {
			return nil, err
		}
		f.Hitboxes = append(f.Hitboxes, *hb)
	}
	for i := range doc.Projectiles {
		spawn, err := convertProjectileSpawn(fsys, baseDir, what, &doc.Projectiles[i])
		if err != nil {
			return nil, err
		}
		f.Projectiles = append(f.Projectiles, *spawn)
	}

	return f, nil
}

func convertBox(what string, doc *boxDoc) (*Box, error) {
	err := requireAttrs(what,
		req{"x", doc.X},
		req{"y", doc.Y},
		req{"w", doc.W},
		req{"h", doc.H},
	)
	if err != nil {
		return nil, err
	}

	b := &Box{}
	if b.X, err = toInt(what, "x", doc.X); err != nil {
		return nil, err
	}
	if b.Y, err = toInt(what, "y", doc.Y); err != nil {
		return nil, err
	}
	if b.W, err = toInt(what, "w", doc.W); err != nil {
		return nil, err
	}
	if b.H, err = toInt(what, "h", doc.H); err != nil {
		return nil, err
	}
	return b, nil
}

func convertHitbox(what string, doc *hitboxDoc) (*Hitbox, error) {
	box, err := convertBox(what, &doc.boxDoc)
	if err != nil {
		return nil, err
	}
	err = requireAttrs(what,
		req{"damage", doc.Damage},
		req{"hitstun", doc.Hitstun},
		req{"blockstun", doc.Blockstun},
		req{"knockback", doc.Knockback},
		req{"dizzy", doc.DizzyStun},
		req{"effect", doc.Effect},
		req{"block_high", doc.BlockHigh},
		req{"block_low", doc.BlockLow},
	)
	if err != nil {
		return nil, err
	}

	hb := &Hitbox{Box: *box, Effect: text(doc.Effect)}
	if hb.Damage, err = toInt(what, "damage", doc.Damage); err != nil {
		return nil, err
	}
	if hb.Hitstun, err = toInt(what, "hitstun", doc.Hitstun); err != nil {
		return nil, err
	}
	if hb.Blockstun, err = toInt(what, "blockstun", doc.Blockstun); err != nil {
		return nil, err
	}
	if hb.Knockback, err = toInt(what, "knockback", doc.Knockback); err != nil {
		return nil, err
	}
	if hb.DizzyStun, err = toInt(what, "dizzy", doc.DizzyStun); err != nil {
		return nil, err
	}
	if hb.BlockHigh, err = toBool(what, "block_high", doc.BlockHigh); err != nil {
		return nil, err
	}
	if hb.BlockLow, err = toBool(what, "block_low", doc.BlockLow); err != nil {
		return nil, err
	}
	return hb, nil
}

func convertProjectileSpawn(fsys fs.FS, baseDir, what string, doc *projectileRefDoc) (*ProjectileSpawn, error) {
	err := requireAttrs(what,
		req{"path", doc.Path},
		req{"x", doc.X},
		req{"y", doc.Y},
	)
	if err != nil {
		return nil, err
	}

	spawn := &ProjectileSpawn{Path: text(doc.Path)}
	if spawn.X, err = toInt(what, "x", doc.X); err != nil {
		return nil, err
	}
	if spawn.Y, err = toInt(what, "y", doc.Y); err != nil {
		return nil, err
	}

	spawn.Data, err = LoadProjectile(fsys, path.Join(baseDir, spawn.Path))
	if err != nil {
		return nil, fmt.Errorf("%s: projectile: %w", what, err)
	}
	return spawn, nil
}
