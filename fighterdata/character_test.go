package fighterdata

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoadCharacter_Valid(t *testing.T) {
	fsys := fstest.MapFS{
		"data/ryo.xml": {Data: []byte(testValidCharacterXML("Ryo"))},
	}

	c, err := LoadCharacter(fsys, "data/ryo.xml")
	if err != nil {
		t.Fatalf("LoadCharacter failed: %v", err)
	}

	if c.Name != "Ryo" {
		t.Errorf("Name = %q, want %q", c.Name, "Ryo")
	}
	if c.Speed != 3 || c.Stamina != 100 || c.StunThreshold != 40 {
		t.Errorf("numeric fields = (%d, %d, %d), want (3, 100, 40)", c.Speed, c.Stamina, c.StunThreshold)
	}
	if len(c.Actions) != len(DefaultActionNames) {
		t.Fatalf("len(Actions) = %d, want %d", len(c.Actions), len(DefaultActionNames))
	}
	for _, name := range DefaultActionNames {
		i, ok := c.DefaultActions[name]
		if !ok {
			t.Errorf("DefaultActions missing %q", name)
			continue
		}
		if c.Actions[i].Name != name {
			t.Errorf("DefaultActions[%q] points at action %q", name, c.Actions[i].Name)
		}
	}

	idle := c.Action("idle")
	if idle == nil {
		t.Fatal("Action(idle) = nil")
	}
	if idle.FrameWidth != 64 || idle.FrameHeight != 96 {
		t.Errorf("idle frame size = %dx%d, want 64x96", idle.FrameWidth, idle.FrameHeight)
	}
	if len(idle.Frames) != 1 {
		t.Fatalf("idle has %d frames, want 1", len(idle.Frames))
	}
	frame := idle.Frames[0]
	if frame.Duration != 4 {
		t.Errorf("idle frame duration = %d, want 4", frame.Duration)
	}
	if len(frame.Hurtboxes) != 1 {
		t.Fatalf("idle frame has %d hurtboxes, want 1", len(frame.Hurtboxes))
	}
	if got := frame.Hurtboxes[0]; got != (Box{X: -12, Y: -88, W: 24, H: 88}) {
		t.Errorf("idle hurtbox = %+v", got)
	}
}

func TestLoadCharacter_SpecialAction(t *testing.T) {
	actions := append(testDefaultActions(), testFireballActionXML())
	fsys := fstest.MapFS{
		"data/ryo.xml":      {Data: []byte(testCharacterXML("Ryo", CharacterVerification, actions))},
		"data/fireball.xml": {Data: []byte(testProjectileXML())},
	}

	c, err := LoadCharacter(fsys, "data/ryo.xml")
	if err != nil {
		t.Fatalf("LoadCharacter failed: %v", err)
	}

	// Specials stay out of the default index; they are reached through
	// their input sequence, not by name lookup.
	if _, ok := c.DefaultActions["fireball"]; ok {
		t.Error("DefaultActions contains the special action")
	}
	if len(c.DefaultActions) != len(DefaultActionNames) {
		t.Errorf("len(DefaultActions) = %d, want %d", len(c.DefaultActions), len(DefaultActionNames))
	}
	if c.Action("fireball") != nil {
		t.Error("Action(fireball) resolved a non-default action")
	}

	var fireball *Action
	for i := range c.Actions {
		if c.Actions[i].Name == "fireball" {
			fireball = &c.Actions[i]
		}
	}
	if fireball == nil {
		t.Fatal("fireball missing from Actions")
	}
	wantSteps := [][]string{
		{"down"},
		{"down", "forward"},
		{"forward", "light_punch"},
	}
	if len(fireball.InputSteps) != len(wantSteps) {
		t.Fatalf("len(InputSteps) = %d, want %d", len(fireball.InputSteps), len(wantSteps))
	}
	for i, step := range wantSteps {
		if len(fireball.InputSteps[i]) != len(step) {
			t.Fatalf("step %d = %v, want %v", i, fireball.InputSteps[i], step)
		}
		for j, button := range step {
			if fireball.InputSteps[i][j] != button {
				t.Errorf("step %d button %d = %q, want %q", i, j, fireball.InputSteps[i][j], button)
			}
		}
	}

	if fireball.MeterCost != 25 || fireball.InputPriority != 10 || fireball.CounterFrame != 2 {
		t.Errorf("fireball fields = cost %d, priority %d, counter %d", fireball.MeterCost, fireball.InputPriority, fireball.CounterFrame)
	}

	hit := fireball.Frames[0].Hitboxes[0]
	if hit.Damage != 9 || hit.Hitstun != 14 || hit.Blockstun != 8 || hit.Knockback != 5 || hit.DizzyStun != 3 {
		t.Errorf("hitbox payload = %+v", hit)
	}
	if hit.Effect != "burn" || !hit.BlockHigh || !hit.BlockLow {
		t.Errorf("hitbox flags = %+v", hit)
	}

	spawn := fireball.Frames[1].Projectiles[0]
	if spawn.Path != "fireball.xml" || spawn.X != 32 || spawn.Y != -60 {
		t.Errorf("projectile spawn = %+v", spawn)
	}
	if spawn.Data == nil {
		t.Fatal("projectile data not loaded")
	}
	if spawn.Data.SpeedX != 6 || spawn.Data.LoopFrame != 0 || spawn.Data.CollisionFrame != 2 {
		t.Errorf("projectile data = %+v", spawn.Data)
	}
}

func TestLoadCharacter_MissingDefaultAction(t *testing.T) {
	var actions []string
	for _, name := range DefaultActionNames {
		if name == "walk_forward" {
			continue
		}
		actions = append(actions, testActionXML(name))
	}
	fsys := fstest.MapFS{
		"data/ryo.xml": {Data: []byte(testCharacterXML("Ryo", CharacterVerification, actions))},
	}

	_, err := LoadCharacter(fsys, "data/ryo.xml")
	if !errors.Is(err, ErrMissingElement) {
		t.Fatalf("err = %v, want ErrMissingElement", err)
	}
	if !strings.Contains(err.Error(), "walk_forward") {
		t.Errorf("error does not name the missing action: %v", err)
	}
}

func TestLoadCharacter_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{
			name:    "no actions",
			data:    testCharacterXML("Ryo", CharacterVerification, nil),
			wantErr: ErrMissingElement,
		},
		{
			name:    "wrong verification",
			data:    testCharacterXML("Ryo", "skc-stage-v1", testDefaultActions()),
			wantErr: ErrVerification,
		},
		{
			name: "missing scalar element",
			data: strings.Replace(testValidCharacterXML("Ryo"),
				"<speed>3</speed>", "", 1),
			wantErr: ErrMissingElement,
		},
		{
			name: "missing hitbox attribute",
			data: testCharacterXML("Ryo", CharacterVerification, append(testDefaultActions(),
				strings.Replace(testFireballActionXML(), ` damage="9"`, "", 1))),
			wantErr: ErrMissingAttribute,
		},
		{
			name: "non-numeric field",
			data: strings.Replace(testValidCharacterXML("Ryo"),
				"<stamina>100</stamina>", "<stamina>lots</stamina>", 1),
			wantErr: ErrBadValue,
		},
		{
			name: "unknown step button",
			data: testCharacterXML("Ryo", CharacterVerification, append(testDefaultActions(),
				strings.Replace(testFireballActionXML(), "<step>down</step>", "<step>fierce</step>", 1))),
			wantErr: ErrBadValue,
		},
		{
			name:    "not XML",
			data:    "not xml at all",
			wantErr: nil, // parse error, no sentinel
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{
				"data/ryo.xml":      {Data: []byte(tt.data)},
				"data/fireball.xml": {Data: []byte(testProjectileXML())},
			}
			_, err := LoadCharacter(fsys, "data/ryo.xml")
			if err == nil {
				t.Fatal("LoadCharacter succeeded, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadCharacter_MissingFile(t *testing.T) {
	_, err := LoadCharacter(fstest.MapFS{}, "data/ryo.xml")
	if err == nil {
		t.Fatal("LoadCharacter succeeded for missing file")
	}
}

func TestLoadCharacter_ActionWithoutFrames(t *testing.T) {
	full := testActionXML("idle")
	start := strings.Index(full, "<frames>")
	end := strings.Index(full, "</frames>") + len("</frames>")
	broken := full[:start] + "<frames></frames>" + full[end:]
	actions := append([]string{broken}, testDefaultActions()[1:]...)
	fsys := fstest.MapFS{
		"data/ryo.xml": {Data: []byte(testCharacterXML("Ryo", CharacterVerification, actions))},
	}

	_, err := LoadCharacter(fsys, "data/ryo.xml")
	if !errors.Is(err, ErrMissingElement) {
		t.Fatalf("err = %v, want ErrMissingElement", err)
	}
}
