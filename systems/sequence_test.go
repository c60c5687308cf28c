package systems

import (
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/MarquisLP/Sidewalk-Champion-sub000/components"
	cfg "github.com/MarquisLP/Sidewalk-Champion-sub000/config"
	"github.com/MarquisLP/Sidewalk-Champion-sub000/fighterdata"
)

func sample(tick int, held ...cfg.ActionID) components.InputSample {
	s := components.InputSample{Tick: tick}
	for _, id := range held {
		s.Held[id] = true
	}
	return s
}

func TestMatchSteps(t *testing.T) {
	fireball := [][]string{
		{"down"},
		{"down", "forward"},
		{"forward", "light_punch"},
	}

	tests := []struct {
		name    string
		history []components.InputSample
		steps   [][]string
		facing  float64
		want    bool
	}{
		{
			name: "complete sequence",
			history: []components.InputSample{
				sample(1, cfg.ActionDown),
				sample(2, cfg.ActionDown, cfg.ActionForward),
				sample(3, cfg.ActionForward),
				sample(4, cfg.ActionForward, cfg.ActionLightPunch),
			},
			steps:  fireball,
			facing: cfg.DirectionRight,
			want:   true,
		},
		{
			name: "facing left mirrors forward onto the back key",
			history: []components.InputSample{
				sample(1, cfg.ActionDown),
				sample(2, cfg.ActionDown, cfg.ActionBack),
				sample(3, cfg.ActionBack, cfg.ActionLightPunch),
			},
			steps:  fireball,
			facing: cfg.DirectionLeft,
			want:   true,
		},
		{
			name: "missing middle step",
			history: []components.InputSample{
				sample(1, cfg.ActionDown),
				sample(2),
				sample(3, cfg.ActionForward, cfg.ActionLightPunch),
			},
			steps:  fireball,
			facing: cfg.DirectionRight,
			want:   false,
		},
		{
			name: "step gap exceeded",
			history: []components.InputSample{
				sample(1, cfg.ActionDown),
				sample(2, cfg.ActionDown, cfg.ActionForward),
				sample(20, cfg.ActionForward, cfg.ActionLightPunch),
			},
			steps:  fireball,
			facing: cfg.DirectionRight,
			want:   false,
		},
		{
			name: "steps out of order",
			history: []components.InputSample{
				sample(1, cfg.ActionDown, cfg.ActionForward),
				sample(2, cfg.ActionDown),
				sample(3, cfg.ActionForward, cfg.ActionLightPunch),
			},
			steps:  fireball,
			facing: cfg.DirectionRight,
			want:   false,
		},
		{
			name: "held button does not retrigger",
			history: []components.InputSample{
				sample(1, cfg.ActionLightPunch),
				sample(2, cfg.ActionLightPunch),
			},
			steps:  [][]string{{"light_punch"}},
			facing: cfg.DirectionRight,
			want:   false,
		},
		{
			name: "single step on first sample",
			history: []components.InputSample{
				sample(1, cfg.ActionLightPunch),
			},
			steps:  [][]string{{"light_punch"}},
			facing: cfg.DirectionRight,
			want:   true,
		},
		{
			name:    "empty history",
			history: nil,
			steps:   fireball,
			facing:  cfg.DirectionRight,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchSteps(tt.history, tt.steps, cfg.Battle.StepGapTicks, tt.facing)
			if got != tt.want {
				t.Errorf("MatchSteps() = %v, want %v", got, tt.want)
			}
		})
	}
}

// actionXML builds one minimal action block for loader-backed tests.
func actionXML(name string, priority int, steps ...string) string {
	var input string
	if len(steps) > 0 {
		var b strings.Builder
		b.WriteString("  <input>\n")
		for _, s := range steps {
			fmt.Fprintf(&b, "    <step>%s</step>\n", s)
		}
		b.WriteString("  </input>\n")
		input = b.String()
	}
	return fmt.Sprintf(`<action>
  <name>%s</name>
  <spritesheet>sheets/%s.png</spritesheet>
  <frame_width>64</frame_width>
  <frame_height>96</frame_height>
  <x_offset>0</x_offset>
  <stance>standing</stance>
  <multi_hit>0</multi_hit>
  <input_priority>%d</input_priority>
  <meter_cost>0</meter_cost>
  <meter_gain>0</meter_gain>
  <proximity>0</proximity>
  <counter_frame>-1</counter_frame>
%s  <frames>
    <frame>
      <duration>4</duration>
      <cancel>never</cancel>
      <x_shift>0</x_shift>
      <y_shift>0</y_shift>
    </frame>
  </frames>
</action>`, name, name, priority, input)
}

// loadTestCharacter runs a full character document with one special
// through the real loader.
func loadTestCharacter(t *testing.T) *fighterdata.CharacterData {
	t.Helper()

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\"?>\n<character>\n")
	fmt.Fprintf(&b, "  <verification>%s</verification>\n", fighterdata.CharacterVerification)
	b.WriteString("  <name>Testy</name>\n")
	b.WriteString("  <speed>3</speed>\n")
	b.WriteString("  <stamina>100</stamina>\n")
	b.WriteString("  <stun_threshold>40</stun_threshold>\n")
	b.WriteString("  <mugshot>mugshots/testy.png</mugshot>\n")
	b.WriteString("  <actions>\n")
	for _, name := range fighterdata.DefaultActionNames {
		b.WriteString(actionXML(name, 0))
		b.WriteString("\n")
	}
	b.WriteString(actionXML("fireball", 5, "down", "down+forward", "forward+light_punch"))
	b.WriteString("\n  </actions>\n</character>\n")

	fsys := fstest.MapFS{
		"chars/testy.xml": {Data: []byte(b.String())},
	}
	char, err := fighterdata.LoadCharacter(fsys, "chars/testy.xml")
	if err != nil {
		t.Fatalf("LoadCharacter failed: %v", err)
	}
	return char
}

// A loader-produced character must behave like the hand-built fixtures:
// its special triggers from the input history and locks the fighter
// into an attack.
func TestFindTriggeredActionLoadedCharacter(t *testing.T) {
	char := loadTestCharacter(t)

	input := &components.PlayerInputData{
		History: []components.InputSample{
			sample(1, cfg.ActionDown),
			sample(2, cfg.ActionDown, cfg.ActionForward),
			sample(3, cfg.ActionForward, cfg.ActionLightPunch),
		},
	}
	fighter := &components.FighterData{
		Data:       char,
		Facing:     cfg.DirectionRight,
		Stance:     fighterdata.StanceStanding,
		ActionName: "idle",
	}

	if fighter.InAttack() {
		t.Fatal("idle counted as an attack")
	}

	action := FindTriggeredAction(char, input, fighter, 100)
	if action == nil {
		t.Fatal("loaded special did not trigger")
	}
	if action.Name != "fireball" {
		t.Fatalf("triggered %q, want %q", action.Name, "fireball")
	}

	fighter.ActionName = action.Name
	if !fighter.InAttack() {
		t.Fatal("triggered special did not lock the fighter into an attack")
	}
}

func testCharacter() *fighterdata.CharacterData {
	return &fighterdata.CharacterData{
		Name: "Tester",
		Actions: []fighterdata.Action{
			{
				Name:          "idle",
				Stance:        fighterdata.StanceStanding,
				Frames:        []fighterdata.Frame{{Duration: 4}},
				InputPriority: 0,
			},
			{
				Name:          "jab",
				Stance:        fighterdata.StanceStanding,
				Frames:        []fighterdata.Frame{{Duration: 4}},
				InputPriority: 1,
				InputSteps:    [][]string{{"light_punch"}},
			},
			{
				Name:          "fireball",
				Stance:        fighterdata.StanceStanding,
				Frames:        []fighterdata.Frame{{Duration: 4}},
				InputPriority: 5,
				InputSteps: [][]string{
					{"down"},
					{"down", "forward"},
					{"forward", "light_punch"},
				},
			},
			{
				Name:          "throw",
				Stance:        fighterdata.StanceStanding,
				Frames:        []fighterdata.Frame{{Duration: 4}},
				InputPriority: 9,
				Proximity:     20,
				InputSteps:    [][]string{{"light_punch"}},
			},
			{
				Name:          "super",
				Stance:        fighterdata.StanceStanding,
				Frames:        []fighterdata.Frame{{Duration: 4}},
				InputPriority: 9,
				MeterCost:     50,
				InputSteps:    [][]string{{"light_punch"}},
			},
			{
				Name:          "sweep",
				Stance:        fighterdata.StanceCrouching,
				Frames:        []fighterdata.Frame{{Duration: 4}},
				InputPriority: 2,
				InputSteps:    [][]string{{"light_punch"}},
			},
		},
		DefaultActions: map[string]int{"idle": 0},
	}
}

func TestFindTriggeredAction(t *testing.T) {
	char := testCharacter()

	tests := []struct {
		name     string
		history  []components.InputSample
		stance   fighterdata.Stance
		meter    int
		distance float64
		want     string
	}{
		{
			name: "sequence outranks single button",
			history: []components.InputSample{
				sample(1, cfg.ActionDown),
				sample(2, cfg.ActionDown, cfg.ActionForward),
				sample(3, cfg.ActionForward, cfg.ActionLightPunch),
			},
			stance:   fighterdata.StanceStanding,
			distance: 100,
			want:     "fireball",
		},
		{
			name: "jab when only the button matches",
			history: []components.InputSample{
				sample(1),
				sample(2, cfg.ActionLightPunch),
			},
			stance:   fighterdata.StanceStanding,
			distance: 100,
			want:     "jab",
		},
		{
			name: "proximity gates the throw",
			history: []components.InputSample{
				sample(1),
				sample(2, cfg.ActionLightPunch),
			},
			stance:   fighterdata.StanceStanding,
			distance: 15,
			want:     "throw",
		},
		{
			name: "meter gates the super",
			history: []components.InputSample{
				sample(1),
				sample(2, cfg.ActionLightPunch),
			},
			stance:   fighterdata.StanceStanding,
			meter:    80,
			distance: 100,
			want:     "super",
		},
		{
			name: "crouching stance picks the sweep",
			history: []components.InputSample{
				sample(1),
				sample(2, cfg.ActionLightPunch),
			},
			stance:   fighterdata.StanceCrouching,
			distance: 100,
			want:     "sweep",
		},
		{
			name: "nothing pressed",
			history: []components.InputSample{
				sample(1),
				sample(2),
			},
			stance:   fighterdata.StanceStanding,
			distance: 100,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := &components.PlayerInputData{History: tt.history}
			fighter := &components.FighterData{
				Data:   char,
				Facing: cfg.DirectionRight,
				Stance: tt.stance,
				Meter:  tt.meter,
			}

			got := FindTriggeredAction(char, input, fighter, tt.distance)
			name := ""
			if got != nil {
				name = got.Name
			}
			if name != tt.want {
				t.Errorf("FindTriggeredAction() = %q, want %q", name, tt.want)
			}
		})
	}
}
