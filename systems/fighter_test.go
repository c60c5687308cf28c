package systems

import (
	"testing"

	"github.com/MarquisLP/Sidewalk-Champion-sub000/components"
	cfg "github.com/MarquisLP/Sidewalk-Champion-sub000/config"
	"github.com/MarquisLP/Sidewalk-Champion-sub000/fighterdata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func defaultStateCharacter() *fighterdata.CharacterData {
	names := []string{
		"idle", "walk_forward", "walk_backward",
		"crouch_down", "crouching_idle", "crouch_up",
		"jump_up", "jump_forward", "jump_backward", "land",
	}
	char := &fighterdata.CharacterData{
		Name:           "Tester",
		Speed:          2,
		DefaultActions: make(map[string]int, len(names)),
	}
	for i, name := range names {
		char.Actions = append(char.Actions, fighterdata.Action{
			Name:   name,
			Frames: []fighterdata.Frame{{Duration: 3}, {Duration: 3}},
		})
		char.DefaultActions[name] = i
	}
	return char
}

func heldInput(actions ...cfg.ActionID) *components.PlayerInputData {
	input := &components.PlayerInputData{}
	for _, id := range actions {
		input.Current[id] = true
	}
	return input
}

func TestAdvanceAnimation(t *testing.T) {
	action := &fighterdata.Action{
		Name:   "jab",
		Frames: []fighterdata.Frame{{Duration: 2}, {Duration: 3}},
	}

	anim := &components.AnimationData{}
	anim.SetAction(action, nil, false)

	if !anim.JustEntered {
		t.Fatal("SetAction should mark frame 0 as just entered")
	}

	// The tick that set the action leaves the frame alone.
	advanceAnimation(anim)
	if anim.FrameIndex != 0 || anim.FrameTicks != 0 {
		t.Fatalf("entry tick advanced playback: index=%d ticks=%d", anim.FrameIndex, anim.FrameTicks)
	}

	anim.JustEntered = false
	advanceAnimation(anim)
	if anim.FrameIndex != 0 || anim.FrameTicks != 1 {
		t.Fatalf("after 1 tick: index=%d ticks=%d", anim.FrameIndex, anim.FrameTicks)
	}

	advanceAnimation(anim)
	if anim.FrameIndex != 1 || !anim.JustEntered {
		t.Fatalf("frame 0 should end after its duration: index=%d justEntered=%v", anim.FrameIndex, anim.JustEntered)
	}

	anim.JustEntered = false
	for i := 0; i < 3; i++ {
		advanceAnimation(anim)
		anim.JustEntered = false
	}
	if !anim.Finished {
		t.Fatal("non-looping playback should finish after the last frame")
	}

	before := anim.FrameIndex
	advanceAnimation(anim)
	if anim.FrameIndex != before {
		t.Fatal("finished playback should not advance")
	}
}

func TestAdvanceAnimationLoops(t *testing.T) {
	action := &fighterdata.Action{
		Name:   "idle",
		Frames: []fighterdata.Frame{{Duration: 1}, {Duration: 1}},
	}

	anim := &components.AnimationData{}
	anim.SetAction(action, nil, true)
	anim.JustEntered = false

	advanceAnimation(anim)
	anim.JustEntered = false
	advanceAnimation(anim)

	if anim.FrameIndex != 0 || !anim.JustEntered {
		t.Fatalf("looping playback should wrap to frame 0: index=%d", anim.FrameIndex)
	}
	if anim.Finished {
		t.Fatal("looping playback should never finish")
	}
}

func TestSetActionSameActionKeepsPlayback(t *testing.T) {
	action := &fighterdata.Action{
		Name:   "idle",
		Frames: []fighterdata.Frame{{Duration: 4}, {Duration: 4}},
	}

	anim := &components.AnimationData{}
	anim.SetAction(action, nil, true)
	anim.JustEntered = false
	anim.FrameIndex = 1
	anim.FrameTicks = 2

	anim.SetAction(action, nil, true)
	if anim.FrameIndex != 1 || anim.FrameTicks != 2 || anim.JustEntered {
		t.Fatal("re-setting the playing action should not restart it")
	}
}

func TestUpdateDefaultState(t *testing.T) {
	tests := []struct {
		name       string
		from       string
		stance     fighterdata.Stance
		finished   bool
		held       []cfg.ActionID
		justUp     bool
		want       string
		wantStance fighterdata.Stance
	}{
		{
			name:       "idle stays idle",
			from:       "idle",
			want:       "idle",
			wantStance: fighterdata.StanceStanding,
		},
		{
			name:       "forward walks",
			from:       "idle",
			held:       []cfg.ActionID{cfg.ActionForward},
			want:       "walk_forward",
			wantStance: fighterdata.StanceStanding,
		},
		{
			name:       "back walks",
			from:       "idle",
			held:       []cfg.ActionID{cfg.ActionBack},
			want:       "walk_backward",
			wantStance: fighterdata.StanceStanding,
		},
		{
			name:       "down crouches",
			from:       "idle",
			held:       []cfg.ActionID{cfg.ActionDown},
			want:       "crouch_down",
			wantStance: fighterdata.StanceCrouching,
		},
		{
			name:       "crouch transition settles while held",
			from:       "crouch_down",
			stance:     fighterdata.StanceCrouching,
			finished:   true,
			held:       []cfg.ActionID{cfg.ActionDown},
			want:       "crouching_idle",
			wantStance: fighterdata.StanceCrouching,
		},
		{
			name:       "releasing down stands up",
			from:       "crouching_idle",
			stance:     fighterdata.StanceCrouching,
			want:       "crouch_up",
			wantStance: fighterdata.StanceCrouching,
		},
		{
			name:       "stand-up finishes into idle",
			from:       "crouch_up",
			stance:     fighterdata.StanceCrouching,
			finished:   true,
			want:       "idle",
			wantStance: fighterdata.StanceStanding,
		},
		{
			name:       "up jumps",
			from:       "idle",
			justUp:     true,
			want:       "jump_up",
			wantStance: fighterdata.StanceAerial,
		},
		{
			name:       "up with forward jumps forward",
			from:       "idle",
			held:       []cfg.ActionID{cfg.ActionForward},
			justUp:     true,
			want:       "jump_forward",
			wantStance: fighterdata.StanceAerial,
		},
		{
			name:       "jump finishes into landing",
			from:       "jump_up",
			stance:     fighterdata.StanceAerial,
			finished:   true,
			want:       "land",
			wantStance: fighterdata.StanceAerial,
		},
		{
			name:       "landing finishes into idle",
			from:       "land",
			stance:     fighterdata.StanceAerial,
			finished:   true,
			want:       "idle",
			wantStance: fighterdata.StanceStanding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			char := defaultStateCharacter()
			fighter := &components.FighterData{
				Data:       char,
				Facing:     cfg.DirectionRight,
				Stance:     tt.stance,
				ActionName: tt.from,
			}

			anim := &components.AnimationData{}
			anim.SetAction(char.Action(tt.from), nil, false)
			anim.Finished = tt.finished

			input := heldInput(tt.held...)
			if tt.justUp {
				input.Current[cfg.ActionUp] = true
			}

			updateDefaultState(fighter, anim, input)

			if fighter.ActionName != tt.want {
				t.Errorf("action = %q, want %q", fighter.ActionName, tt.want)
			}
			if fighter.Stance != tt.wantStance {
				t.Errorf("stance = %v, want %v", fighter.Stance, tt.wantStance)
			}
		})
	}
}

func TestUpdateDefaultStateFacingLeft(t *testing.T) {
	char := defaultStateCharacter()
	fighter := &components.FighterData{
		Data:       char,
		Facing:     cfg.DirectionLeft,
		ActionName: "idle",
	}
	anim := &components.AnimationData{}
	anim.SetAction(char.Action("idle"), nil, true)

	// Facing left, the back key moves toward the opponent.
	updateDefaultState(fighter, anim, heldInput(cfg.ActionBack))
	if fighter.ActionName != "walk_forward" {
		t.Errorf("action = %q, want %q", fighter.ActionName, "walk_forward")
	}
}

func TestStartActionClampsMeter(t *testing.T) {
	tests := []struct {
		name  string
		meter int
		cost  int
		gain  int
		want  int
	}{
		{"gain clamps at full", 90, 0, 25, 100},
		{"cost drains", 60, 50, 0, 10},
		{"cost then gain", 50, 50, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := ecs.NewECS(donburi.NewWorld())
			fighter := &components.FighterData{Meter: tt.meter}
			action := &fighterdata.Action{
				Name:      "special",
				MeterCost: tt.cost,
				MeterGain: tt.gain,
				Frames:    []fighterdata.Frame{{Duration: 1}},
			}
			anim := &components.AnimationData{}

			startAction(e, fighter, anim, action)

			if fighter.Meter != tt.want {
				t.Errorf("meter = %d, want %d", fighter.Meter, tt.want)
			}
			if fighter.ActionName != "special" {
				t.Errorf("action = %q, want %q", fighter.ActionName, "special")
			}
		})
	}
}
