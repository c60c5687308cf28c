package systems

import (
	"math"

	"github.com/MarquisLP/Sidewalk-Champion-sub000/assets"
	"github.com/MarquisLP/Sidewalk-Champion-sub000/components"
	cfg "github.com/MarquisLP/Sidewalk-Champion-sub000/config"
	"github.com/MarquisLP/Sidewalk-Champion-sub000/fighterdata"
	"github.com/MarquisLP/Sidewalk-Champion-sub000/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const maxMeter = 100

// battleImageLoader is shared by the battle systems for projectile
// sheets spawned mid-round. The battle scene sets it during configure.
var battleImageLoader *assets.ImageLoader

// SetBattleImageLoader hands the battle systems the content image cache.
func SetBattleImageLoader(loader *assets.ImageLoader) {
	battleImageLoader = loader
}

// UpdateFighters runs each fighter's action state machine: triggered
// attacks from the input history, default movement states from held
// keys, and frame-by-frame displacement from the animation data.
func UpdateFighters(e *ecs.ECS) {
	battle := GetBattle(e)
	if battle == nil || battle.Phase != components.PhaseFighting || IsSettingsOpen(e) {
		return
	}

	// Collect both fighters first; each update needs the opponent.
	var entries []*donburi.Entry
	components.Fighter.Each(e.World, func(entry *donburi.Entry) {
		entries = append(entries, entry)
	})
	if len(entries) != 2 {
		return
	}

	for i, entry := range entries {
		updateFighter(e, entry, entries[1-i])
	}

	updateFacing(entries[0], entries[1])
}

func updateFighter(e *ecs.ECS, entry, opponentEntry *donburi.Entry) {
	fighter := components.Fighter.Get(entry)
	input := components.PlayerInput.Get(entry)
	anim := components.Animation.Get(entry)
	obj := components.Object.Get(entry)
	opponentObj := components.Object.Get(opponentEntry)

	distance := math.Abs((obj.X + obj.W/2) - (opponentObj.X + opponentObj.W/2))

	anim.JustEntered = false

	// A triggered action interrupts any default state; attacks only give
	// way once they finish.
	if fighter.InAttack() {
		if anim.Finished {
			returnToNeutral(fighter, anim, input)
		}
	} else if action := FindTriggeredAction(fighter.Data, input, fighter, distance); action != nil {
		startAction(e, fighter, anim, action)
	} else {
		updateDefaultState(fighter, anim, input)
	}

	advanceAnimation(anim)

	if anim.JustEntered {
		enterFrame(e, fighter, anim, obj)
		applyFrameShift(fighter, anim, obj)
	}
	applyWalkSpeed(fighter, obj)

	clampToStage(obj)
	snapToGround(e, fighter, obj)
	obj.Update()
}

// snapToGround pins grounded fighters to the stage floor. Aerial frames
// carry their own vertical displacement, so they are left alone.
func snapToGround(e *ecs.ECS, fighter *components.FighterData, obj *components.ObjectData) {
	if fighter.Stance == fighterdata.StanceAerial {
		return
	}
	entry, ok := components.Stage.First(e.World)
	if !ok {
		return
	}
	obj.Y = float64(components.Stage.Get(entry).Data.GroundLevel) - obj.H
}

// startAction locks the fighter into a triggered action.
func startAction(e *ecs.ECS, fighter *components.FighterData, anim *components.AnimationData, action *fighterdata.Action) {
	fighter.Meter -= action.MeterCost
	fighter.Meter += action.MeterGain
	if fighter.Meter > maxMeter {
		fighter.Meter = maxMeter
	}
	if fighter.Meter < 0 {
		fighter.Meter = 0
	}

	fighter.ActionName = action.Name
	anim.SetAction(action, anim.Sheets[action.Name], false)
	PlaySFX(e, cfg.SoundActionStart)
}

// advanceAnimation steps playback by one tick. A frame set earlier this
// tick is left alone so every frame displays for its full duration.
func advanceAnimation(anim *components.AnimationData) {
	if anim.Action == nil || anim.Finished || anim.JustEntered {
		return
	}

	anim.FrameTicks++
	frame := anim.Frame()
	if frame == nil || anim.FrameTicks < frame.Duration {
		return
	}

	anim.FrameTicks = 0
	if anim.FrameIndex+1 < len(anim.Action.Frames) {
		anim.FrameIndex++
		anim.JustEntered = true
		return
	}
	if anim.Loop {
		anim.FrameIndex = 0
		anim.JustEntered = true
		return
	}
	anim.Finished = true
}

// enterFrame fires one-shot frame effects, currently projectile spawns.
func enterFrame(e *ecs.ECS, fighter *components.FighterData, anim *components.AnimationData, obj *components.ObjectData) {
	frame := anim.Frame()
	if frame == nil || battleImageLoader == nil {
		return
	}
	for i := range frame.Projectiles {
		factory.SpawnProjectile(e, &frame.Projectiles[i], fighter, obj, battleImageLoader)
	}
}

// applyFrameShift moves the fighter by the just-entered frame's
// displacement, mirrored by facing.
func applyFrameShift(fighter *components.FighterData, anim *components.AnimationData, obj *components.ObjectData) {
	frame := anim.Frame()
	if frame == nil {
		return
	}
	obj.X += float64(frame.ShiftX) * fighter.Facing
	obj.Y += float64(frame.ShiftY)
}

// applyWalkSpeed adds the character's walking speed while a walk state
// is held.
func applyWalkSpeed(fighter *components.FighterData, obj *components.ObjectData) {
	switch fighter.ActionName {
	case "walk_forward":
		obj.X += float64(fighter.Data.Speed) * fighter.Facing
	case "walk_backward":
		obj.X -= float64(fighter.Data.Speed) * fighter.Facing
	}
}

// returnToNeutral picks the resting state after an attack or transition
// completes.
func returnToNeutral(fighter *components.FighterData, anim *components.AnimationData, input *components.PlayerInputData) {
	if fighter.Stance == fighterdata.StanceCrouching && input.Current[cfg.ActionDown] {
		playDefault(fighter, anim, "crouching_idle", true)
		return
	}
	fighter.Stance = fighterdata.StanceStanding
	playDefault(fighter, anim, "idle", true)
}

// updateDefaultState walks the idle/walk/crouch/jump state graph from
// the held direction keys.
func updateDefaultState(fighter *components.FighterData, anim *components.AnimationData, input *components.PlayerInputData) {
	down := input.Current[cfg.ActionDown]
	up := PlayerAction(input, cfg.ActionUp).JustPressed
	forward := relativeHeld(input, cfg.ActionForward, fighter.Facing)
	backward := relativeHeld(input, cfg.ActionBack, fighter.Facing)

	switch fighter.ActionName {
	case "crouch_down":
		if anim.Finished {
			if down {
				playDefault(fighter, anim, "crouching_idle", true)
			} else {
				playDefault(fighter, anim, "crouch_up", false)
			}
		}

	case "crouching_idle":
		if !down {
			playDefault(fighter, anim, "crouch_up", false)
		}

	case "crouch_up":
		if anim.Finished {
			fighter.Stance = fighterdata.StanceStanding
			playDefault(fighter, anim, "idle", true)
		}

	case "jump_up", "jump_forward", "jump_backward":
		if anim.Finished {
			playDefault(fighter, anim, "land", false)
		}

	case "land":
		if anim.Finished {
			fighter.Stance = fighterdata.StanceStanding
			playDefault(fighter, anim, "idle", true)
		}

	default: // idle and the walk states
		switch {
		case down:
			fighter.Stance = fighterdata.StanceCrouching
			playDefault(fighter, anim, "crouch_down", false)
		case up:
			fighter.Stance = fighterdata.StanceAerial
			name := "jump_up"
			if forward {
				name = "jump_forward"
			} else if backward {
				name = "jump_backward"
			}
			playDefault(fighter, anim, name, false)
		case forward:
			playDefault(fighter, anim, "walk_forward", true)
		case backward:
			playDefault(fighter, anim, "walk_backward", true)
		default:
			playDefault(fighter, anim, "idle", true)
		}
	}
}

// relativeHeld reads a facing-relative direction from the raw held keys.
func relativeHeld(input *components.PlayerInputData, id cfg.ActionID, facing float64) bool {
	if facing == cfg.DirectionLeft {
		switch id {
		case cfg.ActionForward:
			id = cfg.ActionBack
		case cfg.ActionBack:
			id = cfg.ActionForward
		}
	}
	return input.Current[id]
}

func playDefault(fighter *components.FighterData, anim *components.AnimationData, name string, loop bool) {
	action := fighter.Data.Action(name)
	if action == nil {
		return
	}
	if fighter.ActionName == name && anim.Action == action {
		return
	}
	fighter.ActionName = name
	anim.SetAction(action, anim.Sheets[name], loop)
}

// updateFacing turns fighters toward each other when they are free to
// turn. Mid-attack facing is locked so crossups don't flip the sprite.
func updateFacing(a, b *donburi.Entry) {
	fa := components.Fighter.Get(a)
	fb := components.Fighter.Get(b)
	oa := components.Object.Get(a)
	ob := components.Object.Get(b)

	if !fa.InAttack() {
		if oa.X+oa.W/2 <= ob.X+ob.W/2 {
			fa.Facing = cfg.DirectionRight
		} else {
			fa.Facing = cfg.DirectionLeft
		}
	}
	if !fb.InAttack() {
		if ob.X+ob.W/2 <= oa.X+oa.W/2 {
			fb.Facing = cfg.DirectionRight
		} else {
			fb.Facing = cfg.DirectionLeft
		}
	}
}

func clampToStage(obj *components.ObjectData) {
	if obj.X < 0 {
		obj.X = 0
	}
	if max := float64(cfg.C.Width) - obj.W; obj.X > max {
		obj.X = max
	}
}
