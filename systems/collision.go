package systems

import (
	"github.com/MarquisLP/Sidewalk-Champion-sub000/components"
	cfg "github.com/MarquisLP/Sidewalk-Champion-sub000/config"
	"github.com/MarquisLP/Sidewalk-Champion-sub000/fighterdata"
	"github.com/MarquisLP/Sidewalk-Champion-sub000/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisionBoxes rebuilds each fighter's hit and hurt boxes from
// the animation frame on display and flags hitbox/hurtbox overlaps.
// Nothing takes damage from an overlap; the result only drives the
// collision box display and the overlap flash.
func UpdateCollisionBoxes(e *ecs.ECS) {
	battle := GetBattle(e)
	if battle == nil || battle.Phase == components.PhaseIntro {
		return
	}

	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	components.Fighter.Each(e.World, func(entry *donburi.Entry) {
		rebuildBoxes(space, entry)
	})

	components.Fighter.Each(e.World, func(entry *donburi.Entry) {
		fighter := components.Fighter.Get(entry)
		boxes := components.Boxes.Get(entry)

		boxes.Overlapping = false
		opposing := tags.ResolvHurtbox(1 - fighter.PlayerIndex)
		for _, hit := range boxes.Hitboxes {
			if hit.Check(0, 0, opposing) != nil {
				boxes.Overlapping = true
				break
			}
		}
		if boxes.Overlapping {
			boxes.FlashTicks = cfg.BoxDisplay.FlashFrames
		} else if boxes.FlashTicks > 0 {
			boxes.FlashTicks--
		}
	})
}

// rebuildBoxes replaces a fighter's resolv boxes with the current
// frame's definitions, mapped from sprite-local to stage coordinates.
func rebuildBoxes(space *components.SpaceData, entry *donburi.Entry) {
	fighter := components.Fighter.Get(entry)
	anim := components.Animation.Get(entry)
	obj := components.Object.Get(entry)
	boxes := components.Boxes.Get(entry)

	for _, o := range boxes.Hurtboxes {
		space.Remove(o)
	}
	for _, o := range boxes.Hitboxes {
		space.Remove(o)
	}
	boxes.Hurtboxes = boxes.Hurtboxes[:0]
	boxes.Hitboxes = boxes.Hitboxes[:0]

	frame := anim.Frame()
	if frame == nil || anim.Action == nil {
		return
	}

	hurtTag := tags.ResolvHurtbox(fighter.PlayerIndex)
	for _, box := range frame.Hurtboxes {
		o := boxObject(fighter, anim.Action, obj, box, hurtTag)
		space.Add(o)
		boxes.Hurtboxes = append(boxes.Hurtboxes, o)
	}
	for _, hb := range frame.Hitboxes {
		o := boxObject(fighter, anim.Action, obj, hb.Box, tags.ResolvHitbox)
		space.Add(o)
		boxes.Hitboxes = append(boxes.Hitboxes, o)
	}
}

// boxObject converts one sprite-local box to a stage-space resolv
// object. Boxes mirror across the sprite's vertical center line when
// the fighter faces left.
func boxObject(
	fighter *components.FighterData,
	action *fighterdata.Action,
	obj *components.ObjectData,
	box fighterdata.Box,
	tag string,
) *resolv.Object {
	spriteLeft := obj.X + obj.W/2 - float64(action.FrameWidth)/2
	spriteTop := obj.Y + obj.H - float64(action.FrameHeight)

	localX := float64(box.X)
	if fighter.Facing == cfg.DirectionLeft {
		localX = float64(action.FrameWidth - box.X - box.W)
	}

	return resolv.NewObject(
		spriteLeft+localX,
		spriteTop+float64(box.Y),
		float64(box.W), float64(box.H),
		tag,
	)
}
