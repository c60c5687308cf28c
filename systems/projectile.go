package systems

import (
	"github.com/MarquisLP/Sidewalk-Champion-sub000/components"
	cfg "github.com/MarquisLP/Sidewalk-Champion-sub000/config"
	"github.com/MarquisLP/Sidewalk-Champion-sub000/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves and animates in-flight projectiles. Flight
// frames loop back to the loop frame; hitting the opposing fighter or
// leaving the stage plays the collision frames once and removes the
// entity.
func UpdateProjectiles(e *ecs.ECS) {
	battle := GetBattle(e)
	if battle == nil || battle.Phase != components.PhaseFighting || IsSettingsOpen(e) {
		return
	}

	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		proj := components.Projectile.Get(entry)
		obj := components.Object.Get(entry)

		if !proj.Colliding {
			obj.X += float64(proj.Data.SpeedX) * proj.Facing
			obj.Y += float64(proj.Data.SpeedY)
			obj.Update()

			if projectileHit(proj, obj) || offStage(obj) {
				proj.Colliding = true
				proj.FrameIndex = proj.Data.CollisionFrame
				proj.FrameTicks = 0
			}
		}

		if advanceProjectileFrame(proj) {
			removeProjectile(e, entry, obj)
		}
	})
}

// projectileHit checks overlap against the opposing fighter's hurtboxes.
func projectileHit(proj *components.ProjectileData, obj *components.ObjectData) bool {
	hurtboxTag := tags.ResolvHurtbox(1 - proj.OwnerIndex)
	return obj.Check(0, 0, hurtboxTag) != nil
}

func offStage(obj *components.ObjectData) bool {
	return obj.X+obj.W < 0 || obj.X > float64(cfg.C.Width) ||
		obj.Y+obj.H < 0 || obj.Y > float64(cfg.C.Height)
}

// advanceProjectileFrame steps the animation one tick and reports that
// collision playback ran out.
func advanceProjectileFrame(proj *components.ProjectileData) bool {
	frames := proj.Data.Frames
	if proj.FrameIndex >= len(frames) {
		return true
	}

	proj.FrameTicks++
	if proj.FrameTicks < frames[proj.FrameIndex].Duration {
		return false
	}
	proj.FrameTicks = 0

	if proj.Colliding {
		proj.FrameIndex++
		return proj.FrameIndex >= len(frames)
	}

	// Flight loops across [LoopFrame, CollisionFrame).
	proj.FrameIndex++
	if proj.FrameIndex >= proj.Data.CollisionFrame {
		proj.FrameIndex = proj.Data.LoopFrame
	}
	return false
}

func removeProjectile(e *ecs.ECS, entry *donburi.Entry, obj *components.ObjectData) {
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Remove(obj.Object)
	}
	e.World.Remove(entry.Entity())
}
