package systems

import (
	"image"
	"image/color"

	"github.com/MarquisLP/Sidewalk-Champion-sub000/components"
	cfg "github.com/MarquisLP/Sidewalk-Champion-sub000/config"
	"github.com/MarquisLP/Sidewalk-Champion-sub000/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawStage renders the stage art: parallax layer first, then the
// background, then the props.
func DrawStage(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Stage.First(e.World)
	if !ok {
		return
	}
	stage := components.Stage.Get(entry)

	if stage.Parallax != nil {
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		offset := float64(stage.Data.XOffset) * float64(stage.Data.ParallaxDepth) / 100
		drawOp.GeoM.Translate(-offset, 0)
		screen.DrawImage(stage.Parallax, drawOp)
	}

	if stage.Background != nil {
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-float64(stage.Data.XOffset), 0)
		screen.DrawImage(stage.Background, drawOp)
	}

	for i, prop := range stage.Data.Props {
		img := stage.PropImages[i]
		if img == nil {
			continue
		}
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(prop.X-float64(stage.Data.XOffset), prop.Y)
		screen.DrawImage(img, drawOp)
	}
}

// DrawFighters renders both fighters' current animation frames,
// anchored bottom-center on their collision body and flipped to match
// facing.
func DrawFighters(e *ecs.ECS, screen *ebiten.Image) {
	components.Fighter.Each(e.World, func(entry *donburi.Entry) {
		fighter := components.Fighter.Get(entry)
		anim := components.Animation.Get(entry)
		obj := components.Object.Get(entry)

		img := frameImage(anim)
		if img == nil {
			return
		}

		action := anim.Action
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		// Anchor at bottom-center, mirroring for left-facing fighters.
		drawOp.GeoM.Translate(-float64(action.FrameWidth)/2, -float64(action.FrameHeight))
		if fighter.Facing == cfg.DirectionLeft {
			drawOp.GeoM.Scale(-1, 1)
		}
		drawOp.GeoM.Translate(
			obj.X+obj.W/2+float64(action.XOffset)*fighter.Facing,
			obj.Y+obj.H,
		)

		screen.DrawImage(img, drawOp)
	})
}

// frameImage returns the cached subimage for the animation's current
// frame, slicing the sheet on first use.
func frameImage(anim *components.AnimationData) *ebiten.Image {
	if anim.Action == nil || anim.Sheet == nil {
		return nil
	}

	if img, ok := anim.Cached[anim.FrameIndex]; ok {
		return img
	}

	sx := anim.FrameIndex * anim.Action.FrameWidth
	rect := image.Rect(sx, 0, sx+anim.Action.FrameWidth, anim.Action.FrameHeight)
	img := anim.Sheet.SubImage(rect).(*ebiten.Image)

	if anim.Cached == nil {
		anim.Cached = make(map[int]*ebiten.Image)
	}
	anim.Cached[anim.FrameIndex] = img
	return img
}

// DrawProjectiles renders in-flight projectiles.
func DrawProjectiles(e *ecs.ECS, screen *ebiten.Image) {
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		proj := components.Projectile.Get(entry)
		obj := components.Object.Get(entry)

		if proj.Sheet == nil || proj.FrameIndex >= len(proj.Data.Frames) {
			return
		}

		sx := proj.FrameIndex * proj.Data.FrameWidth
		rect := image.Rect(sx, 0, sx+proj.Data.FrameWidth, proj.Data.FrameHeight)
		img := proj.Sheet.SubImage(rect).(*ebiten.Image)

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		if proj.Facing == cfg.DirectionLeft {
			drawOp.GeoM.Scale(-1, 1)
			drawOp.GeoM.Translate(float64(proj.Data.FrameWidth), 0)
		}
		drawOp.GeoM.Translate(obj.X, obj.Y)
		screen.DrawImage(img, drawOp)
	})
}

// DrawCollisionBoxes outlines hurt and hit boxes when the display is
// enabled in settings. Overlapping hitboxes flash in the overlap color.
func DrawCollisionBoxes(e *ecs.ECS, screen *ebiten.Image) {
	settings := ActiveSettings()
	if settings == nil || !settings.ShowBoxes {
		return
	}

	components.Boxes.Each(e.World, func(entry *donburi.Entry) {
		boxes := components.Boxes.Get(entry)

		for _, o := range boxes.Hurtboxes {
			strokeBox(screen, o, cfg.BoxDisplay.HurtboxColor)
		}

		hitColor := cfg.BoxDisplay.HitboxColor
		if boxes.FlashTicks > 0 {
			hitColor = cfg.BoxDisplay.OverlapColor
		}
		for _, o := range boxes.Hitboxes {
			strokeBox(screen, o, hitColor)
		}
	})
}

func strokeBox(screen *ebiten.Image, o *resolv.Object, c color.Color) {
	vector.StrokeRect(
		screen,
		float32(o.X), float32(o.Y),
		float32(o.W), float32(o.H),
		1, c, false,
	)
}
