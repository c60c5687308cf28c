package fighterdata

import (
	"fmt"
	"io/fs"
	"path"
)

// LoadProjectile parses and validates one projectile XML file. Projectile
// frames may not reference further projectiles.
func LoadProjectile(fsys fs.FS, filePath string) (*ProjectileData, error) {
	var doc projectileDoc
	if err := loadDoc(fsys, filePath, &doc); err != nil {
		return nil, err
	}
	if err := checkVerification(filePath, doc.Verification, ProjectileVerification); err != nil {
		return nil, err
	}

	what := "projectile " + filePath
	err := requireElems(what,
		req{"spritesheet", doc.SpriteSheet},
		req{"frame_width", doc.FrameWidth},
		req{"frame_height", doc.FrameHeight},
		req{"stamina", doc.Stamina},
		req{"loop_frame", doc.LoopFrame},
		req{"collision_frame", doc.CollisionFrame},
		req{"x_speed", doc.SpeedX},
		req{"y_speed", doc.SpeedY},
	)
	if err != nil {
		return nil, err
	}
	if len(doc.Frames) == 0 {
		return nil, fmt.Errorf("%s: %w: <frame>", what, ErrMissingElement)
	}

	p := &ProjectileData{
		SpriteSheet: text(doc.SpriteSheet),
		Frames:      make([]Frame, 0, len(doc.Frames)),
	}
	if p.FrameWidth, err = toInt(what, "frame_width", doc.FrameWidth); err != nil {
		return nil, err
	}
	if p.FrameHeight, err = toInt(what, "frame_height", doc.FrameHeight); err != nil {
		return nil, err
	}
	if p.Stamina, err = toInt(what, "stamina", doc.Stamina); err != nil {
		return nil, err
	}
	if p.LoopFrame, err = toInt(what, "loop_frame", doc.LoopFrame); err != nil {
		return nil, err
	}
	if p.CollisionFrame, err = toInt(what, "collision_frame", doc.CollisionFrame); err != nil {
		return nil, err
	}
	if p.SpeedX, err = toInt(what, "x_speed", doc.SpeedX); err != nil {
		return nil, err
	}
	if p.SpeedY, err = toInt(what, "y_speed", doc.SpeedY); err != nil {
		return nil, err
	}

	baseDir := path.Dir(filePath)
	for i := range doc.Frames {
		if len(doc.Frames[i].Projectiles) > 0 {
			return nil, fmt.Errorf("%s frame %d: %w: nested projectile reference", what, i, ErrBadValue)
		}
		frame, err := convertFrame(fsys, baseDir, what, i, &doc.Frames[i])
		if err != nil {
			return nil, err
		}
		p.Frames = append(p.Frames, *frame)
	}

	if p.LoopFrame < 0 || p.LoopFrame >= len(p.Frames) {
		return nil, fmt.Errorf("%s: %w: loop_frame=%d of %d frames", what, ErrBadValue, p.LoopFrame, len(p.Frames))
	}
	if p.CollisionFrame < 0 || p.CollisionFrame >= len(p.Frames) {
		return nil, fmt.Errorf("%s: %w: collision_frame=%d of %d frames", what, ErrBadValue, p.CollisionFrame, len(p.Frames))
	}

	return p, nil
}
