package components

import (
	"github.com/MarquisLP/Sidewalk-Champion-sub000/fighterdata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ProjectileData animates one in-flight projectile. Frames before
// CollisionFrame loop back to LoopFrame while the projectile travels;
// once Colliding is set playback runs from CollisionFrame to the end
// and the entity is removed.
type ProjectileData struct {
	Data  *fighterdata.ProjectileData
	Sheet *ebiten.Image

	OwnerIndex int
	Facing     float64

	FrameIndex int
	FrameTicks int
	Colliding  bool
}

var Projectile = donburi.NewComponentType[ProjectileData]()
