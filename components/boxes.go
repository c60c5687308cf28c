package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// BoxesData is the per-fighter collision box state rebuilt each tick
// from the current animation frame. Boxes live in the battle's resolv
// space so overlap checks stay cheap; nothing resolves damage from
// them, they only feed the collision box display.
type BoxesData struct {
	Hurtboxes []*resolv.Object
	Hitboxes  []*resolv.Object

	// Overlapping marks hitboxes of this fighter touching an opposing
	// hurtbox this tick. FlashTicks keeps the overlap tint visible for
	// a few frames so single-tick touches register on screen.
	Overlapping bool
	FlashTicks  int
}

var Boxes = donburi.NewComponentType[BoxesData]()
