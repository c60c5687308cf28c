package components

import (
	"github.com/MarquisLP/Sidewalk-Champion-sub000/fighterdata"
	"github.com/yohamta/donburi"
)

// FighterData is the battle state of one player's character.
type FighterData struct {
	PlayerIndex int
	Data        *fighterdata.CharacterData

	// Facing is config.DirectionLeft or config.DirectionRight and flips
	// when the fighters cross each other.
	Facing float64

	Stance fighterdata.Stance
	Meter  int

	// ActionName is the name of the action currently playing, kept so
	// systems can tell default movement states from triggered attacks.
	ActionName string
}

// InAttack reports whether the fighter is locked into a triggered
// action rather than a default movement state.
func (f *FighterData) InAttack() bool {
	_, isDefault := f.Data.DefaultActions[f.ActionName]
	return f.ActionName != "" && !isDefault
}

var Fighter = donburi.NewComponentType[FighterData]()
