package components

import (
	"github.com/MarquisLP/Sidewalk-Champion-sub000/fighterdata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CharSelectData stores the state of the character select screen.
type CharSelectData struct {
	Roster   []*fighterdata.CharacterData
	Mugshots []*ebiten.Image

	Cursor    [2]int
	Confirmed [2]bool

	// SlideOffset animates each player's preview panel in from off
	// screen whenever the cursor moves. SlideTween drives it.
	SlideOffset [2]float64
	SlideTween  [2]*gween.Tween
}

// AllConfirmed reports whether both players locked in a character.
func (c *CharSelectData) AllConfirmed() bool {
	return c.Confirmed[0] && c.Confirmed[1]
}

var CharSelect = donburi.NewComponentType[CharSelectData]()
