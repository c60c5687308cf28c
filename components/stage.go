package components

import (
	"github.com/MarquisLP/Sidewalk-Champion-sub000/fighterdata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// StageData carries the loaded stage definition plus its decoded art
// for the battle renderer (singleton component).
type StageData struct {
	Data       *fighterdata.StageData
	Background *ebiten.Image
	Parallax   *ebiten.Image
	PropImages []*ebiten.Image // Parallel to Data.Props
}

var Stage = donburi.NewComponentType[StageData]()
