package scenes

import (
	"image/color"
	"sync"

	"github.com/MarquisLP/Sidewalk-Champion-sub000/components"
	cfg "github.com/MarquisLP/Sidewalk-Champion-sub000/config"
	"github.com/MarquisLP/Sidewalk-Champion-sub000/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CharSelectScene lets both players pick from the roster.
type CharSelectScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *Session
	once         sync.Once
}

func NewCharSelectScene(sc SceneChanger, session *Session) *CharSelectScene {
	return &CharSelectScene{sceneChanger: sc, session: session}
}

func (cs *CharSelectScene) Update() {
	cs.once.Do(cs.configure)
	cs.ecs.Update()
}

func (cs *CharSelectScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)
}

// CharacterChosen records a player's pick in the session.
func (cs *CharSelectScene) CharacterChosen(playerIndex, rosterIndex int) {
	cs.session.Picked[playerIndex] = rosterIndex
}

// SelectionComplete moves on to stage select once both players locked in.
func (cs *CharSelectScene) SelectionComplete() {
	cs.sceneChanger.ChangeScene(NewStageSelectScene(cs.sceneChanger, cs.session))
}

// SelectionCancelled backs out to the title screen.
func (cs *CharSelectScene) SelectionCancelled() {
	cs.sceneChanger.ChangeScene(NewTitleScene(cs.sceneChanger, cs.session))
}

func (cs *CharSelectScene) configure() {
	cs.ecs = ecs.NewECS(donburi.NewWorld())

	entry := cs.ecs.World.Entry(cs.ecs.World.Create(components.CharSelect))
	data := components.CharSelect.Get(entry)
	data.Roster = cs.session.Roster
	for _, char := range cs.session.Roster {
		data.Mugshots = append(data.Mugshots, cs.session.Images.LoadOrPlaceholder(char.Mugshot, 64, 64))
	}

	cs.ecs.AddSystem(systems.UpdateAudio)
	cs.ecs.AddSystem(systems.UpdateInput)
	cs.ecs.AddSystem(systems.NewUpdateCharSelect(cs))
	cs.ecs.AddSystem(systems.UpdateSettingsMenu)

	cs.ecs.AddRenderer(cfg.Default, systems.DrawCharSelect)
	cs.ecs.AddRenderer(cfg.Default, systems.DrawSettingsMenu)

	systems.PlayMusic(cs.ecs, cfg.Sound.CharSelectMusic)
}
