package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/MarquisLP/Sidewalk-Champion-sub000/config"
	"github.com/MarquisLP/Sidewalk-Champion-sub000/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TitleScene displays the title menu
type TitleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *Session
	once         sync.Once
}

// NewTitleScene creates a new title scene
func NewTitleScene(sc SceneChanger, session *Session) *TitleScene {
	return &TitleScene{sceneChanger: sc, session: session}
}

func (ts *TitleScene) Update() {
	ts.once.Do(ts.configure)
	ts.ecs.Update()
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)
}

func (ts *TitleScene) configure() {
	ts.ecs = ecs.NewECS(donburi.NewWorld())

	createCharSelectScene := func() interface{} {
		return NewCharSelectScene(ts.sceneChanger, ts.session)
	}

	// Audio system runs first to initialize the audio context
	ts.ecs.AddSystem(systems.UpdateAudio)

	ts.ecs.AddSystem(systems.UpdateInput)
	ts.ecs.AddSystem(systems.NewUpdateTitle(ts.sceneChanger, createCharSelectScene))
	ts.ecs.AddSystem(systems.UpdateSettingsMenu)

	// Renderers (settings draws on top of the menu)
	ts.ecs.AddRenderer(cfg.Default, systems.DrawTitle)
	ts.ecs.AddRenderer(cfg.Default, systems.DrawSettingsMenu)

	systems.PlayMusic(ts.ecs, cfg.Sound.TitleMusic)
}
