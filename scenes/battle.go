package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/MarquisLP/Sidewalk-Champion-sub000/config"
	"github.com/MarquisLP/Sidewalk-Champion-sub000/systems"
	"github.com/MarquisLP/Sidewalk-Champion-sub000/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BattleScene runs one round between the chosen characters on the
// chosen stage.
type BattleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *Session
	once         sync.Once
}

func NewBattleScene(sc SceneChanger, session *Session) *BattleScene {
	return &BattleScene{sceneChanger: sc, session: session}
}

func (bs *BattleScene) Update() {
	bs.once.Do(bs.configure)
	bs.ecs.Update()

	// Quitting fades the stage music out before handing over to the
	// title screen.
	if battle := systems.GetBattle(bs.ecs); battle != nil && battle.QuitToTitle {
		systems.StopMusic(bs.ecs)
		if systems.MusicStopped() {
			bs.sceneChanger.ChangeScene(NewTitleScene(bs.sceneChanger, bs.session))
		}
	}
}

func (bs *BattleScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if bs.ecs == nil {
		return
	}
	bs.ecs.Draw(screen)
}

func (bs *BattleScene) configure() {
	bs.ecs = ecs.NewECS(donburi.NewWorld())

	systems.SetBattleImageLoader(bs.session.Images)

	factory.CreateSpace(bs.ecs)
	factory.CreateBattle(bs.ecs)
	factory.CreateStage(bs.ecs, bs.session.Stage(), bs.session.Images)

	settings := systems.ActiveSettings()
	for p := 0; p < 2; p++ {
		factory.CreateFighter(bs.ecs, p, bs.session.Character(p), bs.session.Stage(), settings, bs.session.Images)
	}

	bs.ecs.AddSystem(systems.UpdateAudio)
	bs.ecs.AddSystem(systems.UpdateInput)
	bs.ecs.AddSystem(systems.UpdatePlayerInput)
	bs.ecs.AddSystem(systems.UpdateBattle)
	bs.ecs.AddSystem(systems.UpdateFighters)
	bs.ecs.AddSystem(systems.UpdateProjectiles)
	bs.ecs.AddSystem(systems.UpdateCollisionBoxes)
	bs.ecs.AddSystem(systems.UpdateSettingsMenu)

	bs.ecs.AddRenderer(cfg.Default, systems.DrawStage)
	bs.ecs.AddRenderer(cfg.Default, systems.DrawFighters)
	bs.ecs.AddRenderer(cfg.Default, systems.DrawProjectiles)
	bs.ecs.AddRenderer(cfg.Default, systems.DrawCollisionBoxes)
	bs.ecs.AddRenderer(cfg.Default, systems.DrawBattleHUD)
	bs.ecs.AddRenderer(cfg.Default, systems.DrawPauseMenu)
	bs.ecs.AddRenderer(cfg.Default, systems.DrawSettingsMenu)

	systems.PlayMusic(bs.ecs, bs.session.Stage().Music)
}
