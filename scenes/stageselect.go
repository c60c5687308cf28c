package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/MarquisLP/Sidewalk-Champion-sub000/config"
	"github.com/MarquisLP/Sidewalk-Champion-sub000/systems"
	"github.com/MarquisLP/Sidewalk-Champion-sub000/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StageSelectScene picks the battle stage. The list panel is an
// ebitenui widget tree; keyboard navigation drives the same callbacks
// the mouse does.
type StageSelectScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *Session
	stageUI      *ui.StageSelectUI
	once         sync.Once

	chosen bool
	backed bool
}

func NewStageSelectScene(sc SceneChanger, session *Session) *StageSelectScene {
	return &StageSelectScene{sceneChanger: sc, session: session}
}

func (ss *StageSelectScene) Update() {
	ss.once.Do(ss.configure)

	ss.ecs.Update()

	if !systems.IsSettingsOpen(ss.ecs) {
		ss.stageUI.Update()
		ss.updateKeyboardNav()
	}

	if ss.chosen {
		ss.sceneChanger.ChangeScene(NewBattleScene(ss.sceneChanger, ss.session))
		return
	}
	if ss.backed {
		ss.sceneChanger.ChangeScene(NewCharSelectScene(ss.sceneChanger, ss.session))
	}
}

func (ss *StageSelectScene) updateKeyboardNav() {
	input := systems.GetInput(ss.ecs)

	if systems.GetAction(input, cfg.ActionMenuUp).JustPressed {
		systems.PlaySFX(ss.ecs, cfg.SoundMenuNavigate)
		ss.stageUI.SetHighlight(ss.stageUI.Highlighted() - 1)
	}
	if systems.GetAction(input, cfg.ActionMenuDown).JustPressed {
		systems.PlaySFX(ss.ecs, cfg.SoundMenuNavigate)
		ss.stageUI.SetHighlight(ss.stageUI.Highlighted() + 1)
	}
	if systems.GetAction(input, cfg.ActionMenuSelect).JustPressed {
		systems.PlaySFX(ss.ecs, cfg.SoundMenuSelect)
		ss.chooseStage(ss.stageUI.Highlighted())
	}
	if systems.GetAction(input, cfg.ActionMenuBack).JustPressed {
		systems.PlaySFX(ss.ecs, cfg.SoundMenuCancel)
		ss.backed = true
	}
}

func (ss *StageSelectScene) chooseStage(index int) {
	ss.session.StageIndex = index
	ss.chosen = true
}

func (ss *StageSelectScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.StageSelect.BackgroundColor, false)

	// Preview of the highlighted stage behind the list panel.
	stage := ss.session.Stages[ss.stageUI.Highlighted()]
	if stage.Background != "" {
		if img, err := ss.session.Images.Load(stage.Background); err == nil {
			op := &ebiten.DrawImageOptions{}
			op.ColorScale.ScaleAlpha(0.5)
			screen.DrawImage(img, op)
		}
	}

	ss.stageUI.UI.Draw(screen)
	ss.ecs.Draw(screen)
}

func (ss *StageSelectScene) configure() {
	ss.ecs = ecs.NewECS(donburi.NewWorld())

	ss.stageUI = ui.NewStageSelectUI(
		ss.session.Stages,
		ss.chooseStage,
		func() { ss.backed = true },
	)

	ss.ecs.AddSystem(systems.UpdateAudio)
	ss.ecs.AddSystem(systems.UpdateInput)
	ss.ecs.AddSystem(systems.UpdateSettingsMenu)

	// The settings overlay is the only ECS renderer; the stage list
	// draws in Draw so it can sit over the preview.
	ss.ecs.AddRenderer(cfg.Default, systems.DrawSettingsMenu)

	// Keeps the select-screen track going; a no-op if already playing.
	systems.PlayMusic(ss.ecs, cfg.Sound.CharSelectMusic)
}
