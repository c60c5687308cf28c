package systems

import (
	"os"

	"github.com/MarquisLP/Sidewalk-Champion-sub000/components"
	cfg "github.com/MarquisLP/Sidewalk-Champion-sub000/config"
	"github.com/MarquisLP/Sidewalk-Champion-sub000/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateTitle creates the title screen update system. The character
// select scene is built lazily through the factory so title and select
// don't import each other's packages.
func NewUpdateTitle(sceneChanger SceneChanger, createCharSelectScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		// The settings overlay swallows input while open
		if IsSettingsOpen(e) {
			return
		}

		menu := getOrCreateMenu(e)
		input := getOrCreateInput(e)

		numOptions := len(menu.Options)
		if numOptions == 0 {
			return
		}

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)

			switch menu.Options[menu.SelectedIndex] {
			case components.TitleStart:
				sceneChanger.ChangeScene(createCharSelectScene())
			case components.TitleSettings:
				OpenSettings(e)
			case components.TitleExit:
				os.Exit(0)
			}
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			os.Exit(0)
		}
	}
}

func getOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
		menu := components.Menu.Get(entry)
		menu.Options = []components.TitleOption{
			components.TitleStart,
			components.TitleSettings,
			components.TitleExit,
		}
	}
	return components.Menu.Get(entry)
}

// DrawTitle renders the title screen
func DrawTitle(e *ecs.ECS, screen *ebiten.Image) {
	menu := getOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(screen.Bounds().Dy()),
		cfg.Title.BackgroundColor,
		false,
	)

	titleFont := fonts.Heading.Get()
	title := "SIDEWALK CHAMPION"
	titleWidth := len(title) * 12 // Approximate width for the heading font
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.Title.TitleY), cfg.Title.TitleColor)

	subFont := fonts.Small.Get()
	subtitle := "a street fighting tournament"
	subWidth := len(subtitle) * 6
	text.Draw(screen, subtitle, subFont, int((width-float64(subWidth))/2), int(cfg.Title.SubtitleY), cfg.Title.SubtitleColor)

	menuFont := fonts.Menu.Get()
	for i, option := range menu.Options {
		y := cfg.Title.MenuStartY + float64(i)*(cfg.Title.MenuItemHeight+cfg.Title.MenuItemGap)

		textColor := cfg.Title.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Title.TextColorSelected
		}

		label := cfg.Title.MenuOptions[option]
		textWidth := len(label) * 8
		x := int((width - float64(textWidth)) / 2)

		text.Draw(screen, label, menuFont, x, int(y)+int(cfg.Title.MenuItemHeight), textColor)
	}
}
