package systems

import (
	"fmt"
	"strings"

	"github.com/MarquisLP/Sidewalk-Champion-sub000/components"
	cfg "github.com/MarquisLP/Sidewalk-Champion-sub000/config"
	"github.com/MarquisLP/Sidewalk-Champion-sub000/fighterdata"
	"github.com/MarquisLP/Sidewalk-Champion-sub000/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const numSettingsOptions = int(components.SettingsOptBack) + 1

// Reusable slice for just-pressed key capture during rebinding
var pressedKeys []ebiten.Key

// GetOrCreateSettingsMenu returns the settings overlay singleton.
func GetOrCreateSettingsMenu(e *ecs.ECS) *components.SettingsMenuData {
	entry, ok := components.SettingsMenu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.SettingsMenu))
	}
	return components.SettingsMenu.Get(entry)
}

// OpenSettings opens the overlay over the current screen, editing a
// copy of the active settings.
func OpenSettings(e *ecs.ECS) {
	s := GetOrCreateSettingsMenu(e)
	s.IsOpen = true
	s.SelectedOption = components.SettingsOptScreenScale
	s.ShowingBindings = false
	s.AwaitingKey = false
	s.Dirty = false
	s.Working = ActiveSettings().Clone()
}

// IsSettingsOpen reports whether the overlay is covering the screen.
func IsSettingsOpen(e *ecs.ECS) bool {
	if entry, ok := components.SettingsMenu.First(e.World); ok {
		return components.SettingsMenu.Get(entry).IsOpen
	}
	return false
}

// UpdateSettingsMenu handles settings navigation, value changes and key
// rebinding.
func UpdateSettingsMenu(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)

	if !settings.IsOpen {
		return
	}

	input := getOrCreateInput(e)

	if settings.ShowingBindings {
		updateBindingsScreen(e, settings, input)
		return
	}

	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		settings.SelectedOption = components.SettingsMenuOption(
			(int(settings.SelectedOption) - 1 + numSettingsOptions) % numSettingsOptions,
		)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		settings.SelectedOption = components.SettingsMenuOption(
			(int(settings.SelectedOption) + 1) % numSettingsOptions,
		)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}

	if GetAction(input, cfg.ActionMenuLeft).JustPressed {
		adjustValue(e, settings, -1)
	}
	if GetAction(input, cfg.ActionMenuRight).JustPressed {
		adjustValue(e, settings, +1)
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		handleSelect(e, settings)
	}

	if GetAction(input, cfg.ActionMenuBack).JustPressed {
		closeSettings(e, settings)
	}
}

// updateBindingsScreen drives one player's key binding list. A selected
// binding waits for the next key press and stores its name.
func updateBindingsScreen(e *ecs.ECS, s *components.SettingsMenuData, input *components.InputData) {
	if s.AwaitingKey {
		pressedKeys = inpututil.AppendJustPressedKeys(pressedKeys[:0])
		for _, key := range pressedKeys {
			if key == ebiten.KeyEscape {
				s.AwaitingKey = false
				PlaySFX(e, cfg.SoundMenuCancel)
				return
			}
			name := cfg.KeyName(key)
			if name == "" {
				continue // Key has no stable name; keep waiting
			}
			action := fighterdata.BindingActions[s.BindingIndex]
			s.Working.KeyBindings[s.BindingPlayer][action] = name
			s.AwaitingKey = false
			s.Dirty = true
			PlaySFX(e, cfg.SoundMenuSelect)
			return
		}
		return
	}

	numBindings := len(fighterdata.BindingActions)
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		s.BindingIndex = (s.BindingIndex - 1 + numBindings) % numBindings
		PlaySFX(e, cfg.SoundMenuNavigate)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		s.BindingIndex = (s.BindingIndex + 1) % numBindings
		PlaySFX(e, cfg.SoundMenuNavigate)
	}
	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		s.AwaitingKey = true
		PlaySFX(e, cfg.SoundMenuSelect)
	}
	if GetAction(input, cfg.ActionMenuBack).JustPressed {
		s.ShowingBindings = false
		PlaySFX(e, cfg.SoundMenuCancel)
	}
}

// adjustValue changes the value for the selected option
func adjustValue(e *ecs.ECS, s *components.SettingsMenuData, direction int) {
	switch s.SelectedOption {
	case components.SettingsOptScreenScale:
		scale := s.Working.ScreenScale + direction
		if scale < 1 {
			scale = 1
		}
		if scale > 3 {
			scale = 3
		}
		if scale != s.Working.ScreenScale {
			s.Working.ScreenScale = scale
			s.Dirty = true
			PlaySFX(e, cfg.SoundMenuNavigate)
		}

	case components.SettingsOptShowBoxes:
		s.Working.ShowBoxes = !s.Working.ShowBoxes
		s.Dirty = true
		PlaySFX(e, cfg.SoundMenuSelect)
	}
}

// handleSelect handles the select/enter action
func handleSelect(e *ecs.ECS, s *components.SettingsMenuData) {
	switch s.SelectedOption {
	case components.SettingsOptShowBoxes:
		s.Working.ShowBoxes = !s.Working.ShowBoxes
		s.Dirty = true
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptBindingsP1:
		s.ShowingBindings = true
		s.BindingPlayer = 0
		s.BindingIndex = 0
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptBindingsP2:
		s.ShowingBindings = true
		s.BindingPlayer = 1
		s.BindingIndex = 0
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptBack:
		closeSettings(e, s)
	}
}

// closeSettings closes the overlay, persisting edits if any were made.
func closeSettings(e *ecs.ECS, s *components.SettingsMenuData) {
	s.IsOpen = false
	PlaySFX(e, cfg.SoundMenuCancel)
	if s.Dirty && s.Working != nil {
		CommitSettings(s.Working)
		RefreshPlayerBindings(e)
	}
	s.Working = nil
}

// DrawSettingsMenu renders the settings overlay.
func DrawSettingsMenu(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettingsMenu(e)

	if !settings.IsOpen || settings.Working == nil {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Title.BackgroundColor,
		false,
	)

	if settings.ShowingBindings {
		drawBindingsScreen(screen, settings, width, height)
		return
	}

	fontFace := fonts.Menu.Get()
	titleFont := fonts.Heading.Get()

	title := "SETTINGS"
	titleWidth := len(title) * 12
	text.Draw(screen, title, titleFont, int((width-float64(titleWidth))/2), 35, cfg.Title.TitleColor)

	menuItemHeight := 20.0
	menuItemGap := 8.0
	totalMenuHeight := float64(numSettingsOptions) * (menuItemHeight + menuItemGap)
	startY := (height - totalMenuHeight) / 2

	for opt := components.SettingsOptScreenScale; opt <= components.SettingsOptBack; opt++ {
		y := startY + float64(int(opt))*(menuItemHeight+menuItemGap)

		textColor := cfg.Title.TextColorNormal
		if opt == settings.SelectedOption {
			textColor = cfg.Title.TextColorSelected
		}

		label, value := optionDisplay(settings, opt)

		labelX := int(width/2) - 110
		text.Draw(screen, label, fontFace, labelX, int(y)+int(menuItemHeight), textColor)

		if value != "" {
			valueX := int(width/2) + 40
			text.Draw(screen, value, fontFace, valueX, int(y)+int(menuItemHeight), textColor)
		}
	}

	hint := "Arrows: Navigate   Left/Right: Change   Enter: Select   Esc: Back"
	hintFont := fonts.Small.Get()
	hintWidth := len(hint) * 5
	text.Draw(screen, hint, hintFont, int((width-float64(hintWidth))/2), int(height)-10, cfg.Title.TextColorNormal)
}

func optionDisplay(s *components.SettingsMenuData, opt components.SettingsMenuOption) (string, string) {
	switch opt {
	case components.SettingsOptScreenScale:
		return "Screen Scale", fmt.Sprintf("%dx", s.Working.ScreenScale)
	case components.SettingsOptShowBoxes:
		if s.Working.ShowBoxes {
			return "Collision Boxes", "On"
		}
		return "Collision Boxes", "Off"
	case components.SettingsOptBindingsP1:
		return "Player 1 Keys", ">"
	case components.SettingsOptBindingsP2:
		return "Player 2 Keys", ">"
	case components.SettingsOptBack:
		return "Back", ""
	}
	return "", ""
}

// drawBindingsScreen renders one player's rebindable key list.
func drawBindingsScreen(screen *ebiten.Image, s *components.SettingsMenuData, width, height float64) {
	fontFace := fonts.Menu.Get()
	titleFont := fonts.Heading.Get()
	smallFont := fonts.Small.Get()

	title := fmt.Sprintf("PLAYER %d KEYS", s.BindingPlayer+1)
	titleWidth := len(title) * 12
	text.Draw(screen, title, titleFont, int((width-float64(titleWidth))/2), 30, cfg.Title.TitleColor)

	startY := 48.0
	lineHeight := 13.0
	labelX := int(width/2) - 90
	valueX := int(width/2) + 30

	for i, action := range fighterdata.BindingActions {
		y := int(startY + float64(i)*lineHeight)

		textColor := cfg.Title.TextColorNormal
		if i == s.BindingIndex {
			textColor = cfg.Title.TextColorSelected
		}

		label := strings.ReplaceAll(action, "_", " ")
		text.Draw(screen, label, smallFont, labelX, y, textColor)

		value := s.Working.KeyBindings[s.BindingPlayer][action]
		if i == s.BindingIndex && s.AwaitingKey {
			value = "press a key..."
		}
		text.Draw(screen, value, smallFont, valueX, y, textColor)
	}

	hint := "Enter: Rebind   Esc: Back"
	hintWidth := len(hint) * 8
	text.Draw(screen, hint, fontFace, int((width-float64(hintWidth))/2), int(height)-10, cfg.Title.TextColorNormal)
}
