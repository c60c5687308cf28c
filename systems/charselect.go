package systems

import (
	"github.com/MarquisLP/Sidewalk-Champion-sub000/components"
	cfg "github.com/MarquisLP/Sidewalk-Champion-sub000/config"
	"github.com/MarquisLP/Sidewalk-Champion-sub000/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

const tweenDT = 1.0 / 60.0

// CharSelectResult receives the outcome of the character select screen.
type CharSelectResult interface {
	CharacterChosen(playerIndex, rosterIndex int)
	SelectionComplete()
	SelectionCancelled()
}

// NewUpdateCharSelect creates the character select update system. Each
// player moves their own cursor with their bound direction keys.
func NewUpdateCharSelect(result CharSelectResult) ecs.System {
	return func(e *ecs.ECS) {
		if IsSettingsOpen(e) {
			return
		}

		entry, ok := components.CharSelect.First(e.World)
		if !ok {
			return
		}
		data := components.CharSelect.Get(entry)
		if len(data.Roster) == 0 {
			return
		}

		settings := ActiveSettings()
		for p := 0; p < 2; p++ {
			updatePlayerCursor(e, result, data, settings.KeyBindings[p], p)
		}

		if data.AllConfirmed() {
			result.SelectionComplete()
			return
		}

		// Esc backs out to the title screen when nobody locked in yet
		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionMenuBack).JustPressed && !data.Confirmed[0] && !data.Confirmed[1] {
			PlaySFX(e, cfg.SoundMenuCancel)
			result.SelectionCancelled()
		}

		for p := 0; p < 2; p++ {
			if tw := data.SlideTween[p]; tw != nil {
				offset, done := tw.Update(tweenDT)
				data.SlideOffset[p] = float64(offset)
				if done {
					data.SlideTween[p] = nil
					data.SlideOffset[p] = 0
				}
			}
		}
	}
}

func updatePlayerCursor(e *ecs.ECS, result CharSelectResult, data *components.CharSelectData, bindings map[string]string, p int) {
	if data.Confirmed[p] {
		// Cancel releases the lock so the player can pick again
		if bindingJustPressed(bindings, "cancel") {
			data.Confirmed[p] = false
			PlaySFX(e, cfg.SoundMenuCancel)
		}
		return
	}

	cols := cfg.CharSelect.GridColumns
	n := len(data.Roster)
	moved := false

	if bindingJustPressed(bindings, "back") {
		data.Cursor[p] = (data.Cursor[p] - 1 + n) % n
		moved = true
	}
	if bindingJustPressed(bindings, "forward") {
		data.Cursor[p] = (data.Cursor[p] + 1) % n
		moved = true
	}
	if bindingJustPressed(bindings, "up") && data.Cursor[p]-cols >= 0 {
		data.Cursor[p] -= cols
		moved = true
	}
	if bindingJustPressed(bindings, "down") && data.Cursor[p]+cols < n {
		data.Cursor[p] += cols
		moved = true
	}

	if moved {
		PlaySFX(e, cfg.SoundMenuNavigate)
		data.SlideOffset[p] = cfg.CharSelect.SlideInDistance
		data.SlideTween[p] = gween.New(
			float32(cfg.CharSelect.SlideInDistance), 0,
			cfg.CharSelect.SlideInDuration, ease.OutQuad,
		)
	}

	confirm := bindingJustPressed(bindings, "start") ||
		bindingJustPressed(bindings, "light_punch") ||
		bindingJustPressed(bindings, "medium_punch") ||
		bindingJustPressed(bindings, "heavy_punch")
	if confirm {
		data.Confirmed[p] = true
		result.CharacterChosen(p, data.Cursor[p])
		PlaySFX(e, cfg.SoundCharacterConfirm)
	}
}

// bindingJustPressed checks a named binding against the raw keyboard.
func bindingJustPressed(bindings map[string]string, action string) bool {
	key, ok := cfg.KeyByName[bindings[action]]
	if !ok {
		return false
	}
	return inpututil.IsKeyJustPressed(key)
}

// DrawCharSelect renders the roster grid, both cursors and the sliding
// preview panels.
func DrawCharSelect(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.CharSelect.First(e.World)
	if !ok {
		return
	}
	data := components.CharSelect.Get(entry)

	width := float64(screen.Bounds().Dx())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(screen.Bounds().Dy()),
		cfg.CharSelect.BackgroundColor,
		false,
	)

	titleFont := fonts.Menu.Get()
	heading := "CHOOSE YOUR FIGHTER"
	text.Draw(screen, heading, titleFont, int((width-float64(len(heading)*8))/2), 20, cfg.CharSelect.NameColor)

	drawPreviewPanels(screen, data, width)
	drawRosterGrid(screen, data, width)

	hint := "punch to confirm / cancel to unlock"
	text.Draw(screen, hint, titleFont, int((width-float64(len(hint)*6))/2), int(float64(screen.Bounds().Dy())-10), cfg.CharSelect.HintColor)
}

func drawRosterGrid(screen *ebiten.Image, data *components.CharSelectData, width float64) {
	cols := cfg.CharSelect.GridColumns
	cell := cfg.CharSelect.CellSize
	gap := cfg.CharSelect.CellGap

	gridW := float64(cols)*(cell+gap) - gap
	startX := (width - gridW) / 2

	for i := range data.Roster {
		col := i % cols
		row := i / cols
		x := startX + float64(col)*(cell+gap)
		y := cfg.CharSelect.GridTopY + float64(row)*(cell+gap)

		if mug := data.Mugshots[i]; mug != nil {
			op := &ebiten.DrawImageOptions{}
			sx := cell / float64(mug.Bounds().Dx())
			sy := cell / float64(mug.Bounds().Dy())
			op.GeoM.Scale(sx, sy)
			op.GeoM.Translate(x, y)
			screen.DrawImage(mug, op)
		}

		for p := 0; p < 2; p++ {
			if data.Cursor[p] != i {
				continue
			}
			c := cfg.CharSelect.CursorColors[p]
			if data.Confirmed[p] {
				c = cfg.CharSelect.LockedColor
			}
			// Inset player 2's cursor so overlapping cursors stay visible
			inset := float32(p * 3)
			vector.StrokeRect(
				screen,
				float32(x)+inset, float32(y)+inset,
				float32(cell)-2*inset, float32(cell)-2*inset,
				2, c, false,
			)
		}
	}
}

func drawPreviewPanels(screen *ebiten.Image, data *components.CharSelectData, width float64) {
	font := fonts.Menu.Get()

	for p := 0; p < 2; p++ {
		char := data.Roster[data.Cursor[p]]
		mug := data.Mugshots[data.Cursor[p]]

		// Panels slide in from their own screen edge
		var panelX float64
		if p == 0 {
			panelX = 16 - data.SlideOffset[p]
		} else {
			panelX = width - 16 - 64 + data.SlideOffset[p]
		}

		if mug != nil {
			op := &ebiten.DrawImageOptions{}
			sx := 64 / float64(mug.Bounds().Dx())
			sy := 64 / float64(mug.Bounds().Dy())
			op.GeoM.Scale(sx, sy)
			op.GeoM.Translate(panelX, 36)
			screen.DrawImage(mug, op)
		}

		nameColor := cfg.CharSelect.NameColor
		if data.Confirmed[p] {
			nameColor = cfg.CharSelect.LockedColor
		}
		text.Draw(screen, char.Name, font, int(panelX), 112, nameColor)
	}
}
