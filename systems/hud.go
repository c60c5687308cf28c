package systems

import (
	"fmt"

	"github.com/MarquisLP/Sidewalk-Champion-sub000/components"
	cfg "github.com/MarquisLP/Sidewalk-Champion-sub000/config"
	"github.com/MarquisLP/Sidewalk-Champion-sub000/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawBattleHUD renders names, stamina and meter bars, the round timer
// and the intro callout.
func DrawBattleHUD(e *ecs.ECS, screen *ebiten.Image) {
	battle := GetBattle(e)
	if battle == nil {
		return
	}

	width := float64(screen.Bounds().Dx())
	hudFont := fonts.HUD.Get()

	components.Fighter.Each(e.World, func(entry *donburi.Entry) {
		fighter := components.Fighter.Get(entry)
		drawFighterBars(screen, fighter, width, hudFont)
	})

	// Round timer, in whole seconds, centered at the top.
	seconds := (battle.TimerTicks + 59) / 60
	timer := fmt.Sprintf("%02d", seconds)
	text.Draw(screen, timer, fonts.Heading.Get(), int(width/2)-12, 24, cfg.Battle.TimerColor)

	if battle.Phase == components.PhaseIntro {
		callout := "ROUND 1"
		if battle.IntroTicks < 40 {
			callout = "FIGHT!"
		}
		calloutFont := fonts.Heading.Get()
		calloutWidth := len(callout) * 12
		text.Draw(screen, callout, calloutFont, int((width-float64(calloutWidth))/2), cfg.C.Height/2, cfg.Battle.TimerColor)
	}
}

func drawFighterBars(screen *ebiten.Image, fighter *components.FighterData, width float64, hudFont font.Face) {
	margin := cfg.Battle.HUDBarMargin
	barW := cfg.Battle.HUDBarWidth
	barH := cfg.Battle.HUDBarHeight

	x := margin
	if fighter.PlayerIndex == 1 {
		x = width - margin - barW
	}

	// Stamina bar. Combat never resolves damage, so it always shows the
	// character's full stamina stat.
	vector.FillRect(screen, float32(x), float32(margin), float32(barW), float32(barH), cfg.Battle.StaminaBgColor, false)
	vector.FillRect(screen, float32(x), float32(margin), float32(barW), float32(barH), cfg.Battle.StaminaFgColor, false)

	// Meter bar below it, filled by the fighter's current meter.
	meterY := margin + barH + 2
	fill := barW * float64(fighter.Meter) / float64(maxMeter)
	vector.FillRect(screen, float32(x), float32(meterY), float32(barW), float32(cfg.Battle.MeterBarHeight), cfg.Battle.StaminaBgColor, false)
	if fighter.PlayerIndex == 1 {
		vector.FillRect(screen, float32(x+barW-fill), float32(meterY), float32(fill), float32(cfg.Battle.MeterBarHeight), cfg.Battle.MeterColor, false)
	} else {
		vector.FillRect(screen, float32(x), float32(meterY), float32(fill), float32(cfg.Battle.MeterBarHeight), cfg.Battle.MeterColor, false)
	}

	nameY := int(meterY + cfg.Battle.MeterBarHeight + 12)
	text.Draw(screen, fighter.Data.Name, hudFont, int(x), nameY, cfg.Battle.NameColor)
}

// DrawPauseMenu renders the pause overlay while the battle is paused.
func DrawPauseMenu(e *ecs.ECS, screen *ebiten.Image) {
	battle := GetBattle(e)
	if battle == nil || battle.Phase != components.PhasePaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	menuFont := fonts.Menu.Get()
	n := len(cfg.Pause.MenuOptions)
	totalH := float64(n) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	startY := (height - totalH) / 2

	for i, label := range cfg.Pause.MenuOptions {
		y := startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)

		textColor := cfg.Pause.TextColorNormal
		if i == battle.PauseIndex {
			textColor = cfg.Pause.TextColorSelected
		}

		textWidth := len(label) * 8
		x := int((width - float64(textWidth)) / 2)
		text.Draw(screen, label, menuFont, x, int(y)+int(cfg.Pause.MenuItemHeight), textColor)
	}
}
