package systems

import (
	"github.com/MarquisLP/Sidewalk-Champion-sub000/components"
	cfg "github.com/MarquisLP/Sidewalk-Champion-sub000/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetBattle returns the round state singleton, or nil before the scene
// configured it.
func GetBattle(e *ecs.ECS) *components.BattleData {
	entry, ok := components.Battle.First(e.World)
	if !ok {
		return nil
	}
	return components.Battle.Get(entry)
}

// UpdateBattle advances the round clock and drives the pause menu.
// Fighters only act during PhaseFighting.
func UpdateBattle(e *ecs.ECS) {
	battle := GetBattle(e)
	if battle == nil {
		return
	}

	if IsSettingsOpen(e) {
		return
	}

	input := getOrCreateInput(e)

	switch battle.Phase {
	case components.PhaseIntro:
		battle.IntroTicks--
		if battle.IntroTicks <= 0 {
			battle.Phase = components.PhaseFighting
			PlaySFX(e, cfg.SoundRoundStart)
		}

	case components.PhaseFighting:
		battle.RoundTicks++
		if battle.TimerTicks > 0 {
			battle.TimerTicks--
		}
		if anyStartPressed(e) {
			battle.Phase = components.PhasePaused
			battle.PauseIndex = 0
			PlaySFX(e, cfg.SoundMenuSelect)
		}

	case components.PhasePaused:
		updatePauseMenu(e, battle, input)
	}
}

// anyStartPressed reports a fresh press of either player's start key.
func anyStartPressed(e *ecs.ECS) bool {
	pressed := false
	components.PlayerInput.Each(e.World, func(entry *donburi.Entry) {
		input := components.PlayerInput.Get(entry)
		if PlayerAction(input, cfg.ActionStart).JustPressed {
			pressed = true
		}
	})
	return pressed
}

func updatePauseMenu(e *ecs.ECS, battle *components.BattleData, input *components.InputData) {
	n := len(cfg.Pause.MenuOptions)

	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		battle.PauseIndex = (battle.PauseIndex - 1 + n) % n
		PlaySFX(e, cfg.SoundMenuNavigate)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		battle.PauseIndex = (battle.PauseIndex + 1) % n
		PlaySFX(e, cfg.SoundMenuNavigate)
	}

	if GetAction(input, cfg.ActionMenuBack).JustPressed || anyStartPressed(e) {
		battle.Phase = components.PhaseFighting
		PlaySFX(e, cfg.SoundMenuCancel)
		return
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		PlaySFX(e, cfg.SoundMenuSelect)
		switch cfg.Pause.MenuOptions[battle.PauseIndex] {
		case "Resume":
			battle.Phase = components.PhaseFighting
		case "Settings":
			OpenSettings(e)
		case "Quit to Title":
			battle.QuitToTitle = true
		}
	}
}
