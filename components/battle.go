package components

import "github.com/yohamta/donburi"

// BattlePhase is the coarse state of a battle round.
type BattlePhase int

const (
	PhaseIntro BattlePhase = iota
	PhaseFighting
	PhasePaused
)

// BattleData stores round-level battle state (singleton component).
type BattleData struct {
	Phase      BattlePhase
	RoundTicks int // Ticks elapsed since the round started
	TimerTicks int // Ticks remaining on the round clock
	IntroTicks int // Ticks left before control is handed to the players

	PauseIndex  int // Selected pause menu entry
	QuitToTitle bool
}

var Battle = donburi.NewComponentType[BattleData]()
