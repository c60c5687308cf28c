package components

import (
	cfg "github.com/MarquisLP/Sidewalk-Champion-sub000/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component)
type AudioData struct {
	Context         *audio.Context
	MusicPlayer     *audio.Player
	MusicVolume     float64 // 0.0 - 1.0
	SFXVolume       float64
	CurrentMusicKey string // Track which music is playing
	PendingSFX      []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
