package systems

import (
	"io/fs"
	"sync"

	"github.com/MarquisLP/Sidewalk-Champion-sub000/assets"
	"github.com/MarquisLP/Sidewalk-Champion-sub000/components"
	cfg "github.com/MarquisLP/Sidewalk-Champion-sub000/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalContentFS    fs.FS
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicKey     string
	globalMusicVolume  float64 = cfg.Audio.DefaultMusicVol
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	musicFadeTicks     int
	audioInitOnce      sync.Once
)

// SetContentFS tells the audio systems where game content lives. Must be
// called before the first scene updates.
func SetContentFS(fsys fs.FS) {
	globalContentFS = fsys
}

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalContentFS, globalAudioContext)
	})
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on
// first play. Missing files are tolerated; the game just stays silent
// for those sounds.
func PreloadAllSFX() {
	if globalContentFS == nil {
		return
	}
	initGlobalAudio()

	for _, path := range cfg.Sound.SFXPaths {
		_ = globalAudioLoader.PreloadSFX(path)
	}
}

// UpdateAudio processes pending SFX queued by other systems.
func UpdateAudio(e *ecs.ECS) {
	if globalContentFS == nil {
		return
	}
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]

	updateMusicFade()
}

// updateMusicFade steps an in-progress fade-out and closes the player
// once it reaches silence.
func updateMusicFade() {
	if musicFadeTicks <= 0 || globalMusicPlayer == nil {
		return
	}
	musicFadeTicks--
	if musicFadeTicks == 0 {
		closeMusic()
		return
	}
	frac := float64(musicFadeTicks) / float64(cfg.Audio.MusicFadeDuration)
	globalMusicPlayer.SetVolume(globalMusicVolume * frac)
}

// PlaySFX queues a sound effect for the next UpdateAudio pass.
func PlaySFX(e *ecs.ECS, soundID cfg.SoundID) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
	}
	audioData := components.Audio.Get(entry)
	audioData.PendingSFX = append(audioData.PendingSFX, soundID)
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		return
	}

	player.SetVolume(globalSFXVolume)
	player.Play()
}

// PlayMusic starts playing looping music from the given content path.
// Restarting the music already playing is a no-op.
func PlayMusic(e *ecs.ECS, musicPath string) {
	if globalContentFS == nil || musicPath == "" {
		return
	}
	initGlobalAudio()

	// A track mid-fade restarts rather than counting as already playing.
	if globalMusicKey == musicPath && musicFadeTicks == 0 {
		return
	}

	closeMusic()

	player, err := globalAudioLoader.LoadMusic(musicPath)
	if err != nil {
		return
	}

	player.SetVolume(globalMusicVolume)
	player.Play()

	globalMusicPlayer = player
	globalMusicKey = musicPath
}

// StopMusic fades the current track out over the configured duration.
func StopMusic(e *ecs.ECS) {
	if globalMusicPlayer == nil || musicFadeTicks > 0 {
		return
	}
	musicFadeTicks = cfg.Audio.MusicFadeDuration
}

// MusicStopped reports that no track is playing, fade included.
func MusicStopped() bool {
	return globalMusicPlayer == nil
}

func closeMusic() {
	musicFadeTicks = 0
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
		globalMusicKey = ""
	}
}
