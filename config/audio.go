package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
	SoundMenuCancel
	SoundCharacterConfirm
	// Battle sounds
	SoundRoundStart
	SoundActionStart
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate        int
	DefaultMusicVol   float64
	DefaultSFXVol     float64
	MusicFadeDuration int // frames for music fade out (60 = 1 second at 60fps)
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	TitleMusic      string
	CharSelectMusic string
	SFXPaths        map[SoundID]string
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:        44100,
		DefaultMusicVol:   0.75,
		DefaultSFXVol:     1.0,
		MusicFadeDuration: 60,
	}

	Sound = SoundConfig{
		TitleMusic:      "audio/music/title.ogg",
		CharSelectMusic: "audio/music/select.ogg",
		SFXPaths: map[SoundID]string{
			SoundMenuNavigate:     "audio/sfx/navigate.wav",
			SoundMenuSelect:       "audio/sfx/select.wav",
			SoundMenuCancel:       "audio/sfx/cancel.wav",
			SoundCharacterConfirm: "audio/sfx/confirm.wav",
			SoundRoundStart:       "audio/sfx/round_start.wav",
			SoundActionStart:      "audio/sfx/action.wav",
		},
	}
}
