package systems

import (
	"log"

	cfg "github.com/MarquisLP/Sidewalk-Champion-sub000/config"
	"github.com/MarquisLP/Sidewalk-Champion-sub000/fighterdata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

var gdataManager *gdata.Manager
var activeSettings *fighterdata.SettingsData

// InitPersistence opens the gdata store used for the settings file.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "sidewalk-champion",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// BootSettings loads the settings at startup, regenerating defaults when
// the stored file is missing or unusable, and makes them the active
// settings. The returned settings are always usable.
func BootSettings() *fighterdata.SettingsData {
	var s *fighterdata.SettingsData
	if gdataManager != nil {
		loaded, err := fighterdata.LoadSettings(gdataManager)
		if err != nil {
			log.Printf("Warning: Could not persist regenerated settings: %v", err)
		}
		s = loaded
	} else {
		s = fighterdata.DefaultSettings()
	}
	activeSettings = s
	return s
}

// ActiveSettings returns the settings currently in effect.
func ActiveSettings() *fighterdata.SettingsData {
	return activeSettings
}

// CommitSettings makes s the active settings, persists it and resizes
// the window for the new screen scale.
func CommitSettings(s *fighterdata.SettingsData) {
	activeSettings = s
	if gdataManager != nil {
		if err := fighterdata.SaveSettings(gdataManager, s); err != nil {
			log.Printf("Warning: Could not save settings: %v", err)
		}
	}
	ApplySettings(s)
}

// ApplySettings applies display settings to the running game.
func ApplySettings(s *fighterdata.SettingsData) {
	ebiten.SetWindowSize(cfg.C.Width*s.ScreenScale, cfg.C.Height*s.ScreenScale)
}
