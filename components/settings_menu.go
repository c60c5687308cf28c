package components

import (
	"github.com/MarquisLP/Sidewalk-Champion-sub000/fighterdata"
	"github.com/yohamta/donburi"
)

// SettingsMenuOption represents menu items in the settings overlay
type SettingsMenuOption int

const (
	SettingsOptScreenScale SettingsMenuOption = iota
	SettingsOptShowBoxes
	SettingsOptBindingsP1
	SettingsOptBindingsP2
	SettingsOptBack
)

// SettingsMenuData stores the state of the settings overlay. The overlay
// edits a working copy and only persists it when the player backs out,
// so a dropped rebind never corrupts the saved settings.
type SettingsMenuData struct {
	IsOpen         bool
	SelectedOption SettingsMenuOption

	// Working is a deep copy of the active settings being edited.
	Working *fighterdata.SettingsData

	// Rebinding screen state. BindingIndex walks fighterdata.BindingActions.
	ShowingBindings bool
	BindingPlayer   int
	BindingIndex    int
	AwaitingKey     bool

	// Dirty marks edits not yet persisted.
	Dirty bool
}

// SettingsMenu is the component type for settings overlay state
var SettingsMenu = donburi.NewComponentType[SettingsMenuData]()
