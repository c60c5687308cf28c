package config

import (
	"github.com/MarquisLP/Sidewalk-Champion-sub000/fighterdata"
	"github.com/hajimehoshi/ebiten/v2"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota

	// Rebindable per-player battle inputs, mirroring
	// fighterdata.BindingActions.
	ActionUp
	ActionDown
	ActionBack
	ActionForward
	ActionLightPunch
	ActionMediumPunch
	ActionHeavyPunch
	ActionLightKick
	ActionMediumKick
	ActionHeavyKick
	ActionStart
	ActionCancel

	// Fixed menu navigation inputs.
	ActionMenuUp
	ActionMenuDown
	ActionMenuLeft
	ActionMenuRight
	ActionMenuSelect
	ActionMenuBack

	ActionCount // Must be last - used for array sizing
)

// BindingActionIDs maps the settings file's binding action names onto
// ActionIDs.
var BindingActionIDs = map[string]ActionID{
	"up":           ActionUp,
	"down":         ActionDown,
	"back":         ActionBack,
	"forward":      ActionForward,
	"light_punch":  ActionLightPunch,
	"medium_punch": ActionMediumPunch,
	"heavy_punch":  ActionHeavyPunch,
	"light_kick":   ActionLightKick,
	"medium_kick":  ActionMediumKick,
	"heavy_kick":   ActionHeavyKick,
	"start":        ActionStart,
	"cancel":       ActionCancel,
}

// ButtonActionIDs maps the button names allowed in an action's input steps
// onto ActionIDs (the rebindable inputs minus start/cancel).
var ButtonActionIDs = map[string]ActionID{
	"up":           ActionUp,
	"down":         ActionDown,
	"back":         ActionBack,
	"forward":      ActionForward,
	"light_punch":  ActionLightPunch,
	"medium_punch": ActionMediumPunch,
	"heavy_punch":  ActionHeavyPunch,
	"light_kick":   ActionLightKick,
	"medium_kick":  ActionMediumKick,
	"heavy_kick":   ActionHeavyKick,
}

// InputBinding represents the key bindings for a single action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds the fixed menu input mappings. Battle inputs come from
// the settings file via PlayerBindings.
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global menu input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMenuUp: {
				Keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
			},
			ActionMenuDown: {
				Keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
			},
			ActionMenuLeft: {
				Keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
			},
			ActionMenuRight: {
				Keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
			},
			ActionMenuSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
			},
			ActionMenuBack: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace},
			},
		},
	}
}

// KeyByName maps the key names stored in the settings file onto ebiten keys.
var KeyByName = map[string]ebiten.Key{
	"a": ebiten.KeyA, "b": ebiten.KeyB, "c": ebiten.KeyC, "d": ebiten.KeyD,
	"e": ebiten.KeyE, "f": ebiten.KeyF, "g": ebiten.KeyG, "h": ebiten.KeyH,
	"i": ebiten.KeyI, "j": ebiten.KeyJ, "k": ebiten.KeyK, "l": ebiten.KeyL,
	"m": ebiten.KeyM, "n": ebiten.KeyN, "o": ebiten.KeyO, "p": ebiten.KeyP,
	"q": ebiten.KeyQ, "r": ebiten.KeyR, "s": ebiten.KeyS, "t": ebiten.KeyT,
	"u": ebiten.KeyU, "v": ebiten.KeyV, "w": ebiten.KeyW, "x": ebiten.KeyX,
	"y": ebiten.KeyY, "z": ebiten.KeyZ,

	"0": ebiten.KeyDigit0, "1": ebiten.KeyDigit1, "2": ebiten.KeyDigit2,
	"3": ebiten.KeyDigit3, "4": ebiten.KeyDigit4, "5": ebiten.KeyDigit5,
	"6": ebiten.KeyDigit6, "7": ebiten.KeyDigit7, "8": ebiten.KeyDigit8,
	"9": ebiten.KeyDigit9,

	"up":    ebiten.KeyArrowUp,
	"down":  ebiten.KeyArrowDown,
	"left":  ebiten.KeyArrowLeft,
	"right": ebiten.KeyArrowRight,

	"space":     ebiten.KeySpace,
	"enter":     ebiten.KeyEnter,
	"backspace": ebiten.KeyBackspace,
	"tab":       ebiten.KeyTab,
	"lshift":    ebiten.KeyShiftLeft,
	"rshift":    ebiten.KeyShiftRight,
	"lctrl":     ebiten.KeyControlLeft,
	"rctrl":     ebiten.KeyControlRight,
	"lalt":      ebiten.KeyAltLeft,
	"ralt":      ebiten.KeyAltRight,

	"comma":      ebiten.KeyComma,
	"period":     ebiten.KeyPeriod,
	"slash":      ebiten.KeySlash,
	"semicolon":  ebiten.KeySemicolon,
	"quote":      ebiten.KeyQuote,
	"lbracket":   ebiten.KeyBracketLeft,
	"rbracket":   ebiten.KeyBracketRight,
	"minus":      ebiten.KeyMinus,
	"equal":      ebiten.KeyEqual,
	"backslash":  ebiten.KeyBackslash,
	"backquote":  ebiten.KeyBackquote,
	"kp0":        ebiten.KeyNumpad0,
	"kp1":        ebiten.KeyNumpad1,
	"kp2":        ebiten.KeyNumpad2,
	"kp3":        ebiten.KeyNumpad3,
	"kp4":        ebiten.KeyNumpad4,
	"kp5":        ebiten.KeyNumpad5,
	"kp6":        ebiten.KeyNumpad6,
	"kp7":        ebiten.KeyNumpad7,
	"kp8":        ebiten.KeyNumpad8,
	"kp9":        ebiten.KeyNumpad9,
	"kpenter":    ebiten.KeyNumpadEnter,
	"kpplus":     ebiten.KeyNumpadAdd,
	"kpminus":    ebiten.KeyNumpadSubtract,
	"kpmultiply": ebiten.KeyNumpadMultiply,
	"kpdivide":   ebiten.KeyNumpadDivide,
}

// keyNames is the reverse of KeyByName, built once for the rebinding UI.
var keyNames = func() map[ebiten.Key]string {
	names := make(map[ebiten.Key]string, len(KeyByName))
	for name, key := range KeyByName {
		if _, ok := names[key]; !ok {
			names[key] = name
		}
	}
	return names
}()

// KeyName returns the settings-file name for a key, or "" when the key is
// not bindable.
func KeyName(key ebiten.Key) string {
	return keyNames[key]
}

// PlayerBindings resolves a player's settings bindings into ebiten keys.
// Key names that resolve to no known key are left unbound.
func PlayerBindings(s *fighterdata.SettingsData, player int) map[ActionID]ebiten.Key {
	bindings := make(map[ActionID]ebiten.Key, len(fighterdata.BindingActions))
	for _, name := range fighterdata.BindingActions {
		keyName, ok := s.KeyBindings[player][name]
		if !ok {
			continue
		}
		key, ok := KeyByName[keyName]
		if !ok {
			continue
		}
		bindings[BindingActionIDs[name]] = key
	}
	return bindings
}
