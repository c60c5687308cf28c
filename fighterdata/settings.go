package fighterdata

import (
	"encoding/xml"
	"fmt"
)

// SettingsItem is the key the settings document is stored under.
const SettingsItem = "settings.xml"

// Store is the persistence backend for the settings document. The game
// passes a gdata manager; tests pass an in-memory map.
type Store interface {
	LoadItem(name string) ([]byte, error)
	SaveItem(name string, data []byte) error
}

type settingsParseDoc struct {
	XMLName      xml.Name     `xml:"settings"`
	Verification string       `xml:"verification"`
	ScreenScale  *string      `xml:"screen_scale"`
	ShowBoxes    *string      `xml:"show_collision_boxes"`
	Player1      []bindingDoc `xml:"player1_keys>binding"`
	Player2      []bindingDoc `xml:"player2_keys>binding"`
}

type bindingDoc struct {
	Action *string `xml:"action,attr"`
	Key    *string `xml:"key,attr"`
}

type settingsWriteDoc struct {
	XMLName      xml.Name          `xml:"settings"`
	Verification string            `xml:"verification"`
	ScreenScale  int               `xml:"screen_scale"`
	ShowBoxes    int               `xml:"show_collision_boxes"`
	Player1      []bindingWriteDoc `xml:"player1_keys>binding"`
	Player2      []bindingWriteDoc `xml:"player2_keys>binding"`
}

type bindingWriteDoc struct {
	Action string `xml:"action,attr"`
	Key    string `xml:"key,attr"`
}

// DefaultSettings returns the hard-coded factory settings: 2x scale, boxes
// hidden, player 1 on WASD-style keys and player 2 on the arrow cluster.
func DefaultSettings() *SettingsData {
	return &SettingsData{
		ScreenScale: 2,
		ShowBoxes:   false,
		KeyBindings: [2]map[string]string{
			{
				"up":           "w",
				"down":         "s",
				"back":         "a",
				"forward":      "d",
				"light_punch":  "r",
				"medium_punch": "t",
				"heavy_punch":  "y",
				"light_kick":   "f",
				"medium_kick":  "g",
				"heavy_kick":   "h",
				"start":        "q",
				"cancel":       "e",
			},
			{
				"up":           "up",
				"down":         "down",
				"back":         "left",
				"forward":      "right",
				"light_punch":  "i",
				"medium_punch": "o",
				"heavy_punch":  "p",
				"light_kick":   "j",
				"medium_kick":  "k",
				"heavy_kick":   "l",
				"start":        "enter",
				"cancel":       "backspace",
			},
		},
	}
}

// LoadSettings reads the settings document from the store. On any failure
// (missing item, malformed XML, wrong verification code, bad fields) it
// regenerates the defaults, persists them wholesale, and returns them, so
// the caller always receives a usable object. The returned error reports
// only a failure to persist the regenerated defaults.
func LoadSettings(store Store) (*SettingsData, error) {
	data, err := store.LoadItem(SettingsItem)
	if err == nil && data != nil {
		if s, perr := parseSettings(data); perr == nil {
			return s, nil
		}
	}

	s := DefaultSettings()
	if err := SaveSettings(store, s); err != nil {
		return s, fmt.Errorf("regenerate default settings: %w", err)
	}
	return s, nil
}

// SaveSettings marshals the settings and rewrites the stored document
// wholesale.
func SaveSettings(store Store, s *SettingsData) error {
	data, err := marshalSettings(s)
	if err != nil {
		return err
	}
	if err := store.SaveItem(SettingsItem, data); err != nil {
		return fmt.Errorf("save %s: %w", SettingsItem, err)
	}
	return nil
}

func parseSettings(data []byte) (*SettingsData, error) {
	var doc settingsParseDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", SettingsItem, err)
	}
	if err := checkVerification(SettingsItem, doc.Verification, SettingsVerification); err != nil {
		return nil, err
	}

	what := "settings"
	err := requireElems(what,
		req{"screen_scale", doc.ScreenScale},
		req{"show_collision_boxes", doc.ShowBoxes},
	)
	if err != nil {
		return nil, err
	}

	s := &SettingsData{}
	if s.ScreenScale, err = toInt(what, "screen_scale", doc.ScreenScale); err != nil {
		return nil, err
	}
	if s.ScreenScale < 1 || s.ScreenScale > 3 {
		return nil, fmt.Errorf("%s: %w: screen_scale=%d", what, ErrBadValue, s.ScreenScale)
	}
	if s.ShowBoxes, err = toBool(what, "show_collision_boxes", doc.ShowBoxes); err != nil {
		return nil, err
	}

	players := [2][]bindingDoc{doc.Player1, doc.Player2}
	for p, bindings := range players {
		s.KeyBindings[p], err = convertBindings(fmt.Sprintf("%s player%d_keys", what, p+1), bindings)
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

// convertBindings checks that exactly the 12 binding actions are present and
// mapped to non-empty key names.
func convertBindings(what string, bindings []bindingDoc) (map[string]string, error) {
	out := make(map[string]string, len(BindingActions))
	for i := range bindings {
		b := &bindings[i]
		if err := requireAttrs(what, req{"action", b.Action}, req{"key", b.Key}); err != nil {
			return nil, err
		}
		action, key := text(b.Action), text(b.Key)
		if key == "" {
			return nil, fmt.Errorf("%s: %w: empty key for %q", what, ErrBadValue, action)
		}
		out[action] = key
	}

	for _, action := range BindingActions {
		if _, ok := out[action]; !ok {
			return nil, fmt.Errorf("%s: %w: <binding> %q", what, ErrMissingElement, action)
		}
	}
	if len(out) != len(BindingActions) {
		return nil, fmt.Errorf("%s: %w: unknown binding action", what, ErrBadValue)
	}
	return out, nil
}

func marshalSettings(s *SettingsData) ([]byte, error) {
	doc := settingsWriteDoc{
		Verification: SettingsVerification,
		ScreenScale:  s.ScreenScale,
	}
	if s.ShowBoxes {
		doc.ShowBoxes = 1
	}

	// Bindings are written in BindingActions order so saved files diff
	// cleanly.
	for _, action := range BindingActions {
		doc.Player1 = append(doc.Player1, bindingWriteDoc{Action: action, Key: s.KeyBindings[0][action]})
		doc.Player2 = append(doc.Player2, bindingWriteDoc{Action: action, Key: s.KeyBindings[1][action]})
	}

	data, err := xml.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", SettingsItem, err)
	}
	return append([]byte(xml.Header), data...), nil
}
