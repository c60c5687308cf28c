package fighterdata

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// memStore is an in-memory Store for tests.
type memStore struct {
	items map[string][]byte
	fail  bool
}

func newMemStore() *memStore {
	return &memStore{items: make(map[string][]byte)}
}

func (m *memStore) LoadItem(name string) ([]byte, error) {
	return m.items[name], nil
}

func (m *memStore) SaveItem(name string, data []byte) error {
	if m.fail {
		return errors.New("store unavailable")
	}
	m.items[name] = data
	return nil
}

func TestLoadSettings_EmptyStoreRegeneratesDefaults(t *testing.T) {
	store := newMemStore()

	s, err := LoadSettings(store)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if !reflect.DeepEqual(s, DefaultSettings()) {
		t.Errorf("settings = %+v, want defaults", s)
	}

	saved := store.items[SettingsItem]
	if len(saved) == 0 {
		t.Fatal("defaults were not persisted")
	}
	reparsed, err := parseSettings(saved)
	if err != nil {
		t.Fatalf("persisted defaults do not parse: %v", err)
	}
	if got := reparsed.KeyBindings[0]["up"]; got != "w" {
		t.Errorf("persisted player 1 up = %q, want %q", got, "w")
	}
}

func TestLoadSettings_WrongVerificationRegenerates(t *testing.T) {
	store := newMemStore()
	good, _ := marshalSettings(DefaultSettings())
	store.items[SettingsItem] = []byte(strings.Replace(string(good),
		SettingsVerification, "skc-character-v1", 1))

	s, err := LoadSettings(store)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if got := s.KeyBindings[0]["up"]; got != "w" {
		t.Errorf("player 1 up = %q, want %q", got, "w")
	}
	if got := s.KeyBindings[1]["start"]; got != "enter" {
		t.Errorf("player 2 start = %q, want %q", got, "enter")
	}

	// The store must hold a freshly written default file again.
	if _, err := parseSettings(store.items[SettingsItem]); err != nil {
		t.Errorf("store does not hold valid regenerated settings: %v", err)
	}
}

func TestLoadSettings_SaveFailureStillReturnsUsable(t *testing.T) {
	store := newMemStore()
	store.fail = true

	s, err := LoadSettings(store)
	if err == nil {
		t.Error("expected persist error to be reported")
	}
	if s == nil || s.ScreenScale != 2 {
		t.Fatalf("settings unusable: %+v", s)
	}
}

func TestSettings_RoundTrip(t *testing.T) {
	store := newMemStore()
	s := DefaultSettings()
	s.ScreenScale = 3
	s.ShowBoxes = true
	s.KeyBindings[0]["light_punch"] = "z"
	s.KeyBindings[1]["cancel"] = "space"

	if err := SaveSettings(store, s); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}
	loaded, err := LoadSettings(store)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if !reflect.DeepEqual(s, loaded) {
		t.Errorf("round trip mismatch:\nsaved:  %+v\nloaded: %+v", s, loaded)
	}
}

func TestParseSettings_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(string) string
		wantErr error
	}{
		{
			name: "scale out of range",
			mutate: func(s string) string {
				return strings.Replace(s, "<screen_scale>2</screen_scale>", "<screen_scale>4</screen_scale>", 1)
			},
			wantErr: ErrBadValue,
		},
		{
			name: "non-numeric scale",
			mutate: func(s string) string {
				return strings.Replace(s, "<screen_scale>2</screen_scale>", "<screen_scale>big</screen_scale>", 1)
			},
			wantErr: ErrBadValue,
		},
	}

	base, err := marshalSettings(DefaultSettings())
	if err != nil {
		t.Fatalf("marshalSettings failed: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseSettings([]byte(tt.mutate(string(base))))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseSettings_MissingBinding(t *testing.T) {
	base, _ := marshalSettings(DefaultSettings())
	mutated := strings.Replace(string(base),
		`<binding action="up" key="w"></binding>`, "", 1)
	if mutated == string(base) {
		t.Fatal("fixture mutation did not apply")
	}

	_, err := parseSettings([]byte(mutated))
	if !errors.Is(err, ErrMissingElement) {
		t.Errorf("err = %v, want ErrMissingElement", err)
	}
}
