package fonts

import "testing"

func TestLoadFallsBackToGoRegular(t *testing.T) {
	Load(nil)

	for _, name := range []FontName{Menu, Heading, HUD, Small} {
		if name.Get() == nil {
			t.Errorf("Get(%s) returned nil after fallback load", name)
		}
	}
}
