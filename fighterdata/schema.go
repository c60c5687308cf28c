package fighterdata

// Verification codes. Every data file carries one in a <verification>
// element; loaders hard-reject on mismatch.
const (
	CharacterVerification  = "skc-character-v1"
	ProjectileVerification = "skc-projectile-v1"
	StageVerification      = "skc-stage-v1"
	SettingsVerification   = "skc-settings-v1"
)

// DefaultActionNames lists the universal moves every character file must
// define. Character loading fails if any one of them is absent.
var DefaultActionNames = []string{
	"idle",
	"walk_forward",
	"walk_backward",
	"crouch_down",
	"crouching_idle",
	"crouch_up",
	"jump_up",
	"jump_forward",
	"jump_backward",
	"land",
	"block_standing",
	"block_crouching",
	"standing_hit",
	"crouching_hit",
	"jumping_hit",
	"knockback",
	"trip",
	"recover",
	"dizzy",
	"chip_ko",
	"intro",
	"victory",
}

// BindingActions lists the 12 rebindable inputs per player, in the order
// they appear in the settings file and the settings screen.
var BindingActions = []string{
	"up",
	"down",
	"back",
	"forward",
	"light_punch",
	"medium_punch",
	"heavy_punch",
	"light_kick",
	"medium_kick",
	"heavy_kick",
	"start",
	"cancel",
}

// ButtonNames lists the inputs that may appear in an action's input steps.
// Directions are relative to the character's facing.
var ButtonNames = []string{
	"up",
	"down",
	"back",
	"forward",
	"light_punch",
	"medium_punch",
	"heavy_punch",
	"light_kick",
	"medium_kick",
	"heavy_kick",
}

func validButton(name string) bool {
	for _, b := range ButtonNames {
		if b == name {
			return true
		}
	}
	return false
}
