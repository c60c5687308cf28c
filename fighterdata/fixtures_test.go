package fighterdata

import (
	"fmt"
	"strings"
)

// Test fixture builders. Characters are assembled action-by-action so tests
// can drop or corrupt individual pieces.

func testActionXML(name string) string {
	return fmt.Sprintf(`<action>
  <name>%s</name>
  <spritesheet>sheets/%s.png</spritesheet>
  <frame_width>64</frame_width>
  <frame_height>96</frame_height>
  <x_offset>4</x_offset>
  <stance>standing</stance>
  <multi_hit>0</multi_hit>
  <input_priority>0</input_priority>
  <meter_cost>0</meter_cost>
  <meter_gain>2</meter_gain>
  <proximity>0</proximity>
  <counter_frame>-1</counter_frame>
  <frames>
    <frame>
      <duration>4</duration>
      <cancel>never</cancel>
      <x_shift>0</x_shift>
      <y_shift>0</y_shift>
      <hurtboxes><hurtbox x="-12" y="-88" w="24" h="88"/></hurtboxes>
    </frame>
  </frames>
</action>`, name, name)
}

// testFireballActionXML is a special move with an input sequence, a hitbox
// and a projectile spawn.
func testFireballActionXML() string {
	return `<action>
  <name>fireball</name>
  <spritesheet>sheets/fireball.png</spritesheet>
  <frame_width>80</frame_width>
  <frame_height>96</frame_height>
  <x_offset>0</x_offset>
  <stance>standing</stance>
  <multi_hit>0</multi_hit>
  <input_priority>10</input_priority>
  <meter_cost>25</meter_cost>
  <meter_gain>0</meter_gain>
  <proximity>0</proximity>
  <counter_frame>2</counter_frame>
  <input>
    <step>down</step>
    <step>down+forward</step>
    <step>forward+light_punch</step>
  </input>
  <frames>
    <frame>
      <duration>6</duration>
      <cancel>never</cancel>
      <x_shift>0</x_shift>
      <y_shift>0</y_shift>
      <hurtboxes><hurtbox x="-12" y="-88" w="24" h="88"/></hurtboxes>
      <hitboxes>
        <hitbox x="16" y="-64" w="28" h="20" damage="9" hitstun="14"
                blockstun="8" knockback="5" dizzy="3" effect="burn"
                block_high="1" block_low="1"/>
      </hitboxes>
    </frame>
    <frame>
      <duration>8</duration>
      <cancel>special</cancel>
      <x_shift>2</x_shift>
      <y_shift>0</y_shift>
      <hurtboxes><hurtbox x="-12" y="-88" w="24" h="88"/></hurtboxes>
      <projectiles><projectile path="fireball.xml" x="32" y="-60"/></projectiles>
    </frame>
  </frames>
</action>`
}

func testProjectileXML() string {
	return `<?xml version="1.0"?>
<projectile>
  <verification>skc-projectile-v1</verification>
  <spritesheet>sheets/fireball_proj.png</spritesheet>
  <frame_width>32</frame_width>
  <frame_height>24</frame_height>
  <stamina>1</stamina>
  <loop_frame>0</loop_frame>
  <collision_frame>2</collision_frame>
  <x_speed>6</x_speed>
  <y_speed>0</y_speed>
  <frames>
    <frame>
      <duration>3</duration>
      <cancel>never</cancel>
      <x_shift>0</x_shift>
      <y_shift>0</y_shift>
      <hitboxes>
        <hitbox x="0" y="-12" w="32" h="24" damage="7" hitstun="12"
                blockstun="6" knockback="4" dizzy="0" effect=""
                block_high="1" block_low="1"/>
      </hitboxes>
    </frame>
    <frame>
      <duration>3</duration>
      <cancel>never</cancel>
      <x_shift>0</x_shift>
      <y_shift>0</y_shift>
    </frame>
    <frame>
      <duration>4</duration>
      <cancel>never</cancel>
      <x_shift>0</x_shift>
      <y_shift>0</y_shift>
    </frame>
  </frames>
</projectile>`
}

// testCharacterXML assembles a character document from action blocks.
func testCharacterXML(name, verification string, actions []string) string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\"?>\n<character>\n")
	fmt.Fprintf(&b, "  <verification>%s</verification>\n", verification)
	fmt.Fprintf(&b, "  <name>%s</name>\n", name)
	b.WriteString("  <speed>3</speed>\n")
	b.WriteString("  <stamina>100</stamina>\n")
	b.WriteString("  <stun_threshold>40</stun_threshold>\n")
	fmt.Fprintf(&b, "  <mugshot>mugshots/%s.png</mugshot>\n", name)
	b.WriteString("  <actions>\n")
	for _, a := range actions {
		b.WriteString(a)
		b.WriteString("\n")
	}
	b.WriteString("  </actions>\n</character>\n")
	return b.String()
}

// testDefaultActions returns one action block per universal move name.
func testDefaultActions() []string {
	actions := make([]string, 0, len(DefaultActionNames))
	for _, name := range DefaultActionNames {
		actions = append(actions, testActionXML(name))
	}
	return actions
}

func testValidCharacterXML(name string) string {
	return testCharacterXML(name, CharacterVerification, testDefaultActions())
}

func testStageXML(name, verification, propsElem string) string {
	return fmt.Sprintf(`<?xml version="1.0"?>
<stage>
  <verification>%s</verification>
  <name>%s</name>
  <subtitle>Back Alley</subtitle>
  <background>backgrounds/%s.png</background>
  <parallax>backgrounds/%s_far.png</parallax>
  <parallax_depth>40</parallax_depth>
  <ground_level>200</ground_level>
  <x_offset>-64</x_offset>
  <music>music/%s.ogg</music>
  %s
</stage>`, verification, name, name, name, name, propsElem)
}
