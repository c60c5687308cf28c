package tags

import "github.com/yohamta/donburi"

var (
	Fighter    = donburi.NewTag().SetName("Fighter")
	Projectile = donburi.NewTag().SetName("Projectile")
)

// Resolv tags for overlap checks
const (
	ResolvFighter    = "fighter"
	ResolvHurtboxP1  = "hurtbox_p1"
	ResolvHurtboxP2  = "hurtbox_p2"
	ResolvHitbox     = "hitbox"
	ResolvProjectile = "projectile"
)

// ResolvHurtbox returns the hurtbox tag for a player index.
func ResolvHurtbox(playerIndex int) string {
	if playerIndex == 0 {
		return ResolvHurtboxP1
	}
	return ResolvHurtboxP2
}
