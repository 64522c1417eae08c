package levelgen

import (
	"strings"

	"topdown/pkg/game/entities"
)

// Archetype families, keyed by the first letter of a mnemonic
const (
	FamilyShooter  = 's'
	FamilyKamikaze = 'k'
	FamilyFollower = 'f'
	FamilyTurret   = 't'
)

// Archetypes maps level-file mnemonics to enemy stats
var Archetypes = map[string]entities.ActorStats{
	"s1": shooter("s1", 30, 40, 5),
	"s2": shooter("s2", 45, 30, 7),
	"s3": shooter("s3", 60, 20, 9),

	"k1": kamikaze("k1", 10, 2.0, 15),
	"k2": kamikaze("k2", 15, 2.6, 20),
	"k3": kamikaze("k3", 20, 3.2, 30),

	"f1": follower("f1", 40, 1.6, 10),
	"f2": follower("f2", 70, 1.3, 15),

	"t1": turret("t1", 50, 50, 6),
	"t2": turret("t2", 80, 35, 8),
	"t3": turret("t3", 120, 20, 10),
}

func shooter(name string, hp float64, frames int, damage float64) entities.ActorStats {
	return entities.ActorStats{
		Name:                  name,
		MaxHealth:             hp,
		MoveAccel:             4,
		MoveDecel:             4,
		MoveMax:               1.2,
		ContactDamage:         5,
		UseWeapon:             true,
		MinFramesBetweenShots: frames,
		ProjectileSpeed:       5,
		ProjectileDamage:      damage,
		FollowDistance:        4,
	}
}

func kamikaze(name string, hp, speed, damage float64) entities.ActorStats {
	return entities.ActorStats{
		Name:               name,
		MaxHealth:          hp,
		MoveAccel:          6,
		MoveDecel:          6,
		MoveMax:            speed,
		ExplodeOnCollision: true,
		ContactDamage:      damage,
		Kamikaze:           true,
	}
}

func follower(name string, hp, speed, damage float64) entities.ActorStats {
	return entities.ActorStats{
		Name:           name,
		MaxHealth:      hp,
		MoveAccel:      5,
		MoveDecel:      5,
		MoveMax:        speed,
		ContactDamage:  damage,
		FollowDistance: 0.5,
	}
}

func turret(name string, hp float64, frames int, damage float64) entities.ActorStats {
	return entities.ActorStats{
		Name:                  name,
		MaxHealth:             hp,
		Stationary:            true,
		UseWeapon:             true,
		MinFramesBetweenShots: frames,
		ProjectileSpeed:       4,
		ProjectileDamage:      damage,
		Radius:                0.5,
	}
}

// Archetype looks up a mnemonic. Matching ignores case and surrounding space.
func Archetype(mnemonic string) (entities.ActorStats, bool) {
	stats, ok := Archetypes[strings.ToLower(strings.TrimSpace(mnemonic))]
	return stats, ok
}
