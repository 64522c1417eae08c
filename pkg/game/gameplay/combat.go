package gameplay

import (
	"topdown/pkg/game/entities"
	"topdown/pkg/game/state"
)

// contactSlop lets actors resting against each other stay in contact
const contactSlop = 0.05

func touching(a, b *entities.Actor) bool {
	return a.Position.Dist(b.Position) < a.Stats.Radius+b.Stats.Radius+contactSlop
}

// ResolveContacts applies contact damage for hostile pairs that started
// touching since the last tick. Pairs that stay in contact deal no further
// damage until they separate.
func ResolveContacts(g *state.Game) {
	for i, a := range g.Actors {
		for _, b := range g.Actors[i+1:] {
			if !a.HostileTo(b) {
				continue
			}
			if !touching(a, b) {
				g.EndContact(a.ID, b.ID)
				continue
			}
			if g.BeginContact(a.ID, b.ID) {
				entities.ResolveContact(a, b)
			}
		}
	}
}

// ResolveProjectileHits lets every live projectile damage the first hostile
// actor it overlaps
func ResolveProjectileHits(g *state.Game) {
	for _, p := range g.Projectiles {
		if p.Spent() {
			continue
		}
		for _, a := range g.Actors {
			if a.IsDead() || a.Faction == p.Faction || !p.Touches(a) {
				continue
			}
			p.Hit(a)
			break
		}
	}
}

// AdvanceProjectiles moves projectiles and removes those that left the
// arena or struck a wall or closed door
func AdvanceProjectiles(g *state.Game, dt float64) {
	for _, p := range g.Projectiles {
		p.Advance(dt)
		if p.Spent() {
			continue
		}
		if !g.Arena.Contains(p.Position) || blocked(g, p.Position) {
			p.Expire()
		}
	}
}
