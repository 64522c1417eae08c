package gameplay

import (
	"topdown/pkg/game/entities"
	"topdown/pkg/game/setup"
	"topdown/pkg/game/state"
)

const (
	// LeverReach is how close the player must walk to trip a lever
	LeverReach = 0.5
	// InteractReach is how close a lever must be for the use action
	InteractReach = 1.5
	// keySlop extends the player's radius when checking key-door contact
	keySlop = 0.1
)

// TriggerLevers pulls every lever the player has just walked onto
func TriggerLevers(g *state.Game) {
	p := g.PlayerActor()
	if p == nil || p.IsDead() {
		return
	}
	for _, l := range g.Levers {
		if p.Position.Dist(l.Position) >= p.Stats.Radius+LeverReach {
			g.EndContact(p.ID, l.ID)
			continue
		}
		if g.BeginContact(p.ID, l.ID) && l.State() != entities.LeverDisabled {
			l.Activate()
		}
	}
}

// PickUpItems lets the player take items it has just walked onto.
// Medkits heal on pickup and are used up.
func PickUpItems(g *state.Game) {
	p := g.PlayerActor()
	if p == nil || p.IsDead() || g.Holder == nil {
		return
	}
	for _, it := range g.Items {
		if !it.OnFloor() || p.Position.Dist(it.Position) >= p.Stats.Radius+entities.ItemRadius {
			g.EndContact(p.ID, it.ID)
			continue
		}
		if !g.BeginContact(p.ID, it.ID) {
			continue
		}
		if it.Type == setup.ItemMedkit {
			if p.Health() < p.MaxHealth() {
				p.Heal(setup.MedkitHeal)
				it.Destroy()
				logMessage(g, "MEDKIT_USED")
			}
			continue
		}
		g.Holder.Take(it)
	}
}

// UnlockTouchedDoors tries the held key on every door the player touches
func UnlockTouchedDoors(g *state.Game) {
	if g.Holder == nil || g.Holder.Held() == nil {
		return
	}
	k := g.KeyForItem(g.Holder.Held())
	if k == nil {
		return
	}
	p := g.Holder.Actor
	for _, d := range g.Doors {
		if _, hit := pushOut(p.Position, p.Stats.Radius+keySlop, d.Bounds()); hit {
			if k.TryUnlock(d) {
				return
			}
		}
	}
}

// Interact pulls the nearest lever in reach. It reports whether a lever moved.
func Interact(g *state.Game) bool {
	p := g.PlayerActor()
	if p == nil || p.IsDead() {
		return false
	}
	var nearest *entities.Lever
	best := InteractReach
	for _, l := range g.Levers {
		if d := p.Position.Dist(l.Position); d <= best {
			nearest, best = l, d
		}
	}
	if nearest == nil {
		return false
	}
	return g.ActivateLever(nearest.ID)
}
