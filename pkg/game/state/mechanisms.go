package state

import (
	"topdown/pkg/engine/world"
	"topdown/pkg/game/entities"
)

// AddDoor places a door
func (g *Game) AddDoor(name string, origin world.Vec2, cfg entities.DoorConfig) *entities.Door {
	d := entities.NewDoor(g.NextID(), name, origin, cfg, g.Events)
	g.Doors = append(g.Doors, d)
	return d
}

// AddLever places a lever
func (g *Game) AddLever(name string, pos world.Vec2, cfg entities.LeverConfig) *entities.Lever {
	l := entities.NewLever(g.NextID(), name, pos, cfg, g.Events)
	g.Levers = append(g.Levers, l)
	return l
}

// AddItem places a carryable item
func (g *Game) AddItem(itemType string, pos world.Vec2, respawns bool) *entities.CarryItem {
	it := entities.NewCarryItem(g.NextID(), itemType, pos, respawns, g.Events)
	g.Items = append(g.Items, it)
	return it
}

// AddKey places a key item that fits doors with the given index
func (g *Game) AddKey(pos world.Vec2, index, value int) *entities.Key {
	it := g.AddItem(entities.ItemKey, pos, false)
	k := entities.NewKey(g.NextID(), index, value, it, g.Events)
	g.Keys = append(g.Keys, k)
	return k
}

// Door returns the door with the given ID, or nil
func (g *Game) Door(id entities.ID) *entities.Door {
	for _, d := range g.Doors {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// Lever returns the lever with the given ID, or nil
func (g *Game) Lever(id entities.ID) *entities.Lever {
	for _, l := range g.Levers {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// Key returns the key with the given ID, or nil
func (g *Game) Key(id entities.ID) *entities.Key {
	for _, k := range g.Keys {
		if k.ID == id {
			return k
		}
	}
	return nil
}

// KeyForItem returns the key wrapping a carry item, or nil
func (g *Game) KeyForItem(it *entities.CarryItem) *entities.Key {
	for _, k := range g.Keys {
		if k.Item == it {
			return k
		}
	}
	return nil
}

// ActivateLever pulls a lever and reports whether it moved
func (g *Game) ActivateLever(id entities.ID) bool {
	l := g.Lever(id)
	if l == nil {
		return false
	}
	return l.Activate()
}

// TryUnlockDoor tries a key on a door
func (g *Game) TryUnlockDoor(keyID, doorID entities.ID) bool {
	k, d := g.Key(keyID), g.Door(doorID)
	if k == nil || d == nil {
		return false
	}
	return k.TryUnlock(d)
}

// EvaluateDoor runs one evaluation step of a door
func (g *Game) EvaluateDoor(id entities.ID, dt float64) (entities.DoorStatus, bool) {
	d := g.Door(id)
	if d == nil {
		return entities.DoorStatus{}, false
	}
	return d.Evaluate(dt), true
}

// ResetMechanisms restores doors, levers and items to their level start.
// Doors and levers flagged KeepOnReset are left as they are.
func (g *Game) ResetMechanisms() {
	for _, d := range g.Doors {
		if !d.Config.KeepOnReset {
			d.Reset()
		}
	}
	for _, l := range g.Levers {
		if !l.Config.KeepOnReset {
			l.Reset()
		}
	}
	for _, it := range g.Items {
		it.Reset()
	}
}

// ClearMechanisms removes every door, lever, item and key
func (g *Game) ClearMechanisms() {
	g.Doors = nil
	g.Levers = nil
	g.Items = nil
	g.Keys = nil
}
