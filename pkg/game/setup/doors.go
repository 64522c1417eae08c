package setup

import (
	"topdown/pkg/engine/world"
	"topdown/pkg/game/entities"
	"topdown/pkg/game/state"
)

// Gate geometry: each bottom corner of the arena is an alcove closed by a
// sliding door. The east gate needs both levers pulled right; the west gate
// takes key 1.
const (
	alcoveDepth = 1.6
	alcoveTop   = -4.0
	gateHeight  = 2.0
	wallThick   = 0.2
)

// PlaceGates builds both alcoves with their doors, levers, key and medkits
func PlaceGates(g *state.Game, cfg *SetupConfig) {
	cfg.LeverGate = placeAlcove(g, "east", 1, entities.DoorConfig{
		RequiredActivations: 2,
		RequiredState:       entities.LeverRight,
		OpenSpeed:           2,
		CloseSpeed:          6,
	})
	cfg.KeyGate = placeAlcove(g, "west", -1, entities.DoorConfig{
		RequiredActivations: 1,
		AcceptsKeys:         true,
		KeyIndex:            1,
		OpenSpeed:           1.5,
		CloseSpeed:          1.5,
	})

	y := -ArenaHalfHeight + 1
	for _, x := range []float64{-3, 3} {
		l := g.AddLever("gate lever", world.V(x, y), entities.LeverConfig{Start: entities.LeverLeft})
		cfg.LeverGate.AttachLever(l)
		cfg.Levers = append(cfg.Levers, l)
	}

	cfg.Key = g.AddKey(world.V(0, -2), 1, 1)

	for _, side := range []float64{1, -1} {
		x := side * (ArenaHalfWidth - alcoveDepth/2)
		cfg.Medkits = append(cfg.Medkits, g.AddItem(ItemMedkit, world.V(x, -ArenaHalfHeight+1), false))
	}
}

// placeAlcove walls off one bottom corner and returns its door. side is +1
// for east and -1 for west.
func placeAlcove(g *state.Game, name string, side float64, cfg entities.DoorConfig) *entities.Door {
	inner := side * (ArenaHalfWidth - alcoveDepth)
	outer := side * ArenaHalfWidth
	doorBottom := alcoveTop - gateHeight

	// Wall below the door, from the arena floor up to the gate
	g.Walls = append(g.Walls, rectBetween(
		world.V(inner-wallThick/2, -ArenaHalfHeight),
		world.V(inner+wallThick/2, doorBottom),
	))
	// Roof of the alcove
	g.Walls = append(g.Walls, rectBetween(
		world.V(inner, alcoveTop),
		world.V(outer, alcoveTop+wallThick),
	))

	cfg.Angle = 90 // slides north into the roof
	cfg.MaxMove = gateHeight
	cfg.Width = wallThick
	cfg.Height = gateHeight
	return g.AddDoor(name+" gate", world.V(inner, doorBottom+gateHeight/2), cfg)
}

// rectBetween builds a rect from any two opposite corners
func rectBetween(a, b world.Vec2) world.Rect {
	min := world.V(minf(a.X, b.X), minf(a.Y, b.Y))
	max := world.V(maxf(a.X, b.X), maxf(a.Y, b.Y))
	return world.Rect{Min: min, Max: max}
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
