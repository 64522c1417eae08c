// Package setup builds the arena the levels are played in: bounds, walls,
// enemy floors, the player spawn, the cover area and the door puzzles.
package setup

import (
	"topdown/pkg/engine/world"
	"topdown/pkg/game/entities"
	"topdown/pkg/game/levelgen"
	"topdown/pkg/game/state"
)

// Arena dimensions in world units
const (
	ArenaHalfWidth  = 8.0
	ArenaHalfHeight = 8.0
	FloorSpacing    = 2.0
)

// ItemMedkit is the carry item type that heals on pickup
const ItemMedkit = "medkit"

// MedkitHeal is the health restored by a medkit
const MedkitHeal = 30.0

// SetupConfig describes what SetupLevel placed, for callers that want to
// refer to specific mechanisms (tests, dev tools).
type SetupConfig struct {
	LeverGate *entities.Door
	KeyGate   *entities.Door
	Levers    []*entities.Lever
	Key       *entities.Key
	Medkits   []*entities.CarryItem
}

// PlayerStats returns the player character's stats
func PlayerStats() entities.ActorStats {
	return entities.ActorStats{
		Name:                  "player",
		MaxHealth:             100,
		HitCooldown:           0.5,
		Radius:                0.35,
		MoveAccel:             20,
		MoveDecel:             25,
		MoveMax:               4,
		UseWeapon:             true,
		MinFramesBetweenShots: 10,
		ProjectileSpeed:       10,
		ProjectileDamage:      10,
	}
}

// SetupLevel lays out the arena on g. It clears any previous mechanisms, so
// it is only called once per game.
func SetupLevel(g *state.Game) *SetupConfig {
	g.Arena = world.Rect{
		Min: world.V(-ArenaHalfWidth, -ArenaHalfHeight),
		Max: world.V(ArenaHalfWidth, ArenaHalfHeight),
	}
	g.PlayerSpawn = world.V(0, -ArenaHalfHeight+2)
	g.PlayerStats = PlayerStats()

	// Floors fill the northern part of the arena, row 0 at the top
	span := FloorSpacing * (levelgen.FloorCols - 1)
	origin := world.V(-span/2, ArenaHalfHeight-1)
	g.Floors = world.NewGrid(levelgen.FloorRows, levelgen.FloorCols, origin, FloorSpacing)

	g.ClearMechanisms()
	g.Walls = nil
	cfg := &SetupConfig{}
	PlaceGates(g, cfg)
	g.FixWalls()

	// Cover goes between the gates and the top wall, on the even lattice
	// points the floor cells leave free
	g.CoverArea = world.Rect{
		Min: world.V(-ArenaHalfWidth+alcoveDepth+0.4, alcoveTop+0.5),
		Max: world.V(ArenaHalfWidth-alcoveDepth-0.4, ArenaHalfHeight-1.5),
	}
	return cfg
}
