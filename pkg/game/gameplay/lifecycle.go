package gameplay

import (
	"fmt"

	"topdown/pkg/engine/world"
	"topdown/pkg/game/entities"
	"topdown/pkg/game/levelgen"
	"topdown/pkg/game/setup"
	"topdown/pkg/game/state"
)

// Options configures a new game
type Options struct {
	StartLevel int
	MaxLevel   int
	Levels     state.LevelSource
	Cover      state.CoverSource // nil leaves the arena open
}

// BuildGame creates a new game, lays out the arena, spawns the player and
// loads the starting level
func BuildGame(opts Options) (*state.Game, error) {
	g := state.NewGame()

	g.MaxLevel = opts.MaxLevel
	if g.MaxLevel <= 0 {
		g.MaxLevel = levelgen.TotalLevels
	}
	// Set starting level if specified (for developer testing)
	if opts.StartLevel > 1 {
		g.Level = min(opts.StartLevel, g.MaxLevel)
	}
	g.Levels = opts.Levels
	if g.Levels == nil {
		g.Levels = levelgen.DefaultLoader()
	}
	g.Cover = opts.Cover

	setup.SetupLevel(g)
	g.SpawnPlayer()
	if err := LoadLevel(g, g.Level); err != nil {
		return nil, err
	}

	g.ClearMessages()
	logMessage(g, "WELCOME")
	ShowLevelObjectives(g)
	return g, nil
}

// LoadLevel replaces the current enemies with those of the given level.
// A missing level file is returned as an error wrapping levelgen.ErrLevelNotFound.
func LoadLevel(g *state.Game, level int) error {
	layout, err := g.Levels.Load(level)
	if err != nil {
		return fmt.Errorf("load level %d: %w", level, err)
	}

	g.RemoveEnemies()
	g.Projectiles = nil
	placeCover(g, level)
	for _, sp := range layout.Spawns(g.Floors) {
		g.SpawnEnemy(sp.Stats, sp.Position)
	}
	g.Level = level
	g.Events.Push(entities.Event{Kind: entities.EventLevelLoaded, Amount: float64(level)})
	return nil
}

// placeCover swaps in the cover pillars of a level
func placeCover(g *state.Game, level int) {
	if g.Cover == nil {
		g.SetCover(nil)
		return
	}
	g.SetCover(g.Cover.Generate(level, g.CoverArea, coverKeepClear(g)))
}

// coverKeepClear lists the points a pillar must not cover: the player
// spawn, every enemy floor and every mechanism
func coverKeepClear(g *state.Game) []world.Vec2 {
	points := []world.Vec2{g.PlayerSpawn}
	if g.Floors != nil {
		g.Floors.ForEachCell(func(row, col int, cell *world.Cell) {
			if cell != nil {
				points = append(points, cell.Position)
			}
		})
	}
	for _, l := range g.Levers {
		points = append(points, l.Position)
	}
	for _, it := range g.Items {
		points = append(points, it.Start())
	}
	for _, d := range g.Doors {
		points = append(points, d.Origin)
	}
	return points
}

// ResetLevel restores every door, lever and item to its level-start state.
// It must run before actors are respawned for a restart.
func ResetLevel(g *state.Game) {
	g.ResetMechanisms()
	g.Events.Push(entities.Event{Kind: entities.EventLevelReset, Amount: float64(g.Level)})
}

// RestartLevel resets mechanisms, respawns the player and reloads the
// current level's enemies
func RestartLevel(g *state.Game) error {
	ResetLevel(g)
	g.ClearActors()
	g.SpawnPlayer()
	g.Accumulator = 0
	if err := LoadLevel(g, g.Level); err != nil {
		return err
	}
	logMessage(g, "LEVEL_RESET")
	ShowLevelObjectives(g)
	return nil
}

// AdvanceLevel loads the next level, or ends the game after the last one
func AdvanceLevel(g *state.Game) error {
	next := levelgen.NextLevel(g.Level, g.MaxLevel)
	if next == 0 {
		g.GameOver = true
		g.Won = true
		g.Projectiles = nil
		g.Events.Push(entities.Event{Kind: entities.EventGameWon, Amount: float64(g.Level)})
		logMessage(g, "GAME_WON")
		return nil
	}
	if err := LoadLevel(g, next); err != nil {
		return err
	}
	logMessage(g, "LEVEL_CLEARED")
	ShowLevelObjectives(g)
	return nil
}

// ShowLevelObjectives logs the level title and how many enemies are left
func ShowLevelObjectives(g *state.Game) {
	logMessage(g, "LEVEL_START", levelgen.Title(g.Level))
	logMessage(g, "ENEMIES_REMAINING", g.EnemiesRemaining())
}
