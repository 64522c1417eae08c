// Package state holds the game context: every actor, projectile, door,
// lever, key and item of the running level, plus level counters and the
// message log. Nothing in the game keeps process-wide registries; everything
// that needs to enumerate or reset entities goes through a *Game.
package state

import (
	"github.com/zyedidia/generic/mapset"

	"topdown/pkg/engine/world"
	"topdown/pkg/game/entities"
	"topdown/pkg/game/levelgen"
)

// ContactKey identifies a touching pair of entities, smaller ID first
type ContactKey struct {
	A entities.ID
	B entities.ID
}

// NewContactKey orders the pair so (a,b) and (b,a) are the same key
func NewContactKey(a, b entities.ID) ContactKey {
	if b < a {
		a, b = b, a
	}
	return ContactKey{A: a, B: b}
}

// LevelSource loads level layouts by number
type LevelSource interface {
	Load(level int) (*levelgen.Layout, error)
}

// CoverSource lays out the cover pillars of a level
type CoverSource interface {
	Generate(level int, area world.Rect, keepClear []world.Vec2) []world.Rect
}

// Game represents the state of one play session
type Game struct {
	Level    int // Current level number, 1-based
	MaxLevel int
	GameOver bool
	Won      bool
	Quit     bool

	Arena       world.Rect
	Walls       []world.Rect // fixed walls first, then the level's cover
	Cover       CoverSource
	CoverArea   world.Rect
	Floors      *world.Grid // enemy spawn cells
	Levels      LevelSource
	PlayerSpawn world.Vec2
	PlayerStats entities.ActorStats

	Player   entities.ID
	Holder   *entities.Holder
	Controls *entities.PlayerControls

	Actors      []*entities.Actor
	Projectiles []*entities.Projectile
	Doors       []*entities.Door
	Levers      []*entities.Lever
	Items       []*entities.CarryItem
	Keys        []*entities.Key

	Events   *entities.EventQueue
	Messages []string
	Contacts mapset.Set[ContactKey]

	// Elapsed is simulated time in seconds; Accumulator holds the part of
	// the last frame not yet consumed by fixed ticks.
	Elapsed     float64
	Accumulator float64

	fixedWalls int

	actorIndex map[entities.ID]*entities.Actor
	intents    map[entities.ID]entities.IntentSource
	nextID     entities.ID
}

// NewGame creates a new game instance
func NewGame() *Game {
	return &Game{
		Level:      1,
		MaxLevel:   1,
		Controls:   &entities.PlayerControls{},
		Events:     entities.NewEventQueue(),
		Messages:   make([]string, 0),
		Contacts:   mapset.New[ContactKey](),
		actorIndex: make(map[entities.ID]*entities.Actor),
		intents:    make(map[entities.ID]entities.IntentSource),
	}
}

// NextID hands out a fresh entity ID
func (g *Game) NextID() entities.ID {
	g.nextID++
	return g.nextID
}

// FixWalls marks the current walls as permanent. SetCover keeps them.
func (g *Game) FixWalls() {
	g.fixedWalls = len(g.Walls)
}

// SetCover replaces the level's cover pillars
func (g *Game) SetCover(pillars []world.Rect) {
	g.Walls = append(g.Walls[:g.fixedWalls:g.fixedWalls], pillars...)
}

// CoverWalls returns the level's cover pillars
func (g *Game) CoverWalls() []world.Rect {
	return g.Walls[g.fixedWalls:]
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}
