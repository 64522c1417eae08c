package entities

import (
	"math"

	"topdown/pkg/engine/world"
)

const (
	// ItemRespawnDelay is how long a destroyed respawning item stays gone
	ItemRespawnDelay = 3.0
	// HolderTakeDelay is the pause after taking an item before taking another
	HolderTakeDelay = 0.2
	// DropRetakeDelay stops a holder re-taking the item it just dropped
	DropRetakeDelay = 1.0
	// ItemRadius is the pickup radius of an item on the floor
	ItemRadius = 0.3
)

// CarryItem is an object a Holder can pick up and carry
type CarryItem struct {
	ID       ID
	Type     string
	Position world.Vec2
	Respawns bool

	start        world.Vec2
	bearer       *Holder
	lastBearer   *Holder
	takeTimer    float64
	destroyed    bool
	destroyTimer float64

	events *EventQueue
}

// NewCarryItem places an item on the floor
func NewCarryItem(id ID, itemType string, pos world.Vec2, respawns bool, events *EventQueue) *CarryItem {
	return &CarryItem{
		ID:       id,
		Type:     itemType,
		Position: pos,
		Respawns: respawns,
		start:    pos,
		events:   events,
	}
}

// Bearer returns the holder carrying the item, or nil
func (it *CarryItem) Bearer() *Holder { return it.bearer }

// Destroyed reports whether the item has been removed from play
func (it *CarryItem) Destroyed() bool { return it.destroyed }

// Start returns where the item lies when the level begins
func (it *CarryItem) Start() world.Vec2 { return it.start }

// OnFloor reports whether the item is lying around for the taking
func (it *CarryItem) OnFloor() bool { return !it.destroyed && it.bearer == nil }

// CanTake reports whether h may pick the item up. A holder cannot carry two
// items of the same type, and cannot immediately re-take what it dropped.
func (it *CarryItem) CanTake(h *Holder) bool {
	if !it.OnFloor() {
		return false
	}
	if held := h.Held(); held != nil && held.Type == it.Type {
		return false
	}
	return it.takeTimer >= 0 || it.lastBearer != h
}

// Destroy removes the item from play, dropping it first if carried
func (it *CarryItem) Destroy() {
	if it.bearer != nil {
		it.bearer.Drop()
	}
	it.destroyed = true
	it.destroyTimer = 0
}

// Tick follows the bearer and handles respawning
func (it *CarryItem) Tick(dt float64) {
	it.takeTimer = math.Min(0, it.takeTimer+dt)
	if it.bearer != nil {
		it.Position = it.bearer.Actor.Position
	}
	if it.destroyed && it.Respawns {
		it.destroyTimer += dt
		if it.destroyTimer > ItemRespawnDelay {
			it.Reset()
		}
	}
}

// Reset returns the item to its starting position
func (it *CarryItem) Reset() {
	if it.bearer != nil {
		it.bearer.held = nil
	}
	it.bearer = nil
	it.lastBearer = nil
	it.destroyed = false
	it.destroyTimer = 0
	it.takeTimer = 0
	it.Position = it.start
}

func (it *CarryItem) take(h *Holder) {
	it.bearer = h
	it.lastBearer = h
	it.Position = h.Actor.Position
}

func (it *CarryItem) drop() {
	if it.bearer != nil {
		it.Position = it.bearer.Actor.Position
	}
	it.lastBearer = it.bearer
	it.bearer = nil
	it.takeTimer = -DropRetakeDelay
}

// Holder lets an actor carry one item at a time
type Holder struct {
	Actor *Actor

	held      *CarryItem
	takeTimer float64

	events *EventQueue
}

// NewHolder creates an empty-handed holder for the actor
func NewHolder(actor *Actor, events *EventQueue) *Holder {
	return &Holder{Actor: actor, events: events}
}

// Held returns the carried item, or nil
func (h *Holder) Held() *CarryItem { return h.held }

// Take picks up an item, dropping any item already held
func (h *Holder) Take(it *CarryItem) bool {
	if it == h.held || h.takeTimer < 0 || h.Actor.IsDead() || !it.CanTake(h) {
		return false
	}
	if h.held != nil {
		h.Drop()
	}
	h.held = it
	h.takeTimer = -HolderTakeDelay
	it.take(h)
	h.events.Push(Event{Kind: EventItemTaken, Source: h.Actor.ID, Target: it.ID})
	return true
}

// Drop puts the carried item down at the holder's feet
func (h *Holder) Drop() {
	if h.held == nil {
		return
	}
	it := h.held
	h.held = nil
	it.drop()
	h.events.Push(Event{Kind: EventItemDropped, Source: h.Actor.ID, Target: it.ID})
}

// Tick counts the take delay up
func (h *Holder) Tick(dt float64) {
	h.takeTimer = math.Min(0, h.takeTimer+dt)
}
