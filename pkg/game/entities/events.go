// Package entities contains the game's simulated objects: combat actors,
// projectiles, doors, levers, keys and carryable items.
// Entities never call back into their owners; they push Events onto a queue
// that the driver drains once per frame.
package entities

import (
	"github.com/zyedidia/generic/queue"
)

// ID identifies an entity within one game. IDs are never reused.
type ID int

// NoID is the zero ID, never assigned to an entity
const NoID ID = 0

// EventKind enumerates the notifications entities emit
type EventKind int

const (
	EventNone EventKind = iota
	EventHit            // Actor took damage and survived
	EventDeath          // Actor died (emitted exactly once per actor)
	EventShot           // Actor fired a projectile
	EventLeverToggled   // Lever changed state
	EventDoorOpening    // Door started moving toward open
	EventDoorClosing    // Door started moving toward closed
	EventDoorSlammed    // Door started closing at high speed
	EventKeyConsumed    // Key unlocked a door and was destroyed
	EventItemTaken      // Holder picked an item up
	EventItemDropped    // Holder put an item down
	EventLevelLoaded    // A level finished spawning
	EventLevelReset     // The current level restarted
	EventGameWon        // The final level was cleared
)

// String returns the debug name of an event kind
func (k EventKind) String() string {
	switch k {
	case EventHit:
		return "hit"
	case EventDeath:
		return "death"
	case EventShot:
		return "shot"
	case EventLeverToggled:
		return "lever"
	case EventDoorOpening:
		return "door-opening"
	case EventDoorClosing:
		return "door-closing"
	case EventDoorSlammed:
		return "door-slammed"
	case EventKeyConsumed:
		return "key-consumed"
	case EventItemTaken:
		return "item-taken"
	case EventItemDropped:
		return "item-dropped"
	case EventLevelLoaded:
		return "level-loaded"
	case EventLevelReset:
		return "level-reset"
	case EventGameWon:
		return "game-won"
	default:
		return "none"
	}
}

// Event is a single notification. Source is the emitting entity, Target the
// other party where one exists (e.g. the door a key opened).
type Event struct {
	Kind   EventKind
	Source ID
	Target ID
	Amount float64
}

// EventQueue is a FIFO of events. A nil queue discards everything pushed to it,
// which lets entities be used standalone in tests and tools.
type EventQueue struct {
	q   *queue.Queue[Event]
	len int
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{q: queue.New[Event]()}
}

// Push appends an event
func (eq *EventQueue) Push(ev Event) {
	if eq == nil {
		return
	}
	eq.q.Enqueue(ev)
	eq.len++
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	if eq == nil {
		return 0
	}
	return eq.len
}

// Drain removes and returns all pending events in FIFO order
func (eq *EventQueue) Drain() []Event {
	if eq == nil || eq.q.Empty() {
		return nil
	}
	out := make([]Event, 0, eq.len)
	for !eq.q.Empty() {
		out = append(out, eq.q.Dequeue())
	}
	eq.len = 0
	return out
}

// Count returns how many pending events have the given kind and source
func (eq *EventQueue) Count(kind EventKind, source ID) int {
	if eq == nil || eq.q.Empty() {
		return 0
	}
	n := 0
	eq.q.Each(func(ev Event) {
		if ev.Kind == kind && ev.Source == source {
			n++
		}
	})
	return n
}
