package entities

import (
	"math"

	"topdown/pkg/engine/world"
)

const (
	// MinDoorSpeed is the speed below which a door does not move
	MinDoorSpeed = 0.01
	// HardCloseSpeed is the close speed above which closing slams
	HardCloseSpeed = 5.1
)

// DoorConfig is the static configuration of a door
type DoorConfig struct {
	RequiredActivations int
	RequiredState       LeverState
	Reversed            bool
	OpenAtRest          bool
	KeepOnReset         bool

	OpenSpeed  float64
	CloseSpeed float64
	MaxMove    float64
	Angle      float64 // degrees; the door slides along this direction

	AcceptsKeys bool
	KeyIndex    int

	Width  float64
	Height float64
}

// DoorStatus is the result of one door evaluation
type DoorStatus struct {
	Activations        int
	ShouldOpen         bool
	TargetDisplacement float64
	Displacement       float64
	IsOpen             bool
}

// Door slides open or shut depending on its levers and consumed keys
type Door struct {
	ID     ID
	Name   string
	Origin world.Vec2 // closed position
	Config DoorConfig

	levers         []*Lever
	openAtRest     bool
	keyActivations int
	displacement   float64
	motion         int // +1 opening, -1 closing, 0 idle

	events *EventQueue
}

// NewDoor creates a door at its configured initial openness
func NewDoor(id ID, name string, origin world.Vec2, cfg DoorConfig, events *EventQueue) *Door {
	d := &Door{
		ID:     id,
		Name:   name,
		Origin: origin,
		Config: cfg,
		events: events,
	}
	d.Reset()
	return d
}

// AttachLever links a lever to the door
func (d *Door) AttachLever(l *Lever) {
	if l != nil {
		d.levers = append(d.levers, l)
	}
}

// Levers returns the levers linked to the door
func (d *Door) Levers() []*Lever { return d.levers }

// KeyActivations returns the total value of keys consumed by the door
func (d *Door) KeyActivations() int { return d.keyActivations }

// Displacement returns how far the door has slid from its closed position
func (d *Door) Displacement() float64 { return d.displacement }

// OpenAtRest reports the door's current rest state
func (d *Door) OpenAtRest() bool { return d.openAtRest }

// Axis returns the unit direction the door slides when opening
func (d *Door) Axis() world.Vec2 {
	axis := world.FromAngle(d.Config.Angle)
	if d.Config.Reversed {
		axis = axis.Scale(-1)
	}
	return axis
}

// Position returns the door's current world position
func (d *Door) Position() world.Vec2 {
	return d.Origin.Add(d.Axis().Scale(d.displacement))
}

// IsOpen reports whether the door has slid more than half way
func (d *Door) IsOpen() bool {
	return d.displacement > d.Config.MaxMove/2
}

// LeverActivations sums the values of levers in the required state
func (d *Door) LeverActivations() int {
	n := 0
	for _, l := range d.levers {
		n += l.Contribution(d.Config.RequiredState)
	}
	return n
}

// Activated reports whether enough activations are present
func (d *Door) Activated() bool {
	return d.LeverActivations()+d.keyActivations >= d.Config.RequiredActivations
}

// Evaluate recomputes whether the door should be open and slides it toward
// that target by at most one step.
func (d *Door) Evaluate(dt float64) DoorStatus {
	total := d.LeverActivations() + d.keyActivations
	activated := total >= d.Config.RequiredActivations
	shouldOpen := activated
	if d.openAtRest {
		shouldOpen = !activated
	}

	target, speed, dir := 0.0, d.Config.CloseSpeed, -1
	if shouldOpen {
		target, speed, dir = d.Config.MaxMove, d.Config.OpenSpeed, 1
	}

	motion := 0
	if speed >= MinDoorSpeed && d.displacement != target {
		d.displacement = world.MoveTowards(d.displacement, target, speed*dt)
		motion = dir
	}
	if motion != 0 && motion != d.motion {
		d.emitMotion(motion)
	}
	d.motion = motion

	return DoorStatus{
		Activations:        total,
		ShouldOpen:         shouldOpen,
		TargetDisplacement: target,
		Displacement:       d.displacement,
		IsOpen:             d.IsOpen(),
	}
}

func (d *Door) emitMotion(motion int) {
	kind := EventDoorOpening
	if motion < 0 {
		kind = EventDoorClosing
		if d.Config.CloseSpeed > HardCloseSpeed {
			kind = EventDoorSlammed
		}
	}
	d.events.Push(Event{Kind: kind, Source: d.ID})
}

// Open makes open the door's rest state
func (d *Door) Open() { d.openAtRest = true }

// Close makes closed the door's rest state
func (d *Door) Close() { d.openAtRest = false }

// Toggle flips the door's rest state
func (d *Door) Toggle() { d.openAtRest = !d.openAtRest }

// CanKeyUnlock reports whether a key with the given index fits this door
func (d *Door) CanKeyUnlock(index int) bool {
	return d.Config.AcceptsKeys && d.Config.KeyIndex == index
}

// UnlockWithKey adds a consumed key's value to the door
func (d *Door) UnlockWithKey(value int) {
	d.keyActivations += value
}

// Reset restores the configured rest state, snaps the door exactly to its
// open or closed position and forgets consumed keys.
func (d *Door) Reset() {
	d.openAtRest = d.Config.OpenAtRest
	d.keyActivations = 0
	d.motion = 0
	d.displacement = 0
	if d.openAtRest {
		d.displacement = math.Max(0, d.Config.MaxMove)
	}
}

// Bounds returns the door's collision rectangle at its current position
func (d *Door) Bounds() world.Rect {
	c := d.Position()
	hw, hh := d.Config.Width/2, d.Config.Height/2
	return world.Rect{Min: world.V(c.X-hw, c.Y-hh), Max: world.V(c.X+hw, c.Y+hh)}
}
