package entities

import "topdown/pkg/engine/world"

const (
	// AimDeadzone is the aim stick length below which the player stops firing
	AimDeadzone = 0.1
	// FollowBand is the slack around a chaser's follow distance
	FollowBand = 0.5
	// facingOffset turns a direction angle into a sprite rotation
	facingOffset = 270.0
)

// Intent is what an actor wants to do this frame
type Intent struct {
	Move      world.Vec2
	Facing    float64
	HasFacing bool
	Shoot     bool
}

// IntentSource decides an actor's intent once per render tick
type IntentSource interface {
	Intent(self *Actor) Intent
}

// PlayerControls is the intent source fed by input devices.
// Move and Aim are stick-style vectors; the renderer sets them from key state.
type PlayerControls struct {
	Move world.Vec2
	Aim  world.Vec2

	facing float64
}

// SetAim records an aim vector. A vector shorter than AimDeadzone stops
// firing but keeps the last facing.
func (c *PlayerControls) SetAim(v world.Vec2) {
	c.Aim = v
	if v.Len() >= AimDeadzone {
		c.facing = v.Angle() + facingOffset
	}
}

// Intent implements IntentSource
func (c *PlayerControls) Intent(self *Actor) Intent {
	in := Intent{
		Move:      c.Move.ClampLen(1),
		Facing:    c.facing,
		HasFacing: true,
	}
	if c.Aim.Len() >= AimDeadzone {
		in.Shoot = self.Stats.UseWeapon
	}
	return in
}

// Chaser is the enemy AI: it keeps FollowDistance from its target, faces it
// and fires whenever its weapon is enabled.
type Chaser struct {
	Target *Actor
}

// Intent implements IntentSource
func (c Chaser) Intent(self *Actor) Intent {
	if c.Target == nil {
		return Intent{}
	}
	toTarget := c.Target.Position.Sub(self.Position)
	dist := toTarget.Len()
	dir := toTarget.Normalized()

	scalar := 0.0
	switch {
	case dist > self.Stats.FollowDistance+FollowBand:
		scalar = 1
	case dist < self.Stats.FollowDistance-FollowBand:
		scalar = -1
	}

	return Intent{
		Move:      dir.Scale(scalar),
		Facing:    dir.Angle() + facingOffset,
		HasFacing: true,
		Shoot:     self.Stats.UseWeapon,
	}
}
