// Package gameplay drives the simulation: fixed-rate combat and door ticks,
// render-rate timers and intents, level flow and player input.
package gameplay

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"topdown/pkg/game/entities"
	"topdown/pkg/game/state"
)

const (
	// FixedStep is the physics tick length in seconds
	FixedStep = 0.02
	// MaxFrameDelta caps a single frame so a stall does not replay seconds of physics
	MaxFrameDelta = 0.25
	// maxEventRounds bounds how often reactions to events may trigger new events in one frame
	maxEventRounds = 4
)

// Advance runs one frame: as many fixed ticks as the accumulated time allows,
// then one render tick. It returns the events raised during the frame after
// the game has reacted to them. Errors come from loading levels.
func Advance(g *state.Game, dt float64) ([]entities.Event, error) {
	if g.GameOver {
		return nil, nil
	}
	if dt < 0 {
		dt = 0
	}
	if dt > MaxFrameDelta {
		dt = MaxFrameDelta
	}

	g.Accumulator += dt
	for g.Accumulator >= FixedStep {
		FixedTick(g, FixedStep)
		g.Accumulator -= FixedStep
	}
	RenderTick(g, dt)

	var all []entities.Event
	for round := 0; round < maxEventRounds; round++ {
		events := g.Events.Drain()
		if len(events) == 0 {
			break
		}
		all = append(all, events...)
		if err := HandleEvents(g, events); err != nil {
			return all, err
		}
	}
	return all, nil
}

// FixedTick is the physics-rate update. Damage and deaths from contacts and
// projectile hits are settled before anyone moves or shoots, so an actor
// killed this tick does neither.
func FixedTick(g *state.Game, dt float64) {
	ResolveContacts(g)
	ResolveProjectileHits(g)

	for _, a := range g.Actors {
		if a.IsDead() {
			continue
		}
		a.FixedTick(dt)
		CollideWithWorld(g, a)
		if shot, ok := a.TryShoot(); ok {
			g.SpawnProjectile(shot)
		}
	}
	SeparateActors(g)

	AdvanceProjectiles(g, dt)

	for _, d := range g.Doors {
		d.Evaluate(dt)
	}
	UnlockTouchedDoors(g)
	g.RemoveSpentProjectiles()
}

// RenderTick is the frame-rate update: grace windows, lever debounce,
// item timers, pickups and fresh intents.
func RenderTick(g *state.Game, dt float64) {
	g.Elapsed += dt

	for _, a := range g.Actors {
		a.Tick(dt)
		if a.IsDead() {
			continue
		}
		if src := g.IntentSource(a.ID); src != nil {
			a.ApplyIntent(src.Intent(a))
		}
	}
	for _, l := range g.Levers {
		l.Tick(dt)
	}
	if g.Holder != nil {
		g.Holder.Tick(dt)
	}
	for _, it := range g.Items {
		it.Tick(dt)
	}

	TriggerLevers(g)
	PickUpItems(g)
}

// dynamicGet is used for runtime translation key lookups.
// A function variable keeps go vet's constant format string check quiet.
var dynamicGet = gotext.Get

// logMessage translates a message key and adds it to the message log
func logMessage(g *state.Game, key string, a ...any) {
	msg := dynamicGet(key)
	if len(a) > 0 {
		msg = fmt.Sprintf(msg, a...)
	}
	g.AddMessage(msg)
}
