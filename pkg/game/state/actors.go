package state

import (
	"topdown/pkg/engine/world"
	"topdown/pkg/game/entities"
)

// CreateActor spawns an actor and returns its ID
func (g *Game) CreateActor(stats entities.ActorStats, pos world.Vec2, faction entities.Faction) entities.ID {
	a := entities.NewActor(g.NextID(), stats, pos, faction, g.Events)
	g.Actors = append(g.Actors, a)
	g.actorIndex[a.ID] = a
	return a.ID
}

// SpawnPlayer creates the player character at the spawn point with a fresh
// holder. The player is driven by g.Controls.
func (g *Game) SpawnPlayer() *entities.Actor {
	id := g.CreateActor(g.PlayerStats, g.PlayerSpawn, entities.FactionPlayer)
	g.Player = id
	p := g.actorIndex[id]
	g.Holder = entities.NewHolder(p, g.Events)
	g.SetIntentSource(id, g.Controls)
	return p
}

// SpawnEnemy creates an enemy that chases the player
func (g *Game) SpawnEnemy(stats entities.ActorStats, pos world.Vec2) entities.ID {
	id := g.CreateActor(stats, pos, entities.FactionEnemy)
	g.SetIntentSource(id, entities.Chaser{Target: g.PlayerActor()})
	return id
}

// Actor returns the actor with the given ID, or nil
func (g *Game) Actor(id entities.ID) *entities.Actor {
	return g.actorIndex[id]
}

// PlayerActor returns the player character, or nil before spawn
func (g *Game) PlayerActor() *entities.Actor {
	return g.actorIndex[g.Player]
}

// SetIntentSource assigns who decides the actor's intents
func (g *Game) SetIntentSource(id entities.ID, src entities.IntentSource) {
	if src == nil {
		delete(g.intents, id)
		return
	}
	g.intents[id] = src
}

// IntentSource returns the actor's intent source, or nil
func (g *Game) IntentSource(id entities.ID) entities.IntentSource {
	return g.intents[id]
}

// TickActor advances an actor's render-rate timers
func (g *Game) TickActor(id entities.ID, dt float64) {
	if a := g.Actor(id); a != nil {
		a.Tick(dt)
	}
}

// SetMoveIntent sets an actor's requested movement
func (g *Game) SetMoveIntent(id entities.ID, v world.Vec2) {
	if a := g.Actor(id); a != nil {
		a.SetMoveIntent(v)
	}
}

// SetShootIntent sets whether an actor wants to fire
func (g *Game) SetShootIntent(id entities.ID, shoot bool) {
	if a := g.Actor(id); a != nil {
		a.SetShootIntent(shoot)
	}
}

// SetFacingAngle sets an actor's rotation in degrees
func (g *Game) SetFacingAngle(id entities.ID, degrees float64) {
	if a := g.Actor(id); a != nil {
		a.SetFacingAngle(degrees)
	}
}

// ApplyDamage damages an actor and reports whether it died from this hit
func (g *Game) ApplyDamage(id entities.ID, amount float64) bool {
	a := g.Actor(id)
	if a == nil {
		return false
	}
	return a.ApplyDamage(amount) == entities.DamageKilled
}

// TryShoot asks an actor to fire. The caller spawns the projectile.
func (g *Game) TryShoot(id entities.ID) (entities.Shot, bool) {
	a := g.Actor(id)
	if a == nil {
		return entities.Shot{}, false
	}
	return a.TryShoot()
}

// SpawnProjectile turns a shot into a live projectile
func (g *Game) SpawnProjectile(shot entities.Shot) *entities.Projectile {
	p := entities.NewProjectile(g.NextID(), shot)
	g.Projectiles = append(g.Projectiles, p)
	return p
}

// Enemies returns the living enemies
func (g *Game) Enemies() []*entities.Actor {
	var out []*entities.Actor
	for _, a := range g.Actors {
		if a.Faction == entities.FactionEnemy && !a.IsDead() {
			out = append(out, a)
		}
	}
	return out
}

// EnemiesRemaining counts the living enemies
func (g *Game) EnemiesRemaining() int {
	return len(g.Enemies())
}

// RemoveDeadActors drops dead actors from the simulation and returns their IDs
func (g *Game) RemoveDeadActors() []entities.ID {
	var removed []entities.ID
	kept := g.Actors[:0]
	for _, a := range g.Actors {
		if a.IsDead() {
			removed = append(removed, a.ID)
			delete(g.actorIndex, a.ID)
			delete(g.intents, a.ID)
			continue
		}
		kept = append(kept, a)
	}
	g.Actors = kept
	if len(removed) > 0 {
		g.forgetContacts(removed)
	}
	return removed
}

// RemoveSpentProjectiles drops projectiles that hit something or expired
func (g *Game) RemoveSpentProjectiles() int {
	kept := g.Projectiles[:0]
	for _, p := range g.Projectiles {
		if !p.Spent() {
			kept = append(kept, p)
		}
	}
	n := len(g.Projectiles) - len(kept)
	g.Projectiles = kept
	return n
}

// RemoveEnemies drops every enemy, dead or alive, without killing it
func (g *Game) RemoveEnemies() []entities.ID {
	var removed []entities.ID
	kept := g.Actors[:0]
	for _, a := range g.Actors {
		if a.Faction == entities.FactionEnemy {
			removed = append(removed, a.ID)
			delete(g.actorIndex, a.ID)
			delete(g.intents, a.ID)
			continue
		}
		kept = append(kept, a)
	}
	g.Actors = kept
	if len(removed) > 0 {
		g.forgetContacts(removed)
	}
	return removed
}

// ClearActors removes every actor and projectile
func (g *Game) ClearActors() {
	g.Actors = nil
	g.Projectiles = nil
	g.Holder = nil
	g.Player = entities.NoID
	g.actorIndex = make(map[entities.ID]*entities.Actor)
	g.intents = make(map[entities.ID]entities.IntentSource)
	g.Contacts.Clear()
}

// BeginContact records that a and b touch. It reports true only when the
// contact is new.
func (g *Game) BeginContact(a, b entities.ID) bool {
	key := NewContactKey(a, b)
	if g.Contacts.Has(key) {
		return false
	}
	g.Contacts.Put(key)
	return true
}

// EndContact forgets a touching pair
func (g *Game) EndContact(a, b entities.ID) {
	g.Contacts.Remove(NewContactKey(a, b))
}

// InContact reports whether a and b were touching last tick
func (g *Game) InContact(a, b entities.ID) bool {
	return g.Contacts.Has(NewContactKey(a, b))
}

func (g *Game) forgetContacts(ids []entities.ID) {
	gone := make(map[entities.ID]bool, len(ids))
	for _, id := range ids {
		gone[id] = true
	}
	var stale []ContactKey
	g.Contacts.Each(func(k ContactKey) {
		if gone[k.A] || gone[k.B] {
			stale = append(stale, k)
		}
	})
	for _, k := range stale {
		g.Contacts.Remove(k)
	}
}
