package entities

import (
	"math"

	"topdown/pkg/engine/world"
)

// Faction partitions actors into opposing sides
type Faction int

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

// String returns the faction name
func (f Faction) String() string {
	if f == FactionEnemy {
		return "enemy"
	}
	return "player"
}

const (
	// DefaultMaxHealth is used when stats leave MaxHealth unset
	DefaultMaxHealth = 50.0
	// DefaultHitCooldown is the post-hit grace window in seconds
	DefaultHitCooldown = 0.25
	// DefaultRadius is the contact radius of an actor in world units
	DefaultRadius = 0.4
	// InputDeadzone is the per-axis move intent below which an actor decelerates
	InputDeadzone = 0.1
)

// ActorStats is the static configuration of an actor. Enemy archetypes from
// level files and the player character are all expressed as ActorStats.
type ActorStats struct {
	Name string

	MaxHealth    float64
	Invulnerable bool
	HitCooldown  float64 // seconds of grace after a hit
	Radius       float64

	Stationary bool
	MoveAccel  float64
	MoveDecel  float64
	MoveMax    float64

	ExplodeOnCollision bool
	ContactDamage      float64

	UseWeapon             bool
	MinFramesBetweenShots int
	ProjectileSpeed       float64
	ProjectileDamage      float64

	Kamikaze       bool
	FollowDistance float64
}

// DamageOutcome is the result of ApplyDamage
type DamageOutcome int

const (
	DamageIgnored DamageOutcome = iota
	DamageHit
	DamageKilled
)

// Shot describes a projectile an actor has just fired
type Shot struct {
	Owner     ID
	Origin    world.Vec2
	Direction world.Vec2
	Speed     float64
	Damage    float64
	Faction   Faction
}

// Actor is a combat unit: the player character or an enemy.
// Health, the grace window and the shot counter only change through methods,
// so the invariants (health in [0, MaxHealth], dead implies health 0) hold.
type Actor struct {
	ID       ID
	Stats    ActorStats
	Faction  Faction
	Position world.Vec2
	// Facing is the sprite rotation in degrees. Shots leave at Facing+90.
	Facing float64

	health      float64
	hitCooldown float64
	dead        bool
	shotFrames  int

	velocity    world.Vec2
	moveIntent  world.Vec2
	shootIntent bool

	events *EventQueue
}

// NewActor spawns an actor at full health
func NewActor(id ID, stats ActorStats, pos world.Vec2, faction Faction, events *EventQueue) *Actor {
	if stats.MaxHealth <= 0 {
		stats.MaxHealth = DefaultMaxHealth
	}
	if stats.HitCooldown <= 0 {
		stats.HitCooldown = DefaultHitCooldown
	}
	if stats.Radius <= 0 {
		stats.Radius = DefaultRadius
	}
	if stats.Kamikaze {
		stats.FollowDistance = 0
	}
	return &Actor{
		ID:       id,
		Stats:    stats,
		Faction:  faction,
		Position: pos,
		health:   stats.MaxHealth,
		events:   events,
	}
}

// Health returns current hit points
func (a *Actor) Health() float64 { return a.health }

// MaxHealth returns the configured maximum hit points
func (a *Actor) MaxHealth() float64 { return a.Stats.MaxHealth }

// IsDead reports whether the actor has died
func (a *Actor) IsDead() bool { return a.dead }

// HitCooldown returns the remaining grace window in seconds
func (a *Actor) HitCooldown() float64 { return a.hitCooldown }

// ShotFrames returns the number of fixed ticks counted since the last shot
func (a *Actor) ShotFrames() int { return a.shotFrames }

// Velocity returns the current velocity
func (a *Actor) Velocity() world.Vec2 { return a.velocity }

// MoveIntent returns the requested movement
func (a *Actor) MoveIntent() world.Vec2 { return a.moveIntent }

// ShootIntent reports whether the actor wants to fire
func (a *Actor) ShootIntent() bool { return a.shootIntent }

// HealthFraction returns health/max clamped to [0, 1] for health bars
func (a *Actor) HealthFraction() float64 {
	f := a.health / a.Stats.MaxHealth
	return math.Max(0, math.Min(1, f))
}

// HostileTo reports whether contact with o can cause damage
func (a *Actor) HostileTo(o *Actor) bool {
	return a.Faction != o.Faction
}

// ApplyDamage subtracts amount from health unless the actor is dead,
// invulnerable or inside its post-hit grace window. A hit that takes health
// to zero kills the actor.
func (a *Actor) ApplyDamage(amount float64) DamageOutcome {
	if a.dead || a.Stats.Invulnerable || a.hitCooldown > 0 {
		return DamageIgnored
	}
	if amount < 0 {
		amount = 0
	}

	a.health -= amount
	if a.health < 0 {
		a.health = 0
	}
	a.hitCooldown = a.Stats.HitCooldown

	if a.health <= 0 {
		a.Kill()
		return DamageKilled
	}
	a.events.Push(Event{Kind: EventHit, Source: a.ID, Amount: amount})
	return DamageHit
}

// Heal restores health up to MaxHealth. Dead actors cannot be healed.
func (a *Actor) Heal(amount float64) {
	if a.dead || amount <= 0 {
		return
	}
	a.health = math.Min(a.health+amount, a.Stats.MaxHealth)
}

// Kill moves the actor to the dead state. Calling it again does nothing.
func (a *Actor) Kill() {
	if a.dead {
		return
	}
	a.dead = true
	a.health = 0
	a.velocity = world.Zero
	a.moveIntent = world.Zero
	a.shootIntent = false
	a.events.Push(Event{Kind: EventDeath, Source: a.ID})
}

// Tick runs at render rate and counts the grace window down
func (a *Actor) Tick(dt float64) {
	if a.dead {
		return
	}
	a.hitCooldown = math.Max(0, a.hitCooldown-dt)
}

// FixedTick runs at physics rate. It advances the shot counter and
// integrates velocity toward the move intent, then position.
func (a *Actor) FixedTick(dt float64) {
	if a.dead {
		return
	}
	if a.shotFrames <= a.Stats.MinFramesBetweenShots {
		a.shotFrames++
	}
	if a.Stats.Stationary {
		return
	}

	a.velocity.X = moveAxis(a.velocity.X, a.moveIntent.X, a.Stats, dt)
	a.velocity.Y = moveAxis(a.velocity.Y, a.moveIntent.Y, a.Stats, dt)
	a.Position = a.Position.Add(a.velocity.Scale(dt))
}

func moveAxis(current, input float64, stats ActorStats, dt float64) float64 {
	desired, accel := 0.0, stats.MoveDecel
	if math.Abs(input) > InputDeadzone {
		desired, accel = input*stats.MoveMax, stats.MoveAccel
	}
	return world.MoveTowards(current, desired, accel*dt)
}

// SetMoveIntent sets the requested movement direction (length <= 1)
func (a *Actor) SetMoveIntent(v world.Vec2) {
	if a.dead {
		return
	}
	a.moveIntent = v
}

// SetShootIntent sets whether the actor wants to fire
func (a *Actor) SetShootIntent(shoot bool) {
	if a.dead {
		return
	}
	a.shootIntent = shoot
}

// SetFacingAngle sets the sprite rotation in degrees
func (a *Actor) SetFacingAngle(degrees float64) {
	a.Facing = degrees
}

// ApplyIntent copies an intent onto the actor
func (a *Actor) ApplyIntent(in Intent) {
	a.SetMoveIntent(in.Move)
	if in.HasFacing {
		a.SetFacingAngle(in.Facing)
	}
	a.SetShootIntent(in.Shoot)
}

// AimDirection returns the unit vector shots travel along
func (a *Actor) AimDirection() world.Vec2 {
	return world.FromAngle(a.Facing + 90)
}

// ShotReady reports whether the shot counter has passed the minimum gap
func (a *Actor) ShotReady() bool {
	return a.shotFrames > a.Stats.MinFramesBetweenShots
}

// TryShoot fires if the actor is alive, armed, wants to shoot and the shot
// counter allows it. The caller turns the returned Shot into a Projectile.
func (a *Actor) TryShoot() (Shot, bool) {
	if a.dead || !a.Stats.UseWeapon || !a.shootIntent || !a.ShotReady() {
		return Shot{}, false
	}
	a.shotFrames = 0
	shot := Shot{
		Owner:     a.ID,
		Origin:    a.Position,
		Direction: a.AimDirection(),
		Speed:     a.Stats.ProjectileSpeed,
		Damage:    a.Stats.ProjectileDamage,
		Faction:   a.Faction,
	}
	a.events.Push(Event{Kind: EventShot, Source: a.ID, Amount: shot.Damage})
	return shot, true
}

// Teleport moves the actor and stops it
func (a *Actor) Teleport(pos world.Vec2) {
	a.Position = pos
	a.velocity = world.Zero
}

// Touches reports whether the contact circles of a and o overlap
func (a *Actor) Touches(o *Actor) bool {
	return a.Position.Dist(o.Position) < a.Stats.Radius+o.Stats.Radius
}

// ResolveContact applies contact damage between two actors that just touched.
// Actors of the same faction do not hurt each other. An actor that explodes on
// collision dies after dealing its damage. It reports whether anything happened.
func ResolveContact(a, b *Actor) bool {
	if a.dead || b.dead || !a.HostileTo(b) {
		return false
	}
	if a.Stats.ContactDamage > 0 {
		b.ApplyDamage(a.Stats.ContactDamage)
	}
	if b.Stats.ContactDamage > 0 {
		a.ApplyDamage(b.Stats.ContactDamage)
	}
	if a.Stats.ExplodeOnCollision {
		a.Kill()
	}
	if b.Stats.ExplodeOnCollision {
		b.Kill()
	}
	return true
}
