package entities

import "topdown/pkg/engine/world"

const (
	// ProjectileLifetime is how long a projectile flies before it is removed
	ProjectileLifetime = 5.0
	// ProjectileRadius is the contact radius of a projectile
	ProjectileRadius = 0.1
)

// Projectile is a straight-flying shot. It damages at most one actor.
type Projectile struct {
	ID        ID
	Owner     ID
	Faction   Faction
	Position  world.Vec2
	Direction world.Vec2
	Speed     float64
	Damage    float64
	Lifetime  float64

	spent bool
}

// NewProjectile turns a shot into a projectile
func NewProjectile(id ID, shot Shot) *Projectile {
	return &Projectile{
		ID:        id,
		Owner:     shot.Owner,
		Faction:   shot.Faction,
		Position:  shot.Origin,
		Direction: shot.Direction.Normalized(),
		Speed:     shot.Speed,
		Damage:    shot.Damage,
		Lifetime:  ProjectileLifetime,
	}
}

// Spent reports whether the projectile should be removed
func (p *Projectile) Spent() bool { return p.spent }

// Expire removes the projectile without dealing damage
func (p *Projectile) Expire() { p.spent = true }

// Velocity returns the projectile's velocity
func (p *Projectile) Velocity() world.Vec2 {
	return p.Direction.Scale(p.Speed)
}

// Advance moves the projectile and burns lifetime
func (p *Projectile) Advance(dt float64) {
	if p.spent {
		return
	}
	p.Position = p.Position.Add(p.Velocity().Scale(dt))
	p.Lifetime -= dt
	if p.Lifetime <= 0 {
		p.spent = true
	}
}

// Touches reports whether the projectile overlaps the actor
func (p *Projectile) Touches(a *Actor) bool {
	return p.Position.Dist(a.Position) < ProjectileRadius+a.Stats.Radius
}

// Hit applies the projectile's damage to a hostile actor and spends it.
// Friendly or dead actors are passed through.
func (p *Projectile) Hit(target *Actor) (DamageOutcome, bool) {
	if p.spent || target.IsDead() || target.Faction == p.Faction {
		return DamageIgnored, false
	}
	p.spent = true
	return target.ApplyDamage(p.Damage), true
}
