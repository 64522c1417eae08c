package entities

import (
	"math"
	"testing"

	"topdown/pkg/engine/world"
)

func TestPlayerControls_ClampsMove(t *testing.T) {
	a := NewActor(1, ActorStats{UseWeapon: true}, world.Zero, FactionPlayer, nil)
	c := &PlayerControls{Move: world.V(3, 4)}
	in := c.Intent(a)
	if math.Abs(in.Move.Len()-1) > 1e-9 {
		t.Errorf("Intent().Move length = %v, want 1", in.Move.Len())
	}
	if in.Shoot {
		t.Error("Intent().Shoot without aim = true, want false")
	}
}

func TestPlayerControls_AimSetsFacingAndShoot(t *testing.T) {
	a := NewActor(1, ActorStats{UseWeapon: true}, world.Zero, FactionPlayer, nil)
	c := &PlayerControls{}
	c.SetAim(world.V(0, 1))
	in := c.Intent(a)
	if !in.Shoot {
		t.Error("Intent().Shoot with aim = false, want true")
	}
	a.ApplyIntent(in)
	dir := a.AimDirection()
	if math.Abs(dir.X) > 1e-9 || math.Abs(dir.Y-1) > 1e-9 {
		t.Errorf("AimDirection() = %v, want (0, 1)", dir)
	}

	c.SetAim(world.V(0.05, 0))
	in = c.Intent(a)
	if in.Shoot {
		t.Error("Intent().Shoot inside deadzone = true, want false")
	}
	if in.Facing != 360 {
		t.Errorf("Intent().Facing = %v, want previous 360", in.Facing)
	}
}

func TestChaser_ApproachHoldRetreat(t *testing.T) {
	player := NewActor(1, ActorStats{}, world.V(0, 0), FactionPlayer, nil)
	enemy := NewActor(2, ActorStats{FollowDistance: 3}, world.V(10, 0), FactionEnemy, nil)
	ai := Chaser{Target: player}

	if in := ai.Intent(enemy); in.Move.X >= 0 {
		t.Errorf("far enemy Move = %v, want toward player", in.Move)
	}
	enemy.Position = world.V(3, 0)
	if in := ai.Intent(enemy); in.Move != world.Zero {
		t.Errorf("enemy in band Move = %v, want zero", in.Move)
	}
	enemy.Position = world.V(1, 0)
	if in := ai.Intent(enemy); in.Move.X <= 0 {
		t.Errorf("close enemy Move = %v, want away from player", in.Move)
	}
}

func TestChaser_FacesTarget(t *testing.T) {
	player := NewActor(1, ActorStats{}, world.V(0, 0), FactionPlayer, nil)
	enemy := NewActor(2, ActorStats{UseWeapon: true}, world.V(5, 0), FactionEnemy, nil)
	in := Chaser{Target: player}.Intent(enemy)
	enemy.ApplyIntent(in)
	dir := enemy.AimDirection()
	if math.Abs(dir.X+1) > 1e-9 || math.Abs(dir.Y) > 1e-9 {
		t.Errorf("AimDirection() = %v, want (-1, 0)", dir)
	}
	if !in.Shoot {
		t.Error("armed chaser Shoot = false, want true")
	}
}

func TestChaser_NilTarget(t *testing.T) {
	enemy := NewActor(2, ActorStats{UseWeapon: true}, world.Zero, FactionEnemy, nil)
	if in := (Chaser{}).Intent(enemy); in.Shoot || in.Move != world.Zero {
		t.Errorf("Intent() with no target = %+v, want zero", in)
	}
}

func TestProjectile_HitsOnce(t *testing.T) {
	q := NewEventQueue()
	target := NewActor(2, ActorStats{MaxHealth: 20}, world.V(1, 0), FactionEnemy, q)
	other := NewActor(3, ActorStats{MaxHealth: 20}, world.V(1, 0), FactionEnemy, q)
	p := NewProjectile(9, Shot{Owner: 1, Direction: world.V(1, 0), Speed: 10, Damage: 5, Faction: FactionPlayer})

	p.Advance(0.1)
	if !p.Touches(target) {
		t.Fatal("projectile does not touch target after 0.1s")
	}
	if out, ok := p.Hit(target); !ok || out != DamageHit {
		t.Errorf("Hit() = %v, %v; want DamageHit, true", out, ok)
	}
	if _, ok := p.Hit(other); ok {
		t.Error("spent projectile hit a second actor")
	}
	if target.Health() != 15 || other.Health() != 20 {
		t.Errorf("healths = %v, %v; want 15, 20", target.Health(), other.Health())
	}
}

func TestProjectile_PassesFriendly(t *testing.T) {
	friend := NewActor(2, ActorStats{MaxHealth: 20}, world.Zero, FactionPlayer, nil)
	p := NewProjectile(9, Shot{Direction: world.V(1, 0), Speed: 10, Damage: 5, Faction: FactionPlayer})
	if _, ok := p.Hit(friend); ok || p.Spent() {
		t.Error("projectile hit a friendly actor")
	}
}

func TestProjectile_Lifetime(t *testing.T) {
	p := NewProjectile(9, Shot{Direction: world.V(0, 1), Speed: 1})
	for i := 0; i < 249; i++ {
		p.Advance(0.02)
	}
	if p.Spent() {
		t.Error("projectile spent before lifetime ran out")
	}
	p.Advance(0.03)
	if !p.Spent() {
		t.Error("projectile alive after lifetime")
	}
}
