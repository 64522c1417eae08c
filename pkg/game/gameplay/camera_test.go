package gameplay

import (
	"math"
	"testing"

	"topdown/pkg/engine/world"
)

func TestSmoothDamp_ConvergesWithoutOvershoot(t *testing.T) {
	x, v := 0.0, 0.0
	for i := 0; i < 200; i++ {
		x = SmoothDamp(x, 10, &v, 0.2, 1.0/60)
		if x > 10 {
			t.Fatalf("step %d: x = %v, overshot 10", i, x)
		}
	}
	if math.Abs(x-10) > 0.01 {
		t.Errorf("x = %v, want ~10", x)
	}
}

func TestSmoothDamp_ZeroDeltaHolds(t *testing.T) {
	v := 3.0
	if got := SmoothDamp(2, 10, &v, 0.2, 0); got != 2 {
		t.Errorf("SmoothDamp(dt=0) = %v, want 2", got)
	}
}

func TestCamera_FollowsAndLocks(t *testing.T) {
	c := NewCamera(world.Zero)
	for i := 0; i < 300; i++ {
		c.Update(world.V(4, 0), 1.0/60)
	}
	if c.Position.Dist(world.V(4, 0)) > cameraDeadzone {
		t.Errorf("Position = %v, want near (4,0)", c.Position)
	}

	c.Lock(world.V(-3, 2))
	for i := 0; i < 300; i++ {
		c.Update(world.V(4, 0), 1.0/60)
	}
	if c.Position.Dist(world.V(-3, 2)) > cameraDeadzone {
		t.Errorf("locked Position = %v, want near (-3,2)", c.Position)
	}
	if !c.Locked() {
		t.Error("Locked() = false")
	}
	c.Unlock()
	if c.Locked() {
		t.Error("Locked() after Unlock = true")
	}
}

func TestCamera_ShakeWearsOff(t *testing.T) {
	c := NewCamera(world.Zero)
	c.Shake(1, 0.5)

	c.Update(world.Zero, 0.1)
	if c.View() == c.Position {
		t.Error("View() = Position while shaking")
	}

	for i := 0; i < 10; i++ {
		c.Update(world.Zero, 0.1)
	}
	if c.View() != c.Position {
		t.Errorf("View() = %v after shake, want %v", c.View(), c.Position)
	}
}
