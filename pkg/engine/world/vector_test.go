package world

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMoveTowards_NoOvershoot(t *testing.T) {
	if got := MoveTowards(0, 1, 0.3); !approx(got, 0.3) {
		t.Errorf("MoveTowards(0, 1, 0.3) = %v, want 0.3", got)
	}
	if got := MoveTowards(0.9, 1, 0.3); got != 1 {
		t.Errorf("MoveTowards(0.9, 1, 0.3) = %v, want 1", got)
	}
	if got := MoveTowards(1, -1, 0.5); !approx(got, 0.5) {
		t.Errorf("MoveTowards(1, -1, 0.5) = %v, want 0.5", got)
	}
}

func TestFromAngle(t *testing.T) {
	up := FromAngle(90)
	if !approx(up.X, 0) || !approx(up.Y, 1) {
		t.Errorf("FromAngle(90) = %v, want (0,1)", up)
	}
	if a := V(-1, 0).Angle(); !approx(a, 180) {
		t.Errorf("V(-1,0).Angle() = %v, want 180", a)
	}
}

func TestNormalizedAndClamp(t *testing.T) {
	if n := Zero.Normalized(); n != Zero {
		t.Errorf("Zero.Normalized() = %v, want zero", n)
	}
	if l := V(3, 4).ClampLen(1).Len(); !approx(l, 1) {
		t.Errorf("ClampLen(1) length = %v, want 1", l)
	}
	if v := V(0.2, 0).ClampLen(1); v != V(0.2, 0) {
		t.Errorf("short vector changed by ClampLen: %v", v)
	}
}

func TestRect_Clamp(t *testing.T) {
	r := Rect{Min: V(0, 0), Max: V(10, 10)}
	if p := r.Clamp(V(-3, 12), 0.5); p != V(0.5, 9.5) {
		t.Errorf("Clamp = %v, want (0.5,9.5)", p)
	}
}
