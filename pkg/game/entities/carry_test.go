package entities

import (
	"testing"

	"topdown/pkg/engine/world"
)

func newTestHolder(t *testing.T, q *EventQueue) *Holder {
	t.Helper()
	a := NewActor(1, ActorStats{MaxHealth: 10}, world.V(1, 1), FactionPlayer, q)
	return NewHolder(a, q)
}

func TestHolder_TakeAndFollow(t *testing.T) {
	q := NewEventQueue()
	h := newTestHolder(t, q)
	it := NewCarryItem(5, "key", world.V(1, 1), false, q)

	if !h.Take(it) {
		t.Fatal("Take() = false, want true")
	}
	if h.Held() != it || it.Bearer() != h {
		t.Error("holder and item not linked after Take")
	}
	h.Actor.Position = world.V(3, 4)
	it.Tick(0.02)
	if it.Position != world.V(3, 4) {
		t.Errorf("item Position = %v, want bearer position (3,4)", it.Position)
	}
	if n := q.Count(EventItemTaken, h.Actor.ID); n != 1 {
		t.Errorf("take events = %d, want 1", n)
	}
}

func TestHolder_TakeDropsPrevious(t *testing.T) {
	h := newTestHolder(t, nil)
	first := NewCarryItem(5, "key", world.Zero, false, nil)
	second := NewCarryItem(6, "gem", world.Zero, false, nil)
	h.Take(first)
	h.Tick(HolderTakeDelay + 0.01)
	if !h.Take(second) {
		t.Fatal("Take(second) = false, want true")
	}
	if h.Held() != second {
		t.Error("Held() is not the second item")
	}
	if first.Bearer() != nil || !first.OnFloor() {
		t.Error("first item not dropped")
	}
}

func TestHolder_TakeDelay(t *testing.T) {
	h := newTestHolder(t, nil)
	h.Take(NewCarryItem(5, "key", world.Zero, false, nil))
	if h.Take(NewCarryItem(6, "gem", world.Zero, false, nil)) {
		t.Error("Take() straight after a take = true, want false")
	}
}

func TestCarryItem_SameTypeNotStacked(t *testing.T) {
	h := newTestHolder(t, nil)
	h.Take(NewCarryItem(5, "key", world.Zero, false, nil))
	h.Tick(1)
	other := NewCarryItem(6, "key", world.Zero, false, nil)
	if other.CanTake(h) {
		t.Error("CanTake(same type) = true, want false")
	}
}

func TestCarryItem_NoImmediateRetake(t *testing.T) {
	h := newTestHolder(t, nil)
	it := NewCarryItem(5, "key", world.Zero, false, nil)
	h.Take(it)
	h.Drop()
	h.Tick(1)
	if it.CanTake(h) {
		t.Error("CanTake() right after drop = true, want false")
	}
	it.Tick(DropRetakeDelay)
	if !it.CanTake(h) {
		t.Error("CanTake() after retake delay = false, want true")
	}
}

func TestCarryItem_DestroyDropsAndRespawns(t *testing.T) {
	h := newTestHolder(t, nil)
	it := NewCarryItem(5, "gem", world.V(2, 2), true, nil)
	h.Take(it)
	it.Destroy()
	if h.Held() != nil {
		t.Error("holder still holds a destroyed item")
	}
	if !it.Destroyed() {
		t.Fatal("Destroyed() = false, want true")
	}
	it.Tick(ItemRespawnDelay + 0.1)
	if it.Destroyed() || it.Position != world.V(2, 2) {
		t.Errorf("item not respawned at start: destroyed=%v pos=%v", it.Destroyed(), it.Position)
	}
}

func TestCarryItem_ResetReturnsHeldItem(t *testing.T) {
	h := newTestHolder(t, nil)
	it := NewCarryItem(5, "key", world.V(2, 2), false, nil)
	h.Take(it)
	it.Reset()
	if h.Held() != nil || it.Bearer() != nil || it.Position != world.V(2, 2) {
		t.Error("Reset() did not return the item to its start")
	}
}

func TestHolder_DeadCannotTake(t *testing.T) {
	h := newTestHolder(t, nil)
	h.Actor.Kill()
	if h.Take(NewCarryItem(5, "key", world.Zero, false, nil)) {
		t.Error("dead holder took an item")
	}
}
