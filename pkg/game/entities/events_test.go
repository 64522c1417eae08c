package entities

import "testing"

func TestEventQueue_DrainFIFO(t *testing.T) {
	q := NewEventQueue()
	q.Push(Event{Kind: EventHit, Source: 1})
	q.Push(Event{Kind: EventDeath, Source: 1})
	q.Push(Event{Kind: EventShot, Source: 2})
	if q.Len() != 3 {
		t.Errorf("Len() = %d, want 3", q.Len())
	}
	got := q.Drain()
	if len(got) != 3 || got[0].Kind != EventHit || got[2].Kind != EventShot {
		t.Errorf("Drain() = %v, want hit, death, shot", got)
	}
	if q.Len() != 0 || q.Drain() != nil {
		t.Error("queue not empty after Drain")
	}
}

func TestEventQueue_NilDiscards(t *testing.T) {
	var q *EventQueue
	q.Push(Event{Kind: EventHit})
	if q.Len() != 0 || q.Drain() != nil || q.Count(EventHit, 0) != 0 {
		t.Error("nil queue kept an event")
	}
}

func TestEventKind_String(t *testing.T) {
	if EventDoorSlammed.String() != "door-slammed" {
		t.Errorf("EventDoorSlammed.String() = %q", EventDoorSlammed.String())
	}
	if EventNone.String() != "none" {
		t.Errorf("EventNone.String() = %q", EventNone.String())
	}
}
