package entities

// ItemKey is the carry item type of keys
const ItemKey = "key"

// Key is a carryable item that permanently adds activations to a matching door
type Key struct {
	ID    ID
	Index int
	Value int
	Item  *CarryItem

	events *EventQueue
}

// NewKey wraps a carry item as a key. Value is at least 1.
func NewKey(id ID, index, value int, item *CarryItem, events *EventQueue) *Key {
	if value < 1 {
		value = 1
	}
	return &Key{ID: id, Index: index, Value: value, Item: item, events: events}
}

// Consumed reports whether the key has been used up
func (k *Key) Consumed() bool {
	return k.Item.Destroyed()
}

// TryUnlock consumes the key into the door when the door accepts keys, the
// indices match and the door is not already open.
func (k *Key) TryUnlock(d *Door) bool {
	if k.Consumed() || !d.CanKeyUnlock(k.Index) || d.IsOpen() {
		return false
	}
	d.UnlockWithKey(k.Value)
	k.Item.Destroy()
	k.events.Push(Event{Kind: EventKeyConsumed, Source: k.ID, Target: d.ID, Amount: float64(k.Value)})
	return true
}
