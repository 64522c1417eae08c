package entities

import (
	"math"

	"topdown/pkg/engine/world"
)

// LeverDebounce is the time in seconds before a lever accepts another pull
const LeverDebounce = 0.8

// LeverState is the position of a lever
type LeverState int

const (
	LeverLeft LeverState = iota
	LeverCenter
	LeverRight
	LeverDisabled
)

// String returns the state name
func (s LeverState) String() string {
	switch s {
	case LeverLeft:
		return "left"
	case LeverCenter:
		return "center"
	case LeverRight:
		return "right"
	default:
		return "disabled"
	}
}

// LeverConfig is the static configuration of a lever
type LeverConfig struct {
	Start       LeverState
	CanBeCenter bool
	Value       int // activations contributed to a door; 0 means 1
	OneShot     bool
	KeepOnReset bool
}

// Lever contributes activations to doors while in their required state
type Lever struct {
	ID       ID
	Name     string
	Position world.Vec2
	Config   LeverConfig

	state    LeverState
	debounce float64

	events *EventQueue
}

// NewLever creates a lever in its start state
func NewLever(id ID, name string, pos world.Vec2, cfg LeverConfig, events *EventQueue) *Lever {
	if cfg.Value == 0 {
		cfg.Value = 1
	}
	return &Lever{
		ID:       id,
		Name:     name,
		Position: pos,
		Config:   cfg,
		state:    cfg.Start,
		events:   events,
	}
}

// State returns the current lever position
func (l *Lever) State() LeverState { return l.state }

// Debouncing reports whether a pull would be rejected by the re-arm timer
func (l *Lever) Debouncing() bool { return l.debounce > 0 }

// Locked reports whether a one-shot lever has already been used.
// Renderers show a locked lever as disabled.
func (l *Lever) Locked() bool {
	return l.Config.OneShot && l.state != l.Config.Start
}

// Activate pulls the lever. It returns false when the lever is disabled,
// still debouncing, or a used one-shot lever.
func (l *Lever) Activate() bool {
	if l.state == LeverDisabled || l.debounce > 0 || l.Locked() {
		return false
	}

	l.debounce = LeverDebounce
	switch l.state {
	case LeverLeft:
		if l.Config.CanBeCenter {
			l.state = LeverCenter
		} else {
			l.state = LeverRight
		}
	case LeverCenter:
		l.state = LeverRight
	case LeverRight:
		l.state = LeverLeft
	}

	l.events.Push(Event{Kind: EventLeverToggled, Source: l.ID, Amount: float64(l.state)})
	return true
}

// Tick counts the debounce timer down
func (l *Lever) Tick(dt float64) {
	l.debounce = math.Max(0, l.debounce-dt)
}

// Contribution returns the lever's value if it is in the required state
func (l *Lever) Contribution(required LeverState) int {
	if l.state != required {
		return 0
	}
	return l.Config.Value
}

// Reset puts the lever back to its start state and clears the debounce
func (l *Lever) Reset() {
	l.state = l.Config.Start
	l.debounce = 0
}
