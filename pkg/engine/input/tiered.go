package input

import (
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Aim and fire (twin-stick style: aiming also pulls the trigger)
	ActionAimNorth
	ActionAimSouth
	ActionAimWest
	ActionAimEast

	// World interaction
	ActionWait     // Let time pass without moving
	ActionDrop     // Drop the held item
	ActionInteract // Use the held item

	// Meta / UI
	ActionQuit
	ActionResetLevel // Restart the current level
	ActionDumpWorld  // Write a debug dump of the world
	ActionScreenshot // Save an HTML snapshot of the view
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "w", "arrow_up", "gamepad_dpad_up").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Terminal and Ebiten input both arrive already edge-detected, so this is a
// distinct type to keep the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (WASD)
	"w": ActionMoveNorth,
	"s": ActionMoveSouth,
	"a": ActionMoveWest,
	"d": ActionMoveEast,

	// Aim + shoot (arrows, IJKL)
	"arrow_up":    ActionAimNorth,
	"i":           ActionAimNorth,
	"arrow_down":  ActionAimSouth,
	"k":           ActionAimSouth,
	"arrow_left":  ActionAimWest,
	"j":           ActionAimWest,
	"arrow_right": ActionAimEast,
	"l":           ActionAimEast,

	"space": ActionWait,
	".":     ActionWait,
	"g":     ActionDrop,
	"e":     ActionInteract,
	"enter": ActionInteract,

	// Quit
	"q":      ActionQuit,
	"escape": ActionQuit,

	"r":   ActionResetLevel,
	"f5":  ActionResetLevel,
	"p":   ActionDumpWorld,
	"o":   ActionScreenshot,
	"f12": ActionScreenshot,

	// Controller/gamepad specific bindings
	"gamepad_dpad_up":    ActionMoveNorth,
	"gamepad_dpad_down":  ActionMoveSouth,
	"gamepad_dpad_left":  ActionMoveWest,
	"gamepad_dpad_right": ActionMoveEast,
	"gamepad_y":          ActionAimNorth,
	"gamepad_a":          ActionAimSouth,
	"gamepad_x":          ActionAimWest,
	"gamepad_b":          ActionAimEast,
	"gamepad_start":      ActionResetLevel,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionAimNorth:
		return "Shoot North"
	case ActionAimSouth:
		return "Shoot South"
	case ActionAimWest:
		return "Shoot West"
	case ActionAimEast:
		return "Shoot East"
	case ActionWait:
		return "Wait"
	case ActionDrop:
		return "Drop"
	case ActionInteract:
		return "Use"
	case ActionQuit:
		return "Quit"
	case ActionResetLevel:
		return "Reset Level"
	case ActionDumpWorld:
		return "Dump World"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "None"
	}
}

// ActionByName finds an action by its name, ignoring case. Spaces, dashes
// and underscores are interchangeable, so "reset_level" names Reset Level.
func ActionByName(name string) (Action, bool) {
	want := bindingName(name)
	for a := ActionMoveNorth; a <= ActionScreenshot; a++ {
		if bindingName(ActionName(a)) == want {
			return a, true
		}
	}
	return ActionNone, false
}

func bindingName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}

// IsMove reports whether a is one of the movement actions
func (a Action) IsMove() bool {
	return a >= ActionMoveNorth && a <= ActionMoveEast
}

// IsAim reports whether a is one of the aim/shoot actions
func (a Action) IsAim() bool {
	return a >= ActionAimNorth && a <= ActionAimEast
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering of codes within each action so help text doesn't shuffle.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single code.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		// Arrow keys are reserved for aiming.
		if c == "arrow_up" || c == "arrow_down" || c == "arrow_left" || c == "arrow_right" {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" &&
		code != "arrow_up" && code != "arrow_down" &&
		code != "arrow_left" && code != "arrow_right" {
		bindings[code] = action
	}
}
