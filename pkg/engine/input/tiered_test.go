package input

import "testing"

func TestMapToIntent_Bindings(t *testing.T) {
	cases := map[string]Action{
		"w":           ActionMoveNorth,
		"d":           ActionMoveEast,
		"arrow_left":  ActionAimWest,
		"k":           ActionAimSouth,
		"space":       ActionWait,
		"r":           ActionResetLevel,
		"unbound_key": ActionNone,
	}
	for code, want := range cases {
		got := MapToIntent(NewDebouncedInput(RawInput{Device: DeviceTerminal, Code: code}))
		if got.Action != want {
			t.Errorf("MapToIntent(%q) = %s, want %s", code, ActionName(got.Action), ActionName(want))
		}
	}
}

func TestAction_Classification(t *testing.T) {
	if !ActionMoveWest.IsMove() || ActionMoveWest.IsAim() {
		t.Error("ActionMoveWest should be a move action only")
	}
	if !ActionAimEast.IsAim() || ActionAimEast.IsMove() {
		t.Error("ActionAimEast should be an aim action only")
	}
	if ActionWait.IsMove() || ActionWait.IsAim() {
		t.Error("ActionWait should be neither move nor aim")
	}
}

func TestCodeForByte(t *testing.T) {
	cases := map[byte]string{
		'W':  "w",
		' ':  "space",
		'\r': "enter",
		'.':  ".",
		3:    "ctrl_c",
		0:    "",
	}
	for b, want := range cases {
		if got := codeForByte(b); got != want {
			t.Errorf("codeForByte(%d) = %q, want %q", b, got, want)
		}
	}
}

func TestSetSingleBinding_KeepsArrows(t *testing.T) {
	SetSingleBinding(ActionAimNorth, "u")
	defer SetSingleBinding(ActionAimNorth, "i")

	if MapToIntent(DebouncedInput{Code: "u"}).Action != ActionAimNorth {
		t.Error("rebound code u does not map to ActionAimNorth")
	}
	if MapToIntent(DebouncedInput{Code: "arrow_up"}).Action != ActionAimNorth {
		t.Error("arrow_up binding was removed by SetSingleBinding")
	}
	if MapToIntent(DebouncedInput{Code: "i"}).Action == ActionAimNorth {
		t.Error("old code i still bound after SetSingleBinding")
	}
}

func TestActionByName(t *testing.T) {
	tests := []struct {
		name string
		want Action
		ok   bool
	}{
		{"use", ActionInteract, true},
		{"Reset Level", ActionResetLevel, true},
		{"reset_level", ActionResetLevel, true},
		{"shoot-north", ActionAimNorth, true},
		{"none", ActionNone, false},
		{"jump", ActionNone, false},
	}
	for _, tt := range tests {
		got, ok := ActionByName(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ActionByName(%q) = %s, %v; want %s, %v", tt.name, ActionName(got), ok, ActionName(tt.want), tt.ok)
		}
	}
}
