package gameplay

import (
	"os"
	"testing"

	engineinput "topdown/pkg/engine/input"
	"topdown/pkg/engine/world"
)

func intent(a engineinput.Action) engineinput.Intent {
	return engineinput.Intent{Action: a}
}

func TestProcessIntent_MoveAndAimSetControls(t *testing.T) {
	g := newTestGame(t, stubLevels{1: {{"t1"}}}, 1)

	if err := ProcessIntent(g, intent(engineinput.ActionMoveNorth)); err != nil {
		t.Fatalf("ProcessIntent() error = %v", err)
	}
	if g.Controls.Move != world.V(0, 1) {
		t.Errorf("Controls.Move = %v, want (0,1)", g.Controls.Move)
	}

	if err := ProcessIntent(g, intent(engineinput.ActionAimWest)); err != nil {
		t.Fatalf("ProcessIntent() error = %v", err)
	}
	if g.Controls.Aim != world.V(-1, 0) {
		t.Errorf("Controls.Aim = %v, want (-1,0)", g.Controls.Aim)
	}

	ReleaseControls(g)
	if g.Controls.Move != world.Zero || g.Controls.Aim != world.Zero {
		t.Errorf("controls after release = %v, %v; want zero", g.Controls.Move, g.Controls.Aim)
	}
}

func TestProcessIntent_InteractWithNothing(t *testing.T) {
	g := newTestGame(t, stubLevels{1: {{"t1"}}}, 1)

	if err := ProcessIntent(g, intent(engineinput.ActionInteract)); err != nil {
		t.Fatalf("ProcessIntent() error = %v", err)
	}
	if !hasMessage(g, "NOTHING_TO_USE") {
		t.Errorf("Messages = %v, want NOTHING_TO_USE", g.Messages)
	}
}

func TestProcessIntent_DropHeldItem(t *testing.T) {
	g := newTestGame(t, stubLevels{1: {{"t1"}}}, 1)
	key := g.Keys[0]
	if !g.Holder.Take(key.Item) {
		t.Fatal("Take(key) = false")
	}

	if err := ProcessIntent(g, intent(engineinput.ActionDrop)); err != nil {
		t.Fatalf("ProcessIntent() error = %v", err)
	}
	if g.Holder.Held() != nil {
		t.Error("item still held after drop")
	}
	if !key.Item.OnFloor() {
		t.Error("dropped key is not on the floor")
	}
}

func TestProcessIntent_ResetLevelRespawnsPlayer(t *testing.T) {
	g := newTestGame(t, stubLevels{1: {{"t1"}}}, 1)
	old := g.PlayerActor()
	old.ApplyDamage(40)

	if err := ProcessIntent(g, intent(engineinput.ActionResetLevel)); err != nil {
		t.Fatalf("ProcessIntent() error = %v", err)
	}
	p := g.PlayerActor()
	if p == old || p.Health() != p.MaxHealth() {
		t.Errorf("player after reset has %v HP, want a fresh player", p.Health())
	}
	if !hasMessage(g, "LEVEL_RESET") {
		t.Errorf("Messages = %v, want LEVEL_RESET", g.Messages)
	}
}

func TestProcessIntent_Quit(t *testing.T) {
	g := newTestGame(t, stubLevels{1: {{"t1"}}}, 1)

	if err := ProcessIntent(g, intent(engineinput.ActionQuit)); err != nil {
		t.Fatalf("ProcessIntent() error = %v", err)
	}
	if !g.Quit || !g.GameOver {
		t.Errorf("Quit, GameOver = %v, %v; want true, true", g.Quit, g.GameOver)
	}
}

func TestProcessIntent_DumpWorldWritesFile(t *testing.T) {
	t.Chdir(t.TempDir())
	g := newTestGame(t, stubLevels{1: {{"t1"}}}, 1)

	if err := ProcessIntent(g, intent(engineinput.ActionDumpWorld)); err != nil {
		t.Fatalf("ProcessIntent() error = %v", err)
	}
	if _, err := os.Stat("world.txt"); err != nil {
		t.Errorf("world.txt not written: %v", err)
	}
	if !hasMessage(g, "DUMP_WRITTEN") {
		t.Errorf("Messages = %v, want DUMP_WRITTEN", g.Messages)
	}
}
