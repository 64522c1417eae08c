package gameplay

import (
	"testing"

	"topdown/pkg/engine/world"
	"topdown/pkg/game/entities"
	"topdown/pkg/game/setup"
	"topdown/pkg/game/state"
)

func doorNamed(t *testing.T, g *state.Game, name string) *entities.Door {
	t.Helper()
	for _, d := range g.Doors {
		if d.Name == name {
			return d
		}
	}
	t.Fatalf("no door named %q", name)
	return nil
}

func itemsOfType(g *state.Game, itemType string) []*entities.CarryItem {
	var out []*entities.CarryItem
	for _, it := range g.Items {
		if it.Type == itemType {
			out = append(out, it)
		}
	}
	return out
}

func TestTriggerLevers_OpenLeverGate(t *testing.T) {
	g := newTestGame(t, stubLevels{1: {{"t1"}}}, 1)
	gate := doorNamed(t, g, "east gate")
	p := g.PlayerActor()

	for _, l := range gate.Levers() {
		p.Teleport(l.Position)
		RenderTick(g, 0.01)
		if l.State() != entities.LeverRight {
			t.Fatalf("lever %d state = %v, want %v", l.ID, l.State(), entities.LeverRight)
		}
	}

	// Standing on a lever past its debounce does not pull it again
	RenderTick(g, 1)
	for _, l := range gate.Levers() {
		if l.State() != entities.LeverRight {
			t.Errorf("lever %d state = %v after standing on it, want %v", l.ID, l.State(), entities.LeverRight)
		}
	}

	for i := 0; i < 60; i++ {
		FixedTick(g, FixedStep)
	}
	if !gate.IsOpen() {
		t.Errorf("gate displacement = %v, want open", gate.Displacement())
	}

	ResetLevel(g)
	if gate.IsOpen() || gate.Displacement() != 0 {
		t.Errorf("gate displacement after reset = %v, want 0", gate.Displacement())
	}
	for _, l := range gate.Levers() {
		if l.State() != entities.LeverLeft {
			t.Errorf("lever %d state after reset = %v, want %v", l.ID, l.State(), entities.LeverLeft)
		}
	}
}

func TestUnlockTouchedDoors_KeyOpensKeyGate(t *testing.T) {
	g := newTestGame(t, stubLevels{1: {{"t1"}}}, 1)
	gate := doorNamed(t, g, "west gate")
	key := g.Keys[0]
	p := g.PlayerActor()

	p.Teleport(key.Item.Position)
	RenderTick(g, 0.01)
	if g.Holder.Held() != key.Item {
		t.Fatal("player did not pick up the key")
	}

	p.Teleport(world.V(gate.Origin.X+0.4, gate.Origin.Y))
	FixedTick(g, FixedStep)

	if !key.Consumed() {
		t.Fatal("key was not consumed at the gate")
	}
	if got := gate.KeyActivations(); got != 1 {
		t.Errorf("KeyActivations() = %d, want 1", got)
	}
	if g.Holder.Held() != nil {
		t.Error("consumed key is still held")
	}

	ResetLevel(g)
	if got := gate.KeyActivations(); got != 0 {
		t.Errorf("KeyActivations() after reset = %d, want 0", got)
	}
	if key.Consumed() || key.Item.Position != key.Item.Start() {
		t.Error("key was not returned to its start after reset")
	}
}

func TestPickUpItems_MedkitHealsOnlyWhenHurt(t *testing.T) {
	g := newTestGame(t, stubLevels{1: {{"t1"}}}, 1)
	medkits := itemsOfType(g, setup.ItemMedkit)
	if len(medkits) < 2 {
		t.Fatalf("found %d medkits, want 2", len(medkits))
	}
	p := g.PlayerActor()

	p.Teleport(medkits[0].Position)
	RenderTick(g, 0.01)
	if medkits[0].Destroyed() {
		t.Error("medkit used at full health")
	}

	p.ApplyDamage(50)
	p.Teleport(medkits[1].Position)
	RenderTick(g, 0.01)
	if !medkits[1].Destroyed() {
		t.Fatal("medkit not used when hurt")
	}
	if want := p.MaxHealth() - 50 + setup.MedkitHeal; p.Health() != want {
		t.Errorf("health = %v, want %v", p.Health(), want)
	}
	if g.Holder.Held() != nil {
		t.Error("medkit ended up in the player's hand")
	}
	if !hasMessage(g, "MEDKIT_USED") {
		t.Errorf("Messages = %v, want MEDKIT_USED", g.Messages)
	}
}

func TestInteract_PullsNearestLeverInReach(t *testing.T) {
	g := newTestGame(t, stubLevels{1: {{"t1"}}}, 1)
	p := g.PlayerActor()

	if Interact(g) {
		t.Error("Interact() at spawn = true, want false")
	}

	l := g.Levers[0]
	p.Teleport(l.Position.Add(world.V(0, 1)))
	if !Interact(g) {
		t.Fatal("Interact() next to lever = false, want true")
	}
	if l.State() != entities.LeverRight {
		t.Errorf("lever state = %v, want %v", l.State(), entities.LeverRight)
	}
	if Interact(g) {
		t.Error("Interact() while debouncing = true, want false")
	}
}
