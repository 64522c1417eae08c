package gameplay

import (
	"topdown/pkg/game/entities"
	"topdown/pkg/game/state"
)

// HandleEvents reacts to drained events: the player's death restarts the
// level, dead enemies are removed, and clearing a level moves on to the next.
func HandleEvents(g *state.Game, events []entities.Event) error {
	playerDied := false
	for _, ev := range events {
		switch ev.Kind {
		case entities.EventDeath:
			if ev.Source == g.Player {
				playerDied = true
			}
		case entities.EventLeverToggled:
			logMessage(g, "LEVER_PULLED")
		case entities.EventKeyConsumed:
			if d := g.Door(ev.Target); d != nil {
				logMessage(g, "KEY_USED", d.Name)
			}
		case entities.EventItemTaken:
			logMessage(g, "ITEM_TAKEN")
		case entities.EventItemDropped:
			logMessage(g, "ITEM_DROPPED")
		}
	}

	if playerDied {
		if g.Holder != nil {
			g.Holder.Drop()
		}
		logMessage(g, "PLAYER_DIED")
		return RestartLevel(g)
	}

	g.RemoveDeadActors()
	if !g.GameOver && g.PlayerActor() != nil && g.EnemiesRemaining() == 0 {
		return AdvanceLevel(g)
	}
	return nil
}
