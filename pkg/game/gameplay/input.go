package gameplay

import (
	engineinput "topdown/pkg/engine/input"
	"topdown/pkg/engine/world"
	"topdown/pkg/game/devtools"
	"topdown/pkg/game/entities"
	"topdown/pkg/game/state"
)

// TurnDuration is how much time one key press advances in step mode
const TurnDuration = 0.25

// frameStep is the frame length used when stepping time in chunks
const frameStep = 1.0 / 60

// ProcessIntent handles a high-level input intent from the tiered input system.
// Move and aim actions only set the player's controls; the caller advances time.
func ProcessIntent(g *state.Game, intent engineinput.Intent) error {
	switch a := intent.Action; {
	case a.IsMove():
		g.Controls.Move = actionDirection(a).Vector()
		return nil
	case a.IsAim():
		g.Controls.SetAim(actionDirection(a).Vector())
		return nil
	}

	switch intent.Action {
	case engineinput.ActionDrop:
		if g.Holder != nil && g.Holder.Held() != nil {
			g.Holder.Drop()
		}

	case engineinput.ActionInteract:
		if !Interact(g) {
			logMessage(g, "NOTHING_TO_USE")
		}

	case engineinput.ActionResetLevel:
		return RestartLevel(g)

	case engineinput.ActionDumpWorld:
		path, err := devtools.DumpWorldToFile(g)
		if err != nil {
			logMessage(g, "DUMP_FAILED", err)
		} else {
			logMessage(g, "DUMP_WRITTEN", path)
		}

	case engineinput.ActionScreenshot:
		name, err := devtools.SaveScreenshotHTML(g)
		if err != nil {
			logMessage(g, "SCREENSHOT_FAILED", err)
		} else {
			logMessage(g, "SCREENSHOT_SAVED", name)
		}

	case engineinput.ActionQuit:
		g.Quit = true
		g.GameOver = true
	}
	return nil
}

// actionDirection maps a move or aim action to its compass direction
func actionDirection(a engineinput.Action) world.Direction {
	switch a {
	case engineinput.ActionMoveNorth, engineinput.ActionAimNorth:
		return world.North
	case engineinput.ActionMoveSouth, engineinput.ActionAimSouth:
		return world.South
	case engineinput.ActionMoveWest, engineinput.ActionAimWest:
		return world.West
	default:
		return world.East
	}
}

// ReleaseControls centres both sticks
func ReleaseControls(g *state.Game) {
	g.Controls.Move = world.Zero
	g.Controls.SetAim(world.Zero)
}

// Step advances the game by d seconds in render-sized frames and then
// releases the controls. Terminal play uses one Step per key press.
func Step(g *state.Game, d float64) ([]entities.Event, error) {
	var all []entities.Event
	for d > 1e-9 && !g.GameOver {
		dt := min(frameStep, d)
		events, err := Advance(g, dt)
		all = append(all, events...)
		if err != nil {
			return all, err
		}
		d -= dt
	}
	ReleaseControls(g)
	return all, nil
}
