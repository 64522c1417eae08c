package ebiten

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "topdown/pkg/engine/input"
	"topdown/pkg/engine/world"
)

// stickDeadzone ignores small analog stick drift
const stickDeadzone = 0.2

type buttonBinding struct {
	button ebiten.StandardGamepadButton
	code   string
}

var actionButtons = []buttonBinding{
	{ebiten.StandardGamepadButtonCenterRight, "gamepad_start"},
	{ebiten.StandardGamepadButtonFrontTopRight, "e"},
	{ebiten.StandardGamepadButtonFrontTopLeft, "g"},
}

// Held-key groups: north, south, west, east
var (
	moveKeys = [4][]ebiten.Key{
		{ebiten.KeyW},
		{ebiten.KeyS},
		{ebiten.KeyA},
		{ebiten.KeyD},
	}
	aimKeys = [4][]ebiten.Key{
		{ebiten.KeyArrowUp, ebiten.KeyI},
		{ebiten.KeyArrowDown, ebiten.KeyK},
		{ebiten.KeyArrowLeft, ebiten.KeyJ},
		{ebiten.KeyArrowRight, ebiten.KeyL},
	}
)

// checkInput returns the first edge-triggered action of this tick. Move and
// aim keys are read as held keys instead.
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		in := intentFor(engineinput.DeviceKeyboard, keyCode(k))
		if a := in.Action; a != engineinput.ActionNone && !a.IsMove() && !a.IsAim() {
			return in
		}
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, b := range actionButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, b.button) {
				return intentFor(engineinput.DeviceGamepad, b.code)
			}
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// keyCode names a key the way bindings do: "e", "enter", "f5"
func keyCode(k ebiten.Key) string {
	return strings.ToLower(k.String())
}

func intentFor(device engineinput.Device, code string) engineinput.Intent {
	raw := engineinput.RawInput{Device: device, Code: code}
	return engineinput.MapToIntent(engineinput.NewDebouncedInput(raw))
}

// heldVector combines held direction keys into a vector of length <= 1
func heldVector(groups [4][]ebiten.Key) world.Vec2 {
	var v world.Vec2
	dirs := [4]world.Direction{world.North, world.South, world.West, world.East}
	for i, keys := range groups {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				v = v.Add(dirs[i].Vector())
				break
			}
		}
	}
	return v.ClampLen(1)
}

// stickVector reads an analog stick of the first standard gamepad. Screen
// down is positive on the vertical axis; world north is +Y.
func stickVector(horizontal, vertical ebiten.StandardGamepadAxis) world.Vec2 {
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		v := world.V(
			ebiten.StandardGamepadAxisValue(id, horizontal),
			-ebiten.StandardGamepadAxisValue(id, vertical),
		)
		if v.Len() >= stickDeadzone {
			return v.ClampLen(1)
		}
	}
	return world.Zero
}

// moveVector is WASD or the left stick
func moveVector() world.Vec2 {
	if v := heldVector(moveKeys); v != world.Zero {
		return v
	}
	return stickVector(ebiten.StandardGamepadAxisLeftStickHorizontal, ebiten.StandardGamepadAxisLeftStickVertical)
}

// aimVector is the arrow keys, IJKL or the right stick
func aimVector() world.Vec2 {
	if v := heldVector(aimKeys); v != world.Zero {
		return v
	}
	return stickVector(ebiten.StandardGamepadAxisRightStickHorizontal, ebiten.StandardGamepadAxisRightStickVertical)
}

// handleZoom handles =/- for tile size adjustment
func (e *EbitenRenderer) handleZoom() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		e.setTileSize(e.tileSize + tileSizeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		e.setTileSize(e.tileSize - tileSizeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key0) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad0) {
		e.setTileSize(defaultTileSize)
	}
}

// setTileSize changes the zoom within bounds
func (e *EbitenRenderer) setTileSize(size int) {
	size = max(minTileSize, min(maxTileSize, size))
	if size != e.tileSize {
		e.tileSize = size
		e.invalidateFontCache()
	}
}
