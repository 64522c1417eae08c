package gameplay

import (
	"math"

	"topdown/pkg/engine/world"
	"topdown/pkg/game/entities"
	"topdown/pkg/game/state"
)

// CollideWithWorld keeps an actor inside the arena and out of walls and doors
func CollideWithWorld(g *state.Game, a *entities.Actor) {
	r := a.Stats.Radius
	a.Position = g.Arena.Clamp(a.Position, r)
	for _, w := range g.Walls {
		a.Position, _ = pushOut(a.Position, r, w)
	}
	for _, d := range g.Doors {
		a.Position, _ = pushOut(a.Position, r, d.Bounds())
	}
}

// blocked reports whether a point lies inside a wall or door
func blocked(g *state.Game, p world.Vec2) bool {
	for _, w := range g.Walls {
		if w.Contains(p) {
			return true
		}
	}
	for _, d := range g.Doors {
		if d.Bounds().Contains(p) {
			return true
		}
	}
	return false
}

// pushOut moves a circle out of a rectangle along the shortest way
func pushOut(pos world.Vec2, r float64, rect world.Rect) (world.Vec2, bool) {
	closest := rect.Clamp(pos, 0)
	diff := pos.Sub(closest)
	dist := diff.Len()
	if dist >= r {
		return pos, false
	}
	if dist > 1e-9 {
		return closest.Add(diff.Scale(r / dist)), true
	}

	// centre inside the rect
	left := pos.X - rect.Min.X
	right := rect.Max.X - pos.X
	down := pos.Y - rect.Min.Y
	up := rect.Max.Y - pos.Y
	switch math.Min(math.Min(left, right), math.Min(down, up)) {
	case left:
		pos.X = rect.Min.X - r
	case right:
		pos.X = rect.Max.X + r
	case down:
		pos.Y = rect.Min.Y - r
	default:
		pos.Y = rect.Max.Y + r
	}
	return pos, true
}

// SeparateActors pushes overlapping living actors apart. Stationary actors
// do not budge.
func SeparateActors(g *state.Game) {
	for i, a := range g.Actors {
		if a.IsDead() {
			continue
		}
		for _, b := range g.Actors[i+1:] {
			if b.IsDead() || (a.Stats.Stationary && b.Stats.Stationary) {
				continue
			}
			separate(a, b)
		}
	}
	for _, a := range g.Actors {
		if !a.IsDead() && !a.Stats.Stationary {
			a.Position = g.Arena.Clamp(a.Position, a.Stats.Radius)
		}
	}
}

func separate(a, b *entities.Actor) {
	minDist := a.Stats.Radius + b.Stats.Radius
	diff := b.Position.Sub(a.Position)
	dist := diff.Len()
	if dist >= minDist {
		return
	}
	dir := world.V(1, 0)
	if dist > 1e-9 {
		dir = diff.Scale(1 / dist)
	}
	overlap := minDist - dist

	switch {
	case a.Stats.Stationary:
		b.Position = b.Position.Add(dir.Scale(overlap))
	case b.Stats.Stationary:
		a.Position = a.Position.Sub(dir.Scale(overlap))
	default:
		a.Position = a.Position.Sub(dir.Scale(overlap / 2))
		b.Position = b.Position.Add(dir.Scale(overlap / 2))
	}
}
