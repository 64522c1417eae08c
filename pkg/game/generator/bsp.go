// Package generator lays out per-level cover: square pillars that block
// movement and shots in the middle of the arena.
package generator

import (
	"math"
	"math/rand"

	"topdown/pkg/engine/world"
)

// BSPGenerator places pillars using Binary Space Partitioning. Layouts are
// a pure function of Seed and level.
type BSPGenerator struct {
	Seed int64
}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	area        world.Rect
	left, right *bspNode
}

// Constants for BSP generation, in world units
const (
	minNodeSize   = 3.0 // Minimum size of a BSP node
	pillarHalf    = 0.4 // Half the side of a pillar
	pillarSpacing = 2.0 // Pillar centres snap to this lattice
	clearance     = 0.8 // Gap kept between a pillar and any keep-clear point
	maxPillars    = 6
)

// PillarCount returns how many pillars a level asks for: none on the first
// level, one more per level after that
func PillarCount(level int) int {
	return max(0, min(level-1, maxPillars))
}

// Generate creates the cover of one level
func (g *BSPGenerator) Generate(level int, area world.Rect, keepClear []world.Vec2) []world.Rect {
	want := PillarCount(level)
	if want == 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(g.Seed*1000 + int64(level)))

	root := &bspNode{area: area}
	splitBSP(rng, root, minNodeSize)

	leaves := collectLeaves(root, nil)
	rng.Shuffle(len(leaves), func(i, j int) { leaves[i], leaves[j] = leaves[j], leaves[i] })

	var pillars []world.Rect
	used := make(map[world.Vec2]bool)
	for _, leaf := range leaves {
		if len(pillars) == want {
			break
		}
		c := snap(leaf.area.Min.Add(leaf.area.Max).Scale(0.5))
		if used[c] {
			continue
		}
		p := pillarAt(c)
		if !area.Contains(p.Min) || !area.Contains(p.Max) || crowds(c, keepClear) {
			continue
		}
		used[c] = true
		pillars = append(pillars, p)
	}
	return pillars
}

// splitBSP recursively splits a BSP node across its longer side
func splitBSP(rng *rand.Rand, node *bspNode, minSize float64) {
	w, h := node.area.Width(), node.area.Height()
	if w < minSize*2 && h < minSize*2 {
		return // Too small to split
	}

	a, b := node.area, node.area
	if w >= h {
		// Split vertically (left and right)
		x := node.area.Min.X + minSize + rng.Float64()*(w-minSize*2)
		a.Max.X, b.Min.X = x, x
	} else {
		// Split horizontally (top and bottom)
		y := node.area.Min.Y + minSize + rng.Float64()*(h-minSize*2)
		a.Max.Y, b.Min.Y = y, y
	}
	node.left = &bspNode{area: a}
	node.right = &bspNode{area: b}

	splitBSP(rng, node.left, minSize)
	splitBSP(rng, node.right, minSize)
}

// collectLeaves returns the leaf nodes in left-to-right order
func collectLeaves(node *bspNode, out []*bspNode) []*bspNode {
	if node.left == nil && node.right == nil {
		return append(out, node)
	}
	out = collectLeaves(node.left, out)
	return collectLeaves(node.right, out)
}

func snap(p world.Vec2) world.Vec2 {
	return world.V(
		math.Round(p.X/pillarSpacing)*pillarSpacing,
		math.Round(p.Y/pillarSpacing)*pillarSpacing,
	)
}

func pillarAt(c world.Vec2) world.Rect {
	return world.Rect{
		Min: world.V(c.X-pillarHalf, c.Y-pillarHalf),
		Max: world.V(c.X+pillarHalf, c.Y+pillarHalf),
	}
}

// crowds reports whether a pillar centred at c would come within clearance
// of any point
func crowds(c world.Vec2, points []world.Vec2) bool {
	reach := pillarHalf*math.Sqrt2 + clearance
	for _, p := range points {
		if c.Dist(p) < reach {
			return true
		}
	}
	return false
}
