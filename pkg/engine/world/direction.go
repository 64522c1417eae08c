package world

// Direction represents a cardinal direction
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Vector returns the unit world vector for this direction (north is +Y)
func (d Direction) Vector() Vec2 {
	switch d {
	case North:
		return Vec2{0, 1}
	case East:
		return Vec2{1, 0}
	case South:
		return Vec2{0, -1}
	case West:
		return Vec2{-1, 0}
	default:
		return Zero
	}
}
