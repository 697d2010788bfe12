package entity

// Vec2 is a 2D vector in world units (1.0 = one tile). Y grows downward.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Bounds is an axis-aligned box in world units
type Bounds struct {
	Min, Max Vec2
}

// NewBounds creates bounds from a top-left position and a size
func NewBounds(pos, size Vec2) Bounds {
	return Bounds{Min: pos, Max: pos.Add(size)}
}

// Overlaps reports whether the two boxes intersect (exclusive edges)
func (b Bounds) Overlaps(o Bounds) bool {
	return b.Min.X < o.Max.X && b.Max.X > o.Min.X &&
		b.Min.Y < o.Max.Y && b.Max.Y > o.Min.Y
}

// Offset returns the bounds translated by d
func (b Bounds) Offset(d Vec2) Bounds {
	return Bounds{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

// Direction is one of the four cardinal directions
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// AllDirections lists the four cardinal directions in probe order
var AllDirections = [4]Direction{DirLeft, DirRight, DirUp, DirDown}

// Vec returns the unit vector for the direction (up is -Y)
func (d Direction) Vec() Vec2 {
	switch d {
	case DirLeft:
		return Vec2{-1, 0}
	case DirRight:
		return Vec2{1, 0}
	case DirUp:
		return Vec2{0, -1}
	default:
		return Vec2{0, 1}
	}
}

// Inverse returns the opposite direction
func (d Direction) Inverse() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}

// String returns the direction name
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	case DirUp:
		return "Up"
	default:
		return "Down"
	}
}

// WorldType selects which of the two complementary worlds is active
type WorldType int

const (
	WorldLight WorldType = iota
	WorldDark
)

// Inverse returns the other world
func (w WorldType) Inverse() WorldType {
	if w == WorldLight {
		return WorldDark
	}
	return WorldLight
}

// String returns the world name
func (w WorldType) String() string {
	if w == WorldLight {
		return "Light"
	}
	return "Dark"
}

// CollisionType classifies what a bounds probe ran into
type CollisionType int

const (
	CollisionNone CollisionType = iota
	// CollisionNonSolid overlaps without blocking movement (keys)
	CollisionNonSolid
	// CollisionSolid blocks movement but cannot be wall-jumped off (doors)
	CollisionSolid
	// CollisionWall blocks movement and supports wall interactions
	CollisionWall
)

// Blocks reports whether the collision stops movement
func (c CollisionType) Blocks() bool {
	return c == CollisionSolid || c == CollisionWall
}
