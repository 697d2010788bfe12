package entity

import "math"

// Platform is a moving solid that shuttles between its spawn position and a
// goal offset at fixed speed. Platforms are Wall-classified so the player can
// wall-jump off their sides, and they push the player along while stood on.
type Platform struct {
	Position Vec2
	Size     Vec2
	Speed    float64

	// Spiky marks lethal faces, indexed by Direction
	Spiky [4]bool

	// World restricts the platform to one world when restricted is true
	World      WorldType
	Restricted bool

	currentGoal Vec2
	nextGoal    Vec2
	lastDelta   Vec2
}

// NewPlatform creates a platform at pos that travels to pos+goal and back
func NewPlatform(pos, size, goal Vec2, speed float64) *Platform {
	return &Platform{
		Position:    pos,
		Size:        size,
		Speed:       speed,
		currentGoal: pos.Add(goal),
		nextGoal:    pos,
	}
}

// RestrictTo limits the platform to a single world
func (pl *Platform) RestrictTo(world WorldType) {
	pl.World = world
	pl.Restricted = true
}

// ActiveIn reports whether the platform participates in the given world
func (pl *Platform) ActiveIn(world WorldType) bool {
	return !pl.Restricted || pl.World == world
}

// Bounds returns the platform's box
func (pl *Platform) Bounds() Bounds {
	return NewBounds(pl.Position, pl.Size)
}

// Delta returns the position change of the last tick
func (pl *Platform) Delta() Vec2 {
	return pl.lastDelta
}

// Tick advances the platform toward its current goal, swapping goals on
// arrival. The per-tick delta is recorded so riders can inherit it.
func (pl *Platform) Tick() {
	dx := pl.currentGoal.X - pl.Position.X
	dy := pl.currentGoal.Y - pl.Position.Y
	dist := math.Hypot(dx, dy)

	prev := pl.Position
	if dist <= pl.Speed {
		pl.Position = pl.currentGoal
		pl.currentGoal, pl.nextGoal = pl.nextGoal, pl.currentGoal
	} else {
		pl.Position.X += dx / dist * pl.Speed
		pl.Position.Y += dy / dist * pl.Speed
	}
	pl.lastDelta = Vec2{X: pl.Position.X - prev.X, Y: pl.Position.Y - prev.Y}
}

// CollidesWith classifies an overlap with the given bounds
func (pl *Platform) CollidesWith(b Bounds, world WorldType) CollisionType {
	if !pl.ActiveIn(world) {
		return CollisionNone
	}
	if !pl.Bounds().Overlaps(b) {
		return CollisionNone
	}
	return CollisionWall
}

// OnDirectionalCollision makes riders inherit the platform's motion and
// kills on spiky faces. The probe direction is from the player's view, so
// the face it touches is the inverse.
func (pl *Platform) OnDirectionalCollision(p *Player, dir Direction) {
	if pl.Spiky[dir.Inverse()] {
		p.Dead = true
		return
	}
	if dir == DirDown {
		p.BaseVelocity = pl.lastDelta
	}
}
