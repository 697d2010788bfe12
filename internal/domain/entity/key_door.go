package entity

// Key is a collectible that opens the doors of its group. Keys never block
// movement; they are picked up on overlap.
type Key struct {
	Position  Vec2
	Size      Vec2
	Group     int
	Collected bool
}

// NewKey creates a key belonging to the given group
func NewKey(pos Vec2, group int) *Key {
	return &Key{Position: pos, Size: Vec2{X: 0.6, Y: 0.6}, Group: group}
}

// Bounds returns the key's box
func (k *Key) Bounds() Bounds {
	return NewBounds(k.Position, k.Size)
}

// CollidesWith classifies an overlap with the given bounds
func (k *Key) CollidesWith(b Bounds, _ WorldType) CollisionType {
	if k.Collected || !k.Bounds().Overlaps(b) {
		return CollisionNone
	}
	return CollisionNonSolid
}

// Door is solid until every key in its group has been collected
type Door struct {
	Position Vec2
	Size     Vec2
	Group    int
	Open     bool
}

// NewDoor creates a closed door bound to the given key group
func NewDoor(pos, size Vec2, group int) *Door {
	return &Door{Position: pos, Size: size, Group: group}
}

// Bounds returns the door's box
func (d *Door) Bounds() Bounds {
	return NewBounds(d.Position, d.Size)
}

// CollidesWith classifies an overlap with the given bounds
func (d *Door) CollidesWith(b Bounds, _ WorldType) CollisionType {
	if d.Open || !d.Bounds().Overlaps(b) {
		return CollisionNone
	}
	return CollisionSolid
}
