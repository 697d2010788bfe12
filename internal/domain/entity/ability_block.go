package entity

// AbilityBlock swaps the player's ability pair on contact
type AbilityBlock struct {
	Position  Vec2
	Size      Vec2
	Abilities AbilityPair
}

// NewAbilityBlock creates a block granting the given pair
func NewAbilityBlock(pos, size Vec2, abilities AbilityPair) *AbilityBlock {
	return &AbilityBlock{Position: pos, Size: size, Abilities: abilities}
}

// Bounds returns the block's box
func (a *AbilityBlock) Bounds() Bounds {
	return NewBounds(a.Position, a.Size)
}

// CollidesWith classifies an overlap with the given bounds. Blocks exist in
// both worlds and behave like plain solids.
func (a *AbilityBlock) CollidesWith(b Bounds, _ WorldType) CollisionType {
	if !a.Bounds().Overlaps(b) {
		return CollisionNone
	}
	return CollisionSolid
}

// OnDirectionalCollision grants the block's abilities
func (a *AbilityBlock) OnDirectionalCollision(p *Player, _ Direction) {
	p.SetAbilities(a.Abilities)
}
