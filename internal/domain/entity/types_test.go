package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBounds_Overlaps(t *testing.T) {
	a := NewBounds(Vec2{X: 0, Y: 0}, Vec2{X: 2, Y: 2})

	tests := []struct {
		name     string
		other    Bounds
		expected bool
	}{
		{"clear overlap", NewBounds(Vec2{X: 1, Y: 1}, Vec2{X: 2, Y: 2}), true},
		{"contained", NewBounds(Vec2{X: 0.5, Y: 0.5}, Vec2{X: 1, Y: 1}), true},
		{"flush right edge", NewBounds(Vec2{X: 2, Y: 0}, Vec2{X: 1, Y: 1}), false},
		{"flush bottom edge", NewBounds(Vec2{X: 0, Y: 2}, Vec2{X: 1, Y: 1}), false},
		{"disjoint", NewBounds(Vec2{X: 5, Y: 5}, Vec2{X: 1, Y: 1}), false},
		{"corner touch", NewBounds(Vec2{X: 2, Y: 2}, Vec2{X: 1, Y: 1}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, a.Overlaps(tt.other))
			assert.Equal(t, tt.expected, tt.other.Overlaps(a), "overlap must be symmetric")
		})
	}
}

func TestBounds_Offset(t *testing.T) {
	b := NewBounds(Vec2{X: 1, Y: 2}, Vec2{X: 1, Y: 1})
	moved := b.Offset(Vec2{X: 0.5, Y: -0.5})

	assert.Equal(t, Vec2{X: 1.5, Y: 1.5}, moved.Min)
	assert.Equal(t, Vec2{X: 2.5, Y: 2.5}, moved.Max)
	assert.Equal(t, Vec2{X: 1, Y: 2}, b.Min, "original must be unchanged")
}

func TestDirection_Vec(t *testing.T) {
	assert.Equal(t, Vec2{X: -1, Y: 0}, DirLeft.Vec())
	assert.Equal(t, Vec2{X: 1, Y: 0}, DirRight.Vec())
	assert.Equal(t, Vec2{X: 0, Y: -1}, DirUp.Vec(), "up is negative Y")
	assert.Equal(t, Vec2{X: 0, Y: 1}, DirDown.Vec())
}

func TestDirection_Inverse(t *testing.T) {
	for _, dir := range AllDirections {
		assert.Equal(t, dir, dir.Inverse().Inverse(), "double inverse is identity")
		assert.NotEqual(t, dir, dir.Inverse())
	}
	assert.Equal(t, DirRight, DirLeft.Inverse())
	assert.Equal(t, DirDown, DirUp.Inverse())
}

func TestWorldType_Inverse(t *testing.T) {
	assert.Equal(t, WorldDark, WorldLight.Inverse())
	assert.Equal(t, WorldLight, WorldDark.Inverse())
}

func TestCollisionType_Blocks(t *testing.T) {
	assert.False(t, CollisionNone.Blocks())
	assert.False(t, CollisionNonSolid.Blocks())
	assert.True(t, CollisionSolid.Blocks())
	assert.True(t, CollisionWall.Blocks())
}

func TestCollisionType_Ordering(t *testing.T) {
	// Object collision results are merged by max, so the severity order
	// must hold
	assert.True(t, CollisionNone < CollisionNonSolid)
	assert.True(t, CollisionNonSolid < CollisionSolid)
	assert.True(t, CollisionSolid < CollisionWall)
}
