package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func createTestStage() *Stage {
	m := NewTilemap(10, 10)
	m.SetTile(1, 1, TileSpawnPoint)
	return NewStage("test", m)
}

func TestNewStage_SpawnFromTilemap(t *testing.T) {
	s := createTestStage()
	assert.Equal(t, Vec2{X: 1, Y: 1}, s.Spawn)
}

func TestStage_KeysAndDoors(t *testing.T) {
	s := createTestStage()
	s.AddKey(NewKey(Vec2{X: 2, Y: 2}, 1))
	s.AddKey(NewKey(Vec2{X: 4, Y: 2}, 1))
	door := NewDoor(Vec2{X: 6, Y: 2}, Vec2{X: 1, Y: 2}, 1)
	s.Doors = append(s.Doors, door)

	assert.False(t, s.AllKeysCollected(1))
	assert.Equal(t, 0, s.CollectedKeys(1))

	// Pick up the first key
	s.CollectKeys(NewBounds(Vec2{X: 2, Y: 2}, Vec2{X: 1, Y: 1}), WorldLight)
	assert.Equal(t, 1, s.CollectedKeys(1))
	assert.False(t, s.AllKeysCollected(1))

	s.TickObjects()
	assert.False(t, door.Open, "door stays shut until the group is complete")

	// Pick up the second
	s.CollectKeys(NewBounds(Vec2{X: 4, Y: 2}, Vec2{X: 1, Y: 1}), WorldLight)
	assert.True(t, s.AllKeysCollected(1))

	s.TickObjects()
	assert.True(t, door.Open)
}

func TestStage_AllKeysCollected_EmptyGroup(t *testing.T) {
	s := createTestStage()
	assert.True(t, s.AllKeysCollected(7), "groups without keys count as complete")
}

func TestStage_CollectKeys_IgnoresCollected(t *testing.T) {
	s := createTestStage()
	k := NewKey(Vec2{X: 2, Y: 2}, 1)
	s.AddKey(k)

	b := NewBounds(Vec2{X: 2, Y: 2}, Vec2{X: 1, Y: 1})
	s.CollectKeys(b, WorldLight)
	assert.True(t, k.Collected)
	assert.Equal(t, 1, s.CollectedKeys(1))

	s.CollectKeys(b, WorldLight)
	assert.Equal(t, 1, s.CollectedKeys(1), "keys collect once")
}

func TestStage_CheckObjectCollision_TakesStrongest(t *testing.T) {
	s := createTestStage()
	s.AddKey(NewKey(Vec2{X: 2, Y: 2}, 1))
	s.Doors = append(s.Doors, NewDoor(Vec2{X: 2, Y: 2}, Vec2{X: 1, Y: 1}, 1))
	s.Platforms = append(s.Platforms, NewPlatform(Vec2{X: 2, Y: 2}, Vec2{X: 1, Y: 1}, Vec2{}, 0))

	b := NewBounds(Vec2{X: 2.2, Y: 2.2}, Vec2{X: 0.5, Y: 0.5})
	assert.Equal(t, CollisionWall, s.CheckObjectCollision(b, WorldLight),
		"wall-classified platform beats the solid door")
}

func TestStage_CheckObjectCollision_KeysNeverQueried(t *testing.T) {
	s := createTestStage()
	s.AddKey(NewKey(Vec2{X: 2, Y: 2}, 1))

	b := NewBounds(Vec2{X: 2, Y: 2}, Vec2{X: 1, Y: 1})
	assert.Equal(t, CollisionNone, s.CheckObjectCollision(b, WorldLight),
		"keys never block movement")
}

func TestStage_HandleObjectDirectionalCollision(t *testing.T) {
	s := createTestStage()
	pair := AbilityPair{Light: AbilityDash, Dark: AbilityWallJump}
	s.AbilityBlocks = append(s.AbilityBlocks, NewAbilityBlock(Vec2{X: 3, Y: 3}, Vec2{X: 1, Y: 1}, pair))

	p := NewPlayer(Vec2{})
	b := NewBounds(Vec2{X: 3.1, Y: 3.1}, Vec2{X: 0.5, Y: 0.5})
	c := s.HandleObjectDirectionalCollision(b, p, WorldLight, DirDown)

	assert.Equal(t, CollisionSolid, c)
	assert.Equal(t, pair, p.Abilities, "touching the block grants its pair")
}
