package system

import (
	"math"

	"github.com/younwookim/duality/internal/domain/entity"
)

// forEachCoveredTile visits every tile cell the bounds overlap. The visit
// function returns false to stop early. Edges are exclusive: bounds flush
// against a cell do not cover it.
func forEachCoveredTile(m *entity.Tilemap, b entity.Bounds, visit func(t entity.Tile) bool) {
	startX := int(math.Floor(b.Min.X))
	endX := int(math.Ceil(b.Max.X)) - 1
	startY := int(math.Floor(b.Min.Y))
	endY := int(math.Ceil(b.Max.Y)) - 1

	for y := startY; y <= endY; y++ {
		for x := startX; x <= endX; x++ {
			if !visit(m.GetTile(x, y)) {
				return
			}
		}
	}
}

// isColliding reports whether the bounds overlap anything that blocks
// movement: the world edge, a solid tile, or a solid stage object
func (s *PhysicsSystem) isColliding(b entity.Bounds, world entity.WorldType) bool {
	if !s.stage.Tilemap.ContainsBounds(b) {
		return true
	}

	solid := false
	forEachCoveredTile(s.stage.Tilemap, b, func(t entity.Tile) bool {
		if t.IsSolid() {
			solid = true
			return false
		}
		return true
	})
	if solid {
		return true
	}

	return s.stage.CheckObjectCollision(b, world).Blocks()
}

// handleDirectionalCollisions probes each cardinal direction with the
// bounding box offset by one collision step, recording a per-direction
// classification. Probing one step ahead detects "about to touch" contact
// before the displacement happens, which is what feeds coyote time and the
// wall-jump buffers. Ground contact re-arms the air jump and the dash.
func (s *PhysicsSystem) handleDirectionalCollisions(p *entity.Player, world entity.WorldType) {
	for _, dir := range entity.AllDirections {
		p.Collisions[dir] = s.probeDirection(p, world, dir)
	}

	if p.Collisions[entity.DirDown].Blocks() {
		p.CoyoteTicks = s.cfg.Jump.CoyoteTicks
		p.CanJumpInAir = true
		p.Dash.Useable = true
	}

	if p.Collisions[entity.DirLeft] == entity.CollisionWall {
		p.WallJump.CollisionBuffer[entity.SideLeft] = s.cfg.WallJump.CollisionBufferTicks
	}
	if p.Collisions[entity.DirRight] == entity.CollisionWall {
		p.WallJump.CollisionBuffer[entity.SideRight] = s.cfg.WallJump.CollisionBufferTicks
	}
}

// probeDirection classifies what the actor touches one step toward dir.
// Out-of-bounds counts as a wall. A lethal tile facing the inverse of the
// probe direction (or lethal on all sides) kills and ends the probe.
func (s *PhysicsSystem) probeDirection(p *entity.Player, world entity.WorldType, dir entity.Direction) entity.CollisionType {
	b := p.Bounds().Offset(dir.Vec().Scale(s.cfg.Collision.Step))

	if !s.stage.Tilemap.ContainsBounds(b) {
		return entity.CollisionWall
	}

	result := entity.CollisionNone
	dead := false
	forEachCoveredTile(s.stage.Tilemap, b, func(t entity.Tile) bool {
		if t.IsLethal() && lethalFrom(t, dir) {
			dead = true
			return false
		}
		switch {
		case t.IsWall():
			result = entity.CollisionWall
		case t.IsSolid() && result < entity.CollisionSolid:
			result = entity.CollisionSolid
		}
		return true
	})
	if dead {
		p.Dead = true
		return entity.CollisionSolid
	}

	if c := s.stage.HandleObjectDirectionalCollision(b, p, world, dir); c > result {
		result = c
	}
	return result
}

// lethalFrom reports whether a lethal tile kills when probed toward dir.
// A spike kills the actor moving onto its points: probing Down onto spikes
// facing Up, probing Right into spikes facing Left, and so on.
func lethalFrom(t entity.Tile, dir entity.Direction) bool {
	if t == entity.TileSpikeAllSides {
		return true
	}
	facing, ok := t.Facing()
	return ok && facing == dir.Inverse()
}
