package system

import (
	"math"

	"github.com/younwookim/duality/internal/domain/entity"
	"github.com/younwookim/duality/internal/infrastructure/config"
)

// PhysicsSystem runs the per-tick player simulation: force accumulation,
// the ability state machine, collision-interrupted movement and the input
// timing buffers. One Tick is a single atomic unit of work; nothing else
// mutates the player while it runs.
type PhysicsSystem struct {
	cfg   *config.PhysicsConfig
	stage *entity.Stage
}

// NewPhysicsSystem creates a physics system for the given stage
func NewPhysicsSystem(cfg *config.PhysicsConfig, stage *entity.Stage) *PhysicsSystem {
	return &PhysicsSystem{
		cfg:   cfg,
		stage: stage,
	}
}

// SetConfig swaps the tuning constants. Called between ticks only
// (live-reload); constants never change mid-tick.
func (s *PhysicsSystem) SetConfig(cfg *config.PhysicsConfig) {
	s.cfg = cfg
}

// SetStage points the system at a new stage (level transition)
func (s *PhysicsSystem) SetStage(stage *entity.Stage) {
	s.stage = stage
}

// Stage returns the current stage
func (s *PhysicsSystem) Stage() *entity.Stage {
	return s.stage
}

// Tick advances the player by one simulation step. The per-tick order is
// fixed: intent force, gravity, directional probes, jump resolution, timer
// decay, ability effects, integration, stepped move, accumulator clear.
func (s *PhysicsSystem) Tick(p *entity.Player, in *Input, world entity.WorldType) {
	ability := p.ActiveAbility(world)

	s.applyMovementForce(p, in)
	s.applyGravity(p, in, ability)
	s.handleDirectionalCollisions(p, world)
	s.resolveJumps(p, in, ability)
	p.DecayTimers()
	s.applyAbilityEffects(p, in, ability)
	s.integrate(p, in, ability)
	s.moveUntilCollision(p, world)
	s.collectOverlaps(p, world)

	p.Acceleration = entity.Vec2{}
	p.BaseVelocity = entity.Vec2{}
}

// applyMovementForce turns horizontal input into an intent force. The
// |input|^exponent curve makes small deflections contribute almost nothing.
// Wall-jump move-locks suppress force back toward the wall just jumped off.
func (s *PhysicsSystem) applyMovementForce(p *entity.Player, in *Input) {
	h := in.HorizontalAxis()
	if h == 0 {
		return
	}

	// Committed dash direction and facing follow the last nonzero input
	if h > 0 {
		p.Dash.Direction = entity.DirRight
		p.FacingRight = true
	} else {
		p.Dash.Direction = entity.DirLeft
		p.FacingRight = false
	}

	if h < 0 && p.WallJump.MoveLock[entity.SideLeft] > 0 {
		return
	}
	if h > 0 && p.WallJump.MoveLock[entity.SideRight] > 0 {
		return
	}

	force := s.cfg.Movement.MoveForce * math.Pow(math.Abs(h), s.cfg.Movement.InputExponent)
	p.AddForce(entity.Vec2{X: math.Copysign(force, h)})
}

// applyGravity adds the downward force, swapped for the glider descent
// constant while gliding. Dashes override velocity entirely, so gravity is
// skipped while one is active.
func (s *PhysicsSystem) applyGravity(p *entity.Player, in *Input, ability entity.Ability) {
	if p.Dash.Dashing() {
		return
	}

	g := s.cfg.Gravity.Fall
	if ability == entity.AbilityGlider && in.AbilityPressed() && p.Velocity.Y > 0 {
		g = s.cfg.Gravity.Glider
	}
	p.AddForce(entity.Vec2{Y: g})
}

// resolveJumps processes the jump buffer: a regular (ground/coyote/double)
// jump takes priority; a wall jump is only attempted when the regular-jump
// precondition fails. An active dash suppresses the regular jump but not
// the wall jump.
func (s *PhysicsSystem) resolveJumps(p *entity.Player, in *Input, ability entity.Ability) {
	if in.Button(ButtonJump).PressedFirstFrame() {
		p.JumpBufferTicks = s.cfg.Jump.BufferTicks
	}

	s.armWallInputBuffers(p, in)

	if p.JumpBufferTicks == 0 {
		return
	}

	grounded := p.Grounded() || p.CoyoteTicks > 0
	airCharge := ability == entity.AbilityDoubleJump && p.CanJumpInAir

	if !p.Dash.Dashing() && (grounded || airCharge) {
		if !grounded {
			p.CanJumpInAir = false
		}
		p.JumpTicks = s.cfg.Jump.MaxJumpTicks
		p.JumpBufferTicks = 0
		p.CoyoteTicks = 0
		return
	}

	if ability != entity.AbilityWallJump || p.WallJump.Cooldown > 0 {
		return
	}
	for _, side := range [2]entity.Side{entity.SideLeft, entity.SideRight} {
		if p.WallJump.InputBuffer[side] > 0 {
			s.fireWallJump(p, side)
			return
		}
	}
}

// armWallInputBuffers opens the early-input window for a side while its
// wall-contact window is active and the player pushes toward that wall
func (s *PhysicsSystem) armWallInputBuffers(p *entity.Player, in *Input) {
	h := in.HorizontalAxis()
	if h < 0 && p.WallJump.CollisionBuffer[entity.SideLeft] > 0 {
		p.WallJump.InputBuffer[entity.SideLeft] = s.cfg.WallJump.InputBufferTicks
	}
	if h > 0 && p.WallJump.CollisionBuffer[entity.SideRight] > 0 {
		p.WallJump.InputBuffer[entity.SideRight] = s.cfg.WallJump.InputBufferTicks
	}
}

// fireWallJump launches the player away from the wall on the given side:
// a diagonal impulse, a decaying sustain push, and a move-lock toward the
// wall. A fired wall jump disarms any dash burst so the two cannot stack.
func (s *PhysicsSystem) fireWallJump(p *entity.Player, wallSide entity.Side) {
	away := entity.DirRight
	if wallSide == entity.SideRight {
		away = entity.DirLeft
	}
	// The committed direction must resolve back to a side; WallSide panics
	// on anything else
	lockSide := entity.WallSide(away.Inverse())

	p.WallJump.Direction = away
	p.WallJump.TicksLeft = s.cfg.WallJump.Ticks
	p.WallJump.Cooldown = s.cfg.WallJump.CooldownTicks
	p.WallJump.MoveLock[lockSide] = s.cfg.WallJump.MoveLockTicks
	p.WallJump.ClearBuffers()
	p.JumpBufferTicks = 0

	p.Dash.TicksLeft = 0
	p.Dash.Useable = true

	sign := away.Vec().X
	p.Velocity.X = sign * s.cfg.WallJump.ForceX
	p.Velocity.Y = -s.cfg.WallJump.ForceY
}

// applyAbilityEffects runs the active ability's continuous behavior plus
// the jump-hold and wall-jump sustain forces
func (s *PhysicsSystem) applyAbilityEffects(p *entity.Player, in *Input, ability entity.Ability) {
	// Jump hold: an exponentially decaying upward force while the button
	// stays down; releasing cancels the remainder (variable jump height)
	if p.JumpTicks > 0 {
		if in.Button(ButtonJump).Pressed() {
			age := s.cfg.Jump.MaxJumpTicks - p.JumpTicks
			force := s.cfg.Jump.Force * math.Pow(s.cfg.Jump.Falloff, float64(age))
			p.AddForce(entity.Vec2{Y: -force})
		} else {
			p.JumpTicks = 0
		}
	}

	// Wall-jump sustain: same decay shape, diagonal, not release-gated
	if p.WallJump.TicksLeft > 0 {
		sign := p.WallJump.Direction.Vec().X
		age := s.cfg.WallJump.Ticks - p.WallJump.TicksLeft
		decay := math.Pow(s.cfg.Jump.Falloff, float64(age))
		p.AddForce(entity.Vec2{
			X: sign * s.cfg.WallJump.ForceX * decay,
			Y: -s.cfg.WallJump.ForceY * decay,
		})
	}

	if ability == entity.AbilityDash && in.AbilityPressedFirstFrame() && p.Dash.DashReady() {
		p.Dash.TicksLeft = s.cfg.Dash.Ticks
		p.Dash.Cooldown = s.cfg.Dash.CooldownTicks
		p.Dash.Useable = false
	}
}

// integrate folds accumulated forces into velocity and applies per-axis
// drag. External pushes blend in proportional to the non-drag fraction so
// platform velocity is neither absorbed nor doubled. An active dash
// overrides velocity outright with its quarter-cosine ease-out.
func (s *PhysicsSystem) integrate(p *entity.Player, in *Input, ability entity.Ability) {
	if p.Dash.Dashing() {
		ease := math.Cos(math.Pi / 2 * (1 - float64(p.Dash.TicksLeft)/float64(s.cfg.Dash.Ticks)))
		p.Velocity = entity.Vec2{X: p.Dash.Direction.Vec().X * s.cfg.Dash.Force * ease}
		// The burst counter is consumed here, not in DecayTimers: the dash is
		// armed after the decay phase, so decaying it there would stretch a
		// 15-tick burst to 16.
		p.Dash.TicksLeft--
		return
	}

	p.Velocity = p.Velocity.Add(p.Acceleration)

	dragX := s.cfg.Movement.DragX
	dragY := s.cfg.Movement.DragY
	if ability == entity.AbilityWallJump && s.wallSticking(p, in) {
		dragY *= s.cfg.WallJump.StickDragFactor
	}

	p.Velocity.X *= dragX
	p.Velocity.Y *= dragY
	p.Velocity.X += (1 - dragX) * p.BaseVelocity.X
	p.Velocity.Y += (1 - dragY) * p.BaseVelocity.Y
}

// wallSticking reports whether the player hangs on a wall: recent wall
// contact on a side with input still pushed toward it
func (s *PhysicsSystem) wallSticking(p *entity.Player, in *Input) bool {
	h := in.HorizontalAxis()
	if h < 0 && p.WallJump.CollisionBuffer[entity.SideLeft] > 0 {
		return true
	}
	if h > 0 && p.WallJump.CollisionBuffer[entity.SideRight] > 0 {
		return true
	}
	return false
}

// moveUntilCollision advances the position in fixed sub-steps per axis,
// X then Y interleaved, reverting an axis and zeroing its velocity the
// moment a step would collide. Small steps keep the actor from tunneling
// through one-tile walls at any speed the tuning can produce.
func (s *PhysicsSystem) moveUntilCollision(p *entity.Player, world entity.WorldType) {
	step := s.cfg.Collision.Step
	energyX := math.Abs(p.Velocity.X)
	energyY := math.Abs(p.Velocity.Y)
	signX := math.Copysign(1, p.Velocity.X)
	signY := math.Copysign(1, p.Velocity.Y)

	for energyX > 0 || energyY > 0 {
		if energyX > 0 {
			sx := math.Min(step, energyX)
			next := p.Position
			next.X += signX * sx
			if s.isColliding(p.BoundsAt(next), world) {
				energyX = 0
				p.Velocity.X = 0
			} else {
				p.Position = next
				energyX -= sx
			}
		}
		if energyY > 0 {
			sy := math.Min(step, energyY)
			next := p.Position
			next.Y += signY * sy
			if s.isColliding(p.BoundsAt(next), world) {
				energyY = 0
				p.Velocity.Y = 0
			} else {
				p.Position = next
				energyY -= sy
			}
		}
	}
}

// collectOverlaps runs post-move overlap effects: key pickup and goal
// detection
func (s *PhysicsSystem) collectOverlaps(p *entity.Player, world entity.WorldType) {
	b := p.Bounds()
	s.stage.CollectKeys(b, world)

	forEachCoveredTile(s.stage.Tilemap, b, func(t entity.Tile) bool {
		if t.IsGoal() {
			p.TouchedGoal = true
			return false
		}
		return true
	})
}
