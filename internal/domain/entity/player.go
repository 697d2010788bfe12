package entity

// PlayerSize is the actor's bounding box in world units
var PlayerSize = Vec2{X: 0.8, Y: 0.8}

// DashState tracks the dash burst, its cooldown and its committed direction.
// The invariant for re-triggering is DashReady: the burst and the cooldown
// must both be finished and the dash must have been re-armed.
type DashState struct {
	TicksLeft int
	Cooldown  int
	// Useable is re-armed on ground contact or wall-jump activity
	Useable bool
	// Direction follows the last nonzero horizontal input
	Direction Direction
}

// DashReady reports whether a new dash may start
func (d *DashState) DashReady() bool {
	return d.TicksLeft == 0 && d.Cooldown == 0 && d.Useable
}

// Dashing reports whether a dash burst is in progress
func (d *DashState) Dashing() bool {
	return d.TicksLeft > 0
}

// Side indexes the per-side wall-jump buffers
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// WallSide converts a horizontal direction into a buffer index.
// Panics on Up/Down: a wall-jump direction must always resolve to a side,
// anything else is an upstream bug that must not silently pick one.
func WallSide(d Direction) Side {
	switch d {
	case DirLeft:
		return SideLeft
	case DirRight:
		return SideRight
	}
	panic("entity: wall side must be Left or Right, got " + d.String())
}

// WallJumpState tracks wall-jump activity and its tolerance buffers.
// All counters decrement once per tick toward zero.
type WallJumpState struct {
	// TicksLeft counts down the post-jump sustain push
	TicksLeft int
	Cooldown  int
	// Direction is the committed jump-away direction, valid while TicksLeft > 0
	Direction Direction
	// MoveLock suppresses horizontal input back toward the wall, per side
	MoveLock [2]int
	// CollisionBuffer holds the recent-wall-contact window, per side
	CollisionBuffer [2]int
	// InputBuffer holds the early-directional-input window, per side
	InputBuffer [2]int
}

// ClearBuffers resets both wall proximity/input buffer pairs.
// Called when a wall jump fires so one contact cannot arm two jumps.
func (w *WallJumpState) ClearBuffers() {
	w.CollisionBuffer[SideLeft] = 0
	w.CollisionBuffer[SideRight] = 0
	w.InputBuffer[SideLeft] = 0
	w.InputBuffer[SideRight] = 0
}

// Player is the simulated actor. It is owned exclusively by the simulation:
// only PhysicsSystem ticks and Reset calls mutate it.
type Player struct {
	Position     Vec2
	Velocity     Vec2
	Acceleration Vec2
	// BaseVelocity carries external pushes (moving platforms) for one tick
	BaseVelocity Vec2

	Dead        bool
	TouchedGoal bool

	Abilities AbilityPair

	Dash     DashState
	WallJump WallJumpState

	// Per-direction collision classification from this tick's probes
	Collisions [4]CollisionType

	// Countdown timers, decremented once per tick
	JumpBufferTicks int
	CoyoteTicks     int
	JumpTicks       int

	// CanJumpInAir is the double-jump charge, re-armed on ground contact
	CanJumpInAir bool

	FacingRight bool
}

// NewPlayer creates a player at the given position with default state
func NewPlayer(pos Vec2) *Player {
	p := &Player{}
	p.Reset(pos)
	return p
}

// AddForce accumulates a single-tick force contribution. Contributions are
// additive and order-independent within a tick.
func (p *Player) AddForce(f Vec2) {
	p.Acceleration = p.Acceleration.Add(f)
}

// Bounds returns the actor's current bounding box
func (p *Player) Bounds() Bounds {
	return NewBounds(p.Position, PlayerSize)
}

// BoundsAt returns the actor's bounding box at an arbitrary position
func (p *Player) BoundsAt(pos Vec2) Bounds {
	return NewBounds(pos, PlayerSize)
}

// ActiveAbility returns the ability selected by the given world type
func (p *Player) ActiveAbility(world WorldType) Ability {
	return p.Abilities.Current(world)
}

// SetAbility replaces one world's ability slot
func (p *Player) SetAbility(world WorldType, a Ability) {
	p.Abilities.Set(world, a)
}

// SetAbilities replaces both ability slots at once (ability blocks)
func (p *Player) SetAbilities(pair AbilityPair) {
	p.Abilities = pair
}

// Grounded reports whether the ground probe hit this tick
func (p *Player) Grounded() bool {
	return p.Collisions[DirDown].Blocks()
}

// Reset reinitializes the actor at pos: velocity and accumulators zeroed,
// death flag cleared, dash re-armed, wall-jump state and timers cleared.
// Called on spawn, death and level transitions. Idempotent.
func (p *Player) Reset(pos Vec2) {
	p.Position = pos
	p.Velocity = Vec2{}
	p.Acceleration = Vec2{}
	p.BaseVelocity = Vec2{}
	p.Dead = false
	p.TouchedGoal = false
	p.Dash = DashState{Useable: true, Direction: DirRight}
	p.WallJump = WallJumpState{}
	p.Collisions = [4]CollisionType{}
	p.JumpBufferTicks = 0
	p.CoyoteTicks = 0
	p.JumpTicks = 0
	p.CanJumpInAir = false
	p.FacingRight = true
}

// DecayTimers decrements every countdown once, floored at zero.
// Dash.TicksLeft is not decayed here: the burst counter is consumed by the
// integrator on each tick it overrides velocity.
func (p *Player) DecayTimers() {
	decrement(&p.JumpBufferTicks)
	decrement(&p.CoyoteTicks)
	decrement(&p.JumpTicks)
	decrement(&p.WallJump.TicksLeft)
	decrement(&p.WallJump.Cooldown)
	decrement(&p.Dash.Cooldown)
	for side := 0; side < 2; side++ {
		decrement(&p.WallJump.MoveLock[side])
		decrement(&p.WallJump.CollisionBuffer[side])
		decrement(&p.WallJump.InputBuffer[side])
	}
}

func decrement(ticks *int) {
	if *ticks > 0 {
		*ticks--
	}
}
