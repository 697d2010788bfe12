package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPlayer_Defaults(t *testing.T) {
	p := NewPlayer(Vec2{X: 3, Y: 4})

	assert.Equal(t, Vec2{X: 3, Y: 4}, p.Position)
	assert.Equal(t, Vec2{}, p.Velocity)
	assert.False(t, p.Dead)
	assert.False(t, p.TouchedGoal)
	assert.True(t, p.Dash.Useable, "dash starts armed")
	assert.Equal(t, DirRight, p.Dash.Direction)
	assert.True(t, p.FacingRight)
	assert.False(t, p.CanJumpInAir, "air jump arms on first ground contact")
}

func TestWallSide(t *testing.T) {
	assert.Equal(t, SideLeft, WallSide(DirLeft))
	assert.Equal(t, SideRight, WallSide(DirRight))

	assert.Panics(t, func() { WallSide(DirUp) })
	assert.Panics(t, func() { WallSide(DirDown) })
}

func TestDashState_DashReady(t *testing.T) {
	tests := []struct {
		name  string
		state DashState
		ready bool
	}{
		{"armed and idle", DashState{Useable: true}, true},
		{"mid-burst", DashState{TicksLeft: 1, Useable: true}, false},
		{"on cooldown", DashState{Cooldown: 1, Useable: true}, false},
		{"unarmed", DashState{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ready, tt.state.DashReady())
		})
	}
}

func TestPlayer_Reset(t *testing.T) {
	p := NewPlayer(Vec2{X: 1, Y: 1})

	p.Velocity = Vec2{X: 0.2, Y: -0.1}
	p.Dead = true
	p.TouchedGoal = true
	p.JumpTicks = 12
	p.CoyoteTicks = 3
	p.Dash = DashState{TicksLeft: 5, Cooldown: 10, Direction: DirLeft}
	p.WallJump.MoveLock[SideLeft] = 7
	p.CanJumpInAir = true
	p.FacingRight = false

	p.Reset(Vec2{X: 8, Y: 2})

	assert.Equal(t, Vec2{X: 8, Y: 2}, p.Position)
	assert.Equal(t, Vec2{}, p.Velocity)
	assert.False(t, p.Dead)
	assert.False(t, p.TouchedGoal)
	assert.Equal(t, 0, p.JumpTicks)
	assert.Equal(t, 0, p.CoyoteTicks)
	assert.Equal(t, DashState{Useable: true, Direction: DirRight}, p.Dash)
	assert.Equal(t, WallJumpState{}, p.WallJump)
	assert.False(t, p.CanJumpInAir)
	assert.True(t, p.FacingRight)
}

func TestPlayer_ResetKeepsAbilities(t *testing.T) {
	p := NewPlayer(Vec2{})
	p.SetAbilities(AbilityPair{Light: AbilityDash, Dark: AbilityGlider})

	p.Reset(Vec2{X: 1, Y: 1})

	assert.Equal(t, AbilityDash, p.ActiveAbility(WorldLight), "abilities survive respawn")
	assert.Equal(t, AbilityGlider, p.ActiveAbility(WorldDark))
}

func TestPlayer_ResetIdempotent(t *testing.T) {
	p := NewPlayer(Vec2{X: 2, Y: 3})
	first := *p

	p.Reset(Vec2{X: 2, Y: 3})
	assert.Equal(t, first, *p, "repeated reset is a no-op")
}

func TestPlayer_AddForce(t *testing.T) {
	p := NewPlayer(Vec2{})

	p.AddForce(Vec2{X: 0.04})
	p.AddForce(Vec2{Y: 0.0275})
	p.AddForce(Vec2{X: -0.01})

	assert.InDelta(t, 0.03, p.Acceleration.X, 1e-12, "contributions accumulate")
	assert.InDelta(t, 0.0275, p.Acceleration.Y, 1e-12)
}

func TestPlayer_Bounds(t *testing.T) {
	p := NewPlayer(Vec2{X: 5, Y: 7})

	b := p.Bounds()
	assert.Equal(t, Vec2{X: 5, Y: 7}, b.Min)
	assert.Equal(t, Vec2{X: 5.8, Y: 7.8}, b.Max)

	at := p.BoundsAt(Vec2{X: 0, Y: 0})
	assert.Equal(t, Vec2{X: 0.8, Y: 0.8}, at.Max)
	assert.Equal(t, Vec2{X: 5, Y: 7}, p.Position, "BoundsAt must not move the player")
}

func TestPlayer_Grounded(t *testing.T) {
	p := NewPlayer(Vec2{})
	assert.False(t, p.Grounded())

	p.Collisions[DirDown] = CollisionWall
	assert.True(t, p.Grounded())

	p.Collisions[DirDown] = CollisionNonSolid
	assert.False(t, p.Grounded(), "non-solid contact is not ground")
}

func TestPlayer_DecayTimers(t *testing.T) {
	p := NewPlayer(Vec2{})
	p.JumpBufferTicks = 2
	p.CoyoteTicks = 1
	p.JumpTicks = 3
	p.Dash.TicksLeft = 1
	p.Dash.Cooldown = 2
	p.WallJump.TicksLeft = 1
	p.WallJump.Cooldown = 1
	p.WallJump.MoveLock[SideRight] = 1
	p.WallJump.CollisionBuffer[SideLeft] = 2
	p.WallJump.InputBuffer[SideLeft] = 1

	p.DecayTimers()

	assert.Equal(t, 1, p.JumpBufferTicks)
	assert.Equal(t, 0, p.CoyoteTicks)
	assert.Equal(t, 2, p.JumpTicks)
	assert.Equal(t, 1, p.Dash.TicksLeft, "burst counter is consumed by the dash, not decayed")
	assert.Equal(t, 1, p.Dash.Cooldown)
	assert.Equal(t, 0, p.WallJump.TicksLeft)
	assert.Equal(t, 0, p.WallJump.Cooldown)
	assert.Equal(t, 0, p.WallJump.MoveLock[SideRight])
	assert.Equal(t, 1, p.WallJump.CollisionBuffer[SideLeft])
	assert.Equal(t, 0, p.WallJump.InputBuffer[SideLeft])

	// Expired timers stay at zero
	for i := 0; i < 10; i++ {
		p.DecayTimers()
	}
	assert.Equal(t, 0, p.JumpBufferTicks)
	assert.Equal(t, 0, p.CoyoteTicks)
	assert.Equal(t, 0, p.JumpTicks)
}
