package config

// PhysicsConfig is the root config for physics.yaml. All force and velocity
// values are in world units per tick; all durations are ticks.
type PhysicsConfig struct {
	Movement  MovementConfig  `yaml:"movement"`
	Gravity   GravityConfig   `yaml:"gravity"`
	Collision CollisionConfig `yaml:"collision"`
	Jump      JumpConfig      `yaml:"jump"`
	Dash      DashConfig      `yaml:"dash"`
	WallJump  WallJumpConfig  `yaml:"wallJump"`
	Tick      TickConfig      `yaml:"tick"`
	Display   DisplayConfig   `yaml:"display"`
}

type MovementConfig struct {
	// MoveForce scales horizontal input; the response curve is
	// MoveForce * |input|^InputExponent, signed by input direction
	MoveForce     float64 `yaml:"moveForce"`
	InputExponent float64 `yaml:"inputExponent"`
	DragX         float64 `yaml:"dragX"`
	DragY         float64 `yaml:"dragY"`
}

type GravityConfig struct {
	Fall float64 `yaml:"fall"`
	// Glider replaces Fall while gliding downward
	Glider float64 `yaml:"glider"`
}

type CollisionConfig struct {
	// Step is the sub-step length for collision-interrupted movement
	Step float64 `yaml:"step"`
}

type JumpConfig struct {
	BufferTicks  int     `yaml:"bufferTicks"`
	CoyoteTicks  int     `yaml:"coyoteTicks"`
	MaxJumpTicks int     `yaml:"maxJumpTicks"`
	Force        float64 `yaml:"force"`
	// Falloff is the per-tick decay of the hold force
	Falloff float64 `yaml:"falloff"`
}

type DashConfig struct {
	Ticks         int     `yaml:"ticks"`
	CooldownTicks int     `yaml:"cooldownTicks"`
	Force         float64 `yaml:"force"`
}

type WallJumpConfig struct {
	CollisionBufferTicks int     `yaml:"collisionBufferTicks"`
	InputBufferTicks     int     `yaml:"inputBufferTicks"`
	MoveLockTicks        int     `yaml:"moveLockTicks"`
	Ticks                int     `yaml:"ticks"`
	CooldownTicks        int     `yaml:"cooldownTicks"`
	ForceX               float64 `yaml:"forceX"`
	ForceY               float64 `yaml:"forceY"`
	// StickDragFactor multiplies DragY while pressed against a wall
	StickDragFactor float64 `yaml:"stickDragFactor"`
}

type TickConfig struct {
	// Rate is the simulation frequency in Hz
	Rate int `yaml:"rate"`
	// MaxCatchUp caps catch-up ticks per rendered frame
	MaxCatchUp int `yaml:"maxCatchUp"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight"`
	// TileSize is the rendered size of one world unit in pixels
	TileSize int `yaml:"tileSize"`
}

// DefaultPhysics returns the tuned baseline. The simulation behaves
// identically with no asset files present.
func DefaultPhysics() *PhysicsConfig {
	return &PhysicsConfig{
		Movement: MovementConfig{
			MoveForce:     0.04,
			InputExponent: 5,
			DragX:         0.7,
			DragY:         0.9,
		},
		Gravity: GravityConfig{
			Fall:   0.0275,
			Glider: 0.003,
		},
		Collision: CollisionConfig{
			Step: 0.0025,
		},
		Jump: JumpConfig{
			BufferTicks:  6,
			CoyoteTicks:  5,
			MaxJumpTicks: 30,
			Force:        0.09,
			Falloff:      0.88,
		},
		Dash: DashConfig{
			Ticks:         15,
			CooldownTicks: 30,
			Force:         0.35,
		},
		WallJump: WallJumpConfig{
			CollisionBufferTicks: 5,
			InputBufferTicks:     7,
			MoveLockTicks:        15,
			Ticks:                30,
			CooldownTicks:        10,
			ForceX:               0.065,
			ForceY:               0.09,
			StickDragFactor:      0.3,
		},
		Tick: TickConfig{
			Rate:       100,
			MaxCatchUp: 5,
		},
		Display: DisplayConfig{
			ScreenWidth:  960,
			ScreenHeight: 540,
			TileSize:     20,
		},
	}
}
