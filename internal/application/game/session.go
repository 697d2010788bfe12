package game

import (
	"fmt"

	"github.com/younwookim/duality/internal/application/system"
	"github.com/younwookim/duality/internal/domain/entity"
	"github.com/younwookim/duality/internal/infrastructure/config"
)

// Session owns one run of the simulation: the player, the current stage,
// the active world, and the physics system driving them. It advances one
// tick at a time and handles stage transitions on goal contact.
type Session struct {
	loader  *config.Loader
	physics *system.PhysicsSystem
	player  *entity.Player

	stageNames []string
	stageIndex int
	world      entity.WorldType
}

// NewSession loads the named stage and prepares a session starting in the
// Light world. The stage must appear in the loader's main stage list; other
// stages can still be started but goal contact then wraps to the first main
// stage.
func NewSession(loader *config.Loader, cfg *config.PhysicsConfig, stageName string) (*Session, error) {
	names, err := loader.MainStageNames()
	if err != nil {
		return nil, fmt.Errorf("listing stages: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no main stages found")
	}

	index := 0
	for i, n := range names {
		if n == stageName {
			index = i
			break
		}
	}

	s := &Session{
		loader:     loader,
		physics:    system.NewPhysicsSystem(cfg, nil),
		stageNames: names,
		stageIndex: index,
		world:      entity.WorldLight,
	}
	if err := s.loadStage(stageName); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) loadStage(name string) error {
	stageCfg, err := s.loader.LoadStage(name)
	if err != nil {
		return fmt.Errorf("loading stage %q: %w", name, err)
	}
	stage, err := system.LoadStage(stageCfg)
	if err != nil {
		return fmt.Errorf("building stage %q: %w", name, err)
	}

	s.physics.SetStage(stage)
	if s.player == nil {
		s.player = entity.NewPlayer(stage.Spawn)
	} else {
		s.player.Reset(stage.Spawn)
	}
	s.world = entity.WorldLight
	return nil
}

// Tick advances the simulation by one fixed step using the given input.
func (s *Session) Tick(in *system.Input) error {
	stage := s.physics.Stage()

	// World switching is refused while the player would overlap a blocking
	// object in the destination world.
	if in.SwitchPressedFirstFrame() {
		if !stage.CheckObjectCollision(s.player.Bounds(), s.world.Inverse()).Blocks() {
			s.world = s.world.Inverse()
		}
	}

	s.physics.Tick(s.player, in, s.world)
	stage.TickObjects()

	if s.player.TouchedGoal {
		if err := s.advanceStage(); err != nil {
			return err
		}
		return nil
	}
	if s.player.Dead {
		s.player.Reset(stage.Spawn)
	}
	return nil
}

func (s *Session) advanceStage() error {
	s.stageIndex = (s.stageIndex + 1) % len(s.stageNames)
	return s.loadStage(s.stageNames[s.stageIndex])
}

// CycleAbility rotates the current world's ability through all abilities.
// Development helper.
func (s *Session) CycleAbility() {
	s.player.SetAbility(s.world, s.player.ActiveAbility(s.world).Cycle())
}

// SetConfig swaps the physics configuration between ticks.
func (s *Session) SetConfig(cfg *config.PhysicsConfig) {
	s.physics.SetConfig(cfg)
}

// Player returns the session's player.
func (s *Session) Player() *entity.Player { return s.player }

// Stage returns the currently loaded stage.
func (s *Session) Stage() *entity.Stage { return s.physics.Stage() }

// World returns the currently active world.
func (s *Session) World() entity.WorldType { return s.world }

// StageName returns the name of the currently loaded stage.
func (s *Session) StageName() string { return s.stageNames[s.stageIndex] }
