package system

import (
	"fmt"

	"github.com/younwookim/duality/internal/domain/entity"
	"github.com/younwookim/duality/internal/infrastructure/config"
)

var tileNames = map[string]entity.Tile{
	"air":           entity.TileAir,
	"solid":         entity.TileSolid,
	"spikesLeft":    entity.TileSpikesLeft,
	"spikesRight":   entity.TileSpikesRight,
	"spikesUp":      entity.TileSpikesUp,
	"spikesDown":    entity.TileSpikesDown,
	"spawn":         entity.TileSpawnPoint,
	"goalLeft":      entity.TileGoalLeft,
	"goalRight":     entity.TileGoalRight,
	"goalUp":        entity.TileGoalUp,
	"goalDown":      entity.TileGoalDown,
	"spikeAllSides": entity.TileSpikeAllSides,
}

var abilityNames = map[string]entity.Ability{
	"none":       entity.AbilityNone,
	"doubleJump": entity.AbilityDoubleJump,
	"glider":     entity.AbilityGlider,
	"dash":       entity.AbilityDash,
	"wallJump":   entity.AbilityWallJump,
}

// LoadStage converts a StageConfig into a Stage: collision rows become the
// tilemap through the stage's tile mapping, and placed objects are
// instantiated. Unmapped characters are air.
func LoadStage(cfg *config.StageConfig) (*entity.Stage, error) {
	rows := cfg.Layers.Collision
	if len(rows) == 0 {
		return nil, fmt.Errorf("stage %s has no collision layer", cfg.Name)
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return nil, fmt.Errorf("stage %s has empty collision rows", cfg.Name)
	}

	tilemap := entity.NewTilemap(width, len(rows))
	for y, row := range rows {
		for x, char := range row {
			name, ok := cfg.TileMapping[string(char)]
			if !ok {
				continue
			}
			tile, ok := tileNames[name]
			if !ok {
				return nil, fmt.Errorf("stage %s maps %q to unknown tile %q", cfg.Name, string(char), name)
			}
			tilemap.SetTile(x, y, tile)
		}
	}

	stage := entity.NewStage(cfg.Name, tilemap)
	for i, obj := range cfg.Objects {
		if err := addObject(stage, obj); err != nil {
			return nil, fmt.Errorf("stage %s object %d: %w", cfg.Name, i, err)
		}
	}

	return stage, nil
}

func addObject(stage *entity.Stage, obj config.ObjectConfig) error {
	pos := entity.Vec2{X: obj.Position.X, Y: obj.Position.Y}
	size := entity.Vec2{X: 1, Y: 1}
	if obj.Size != nil {
		size = entity.Vec2{X: obj.Size.W, Y: obj.Size.H}
	}

	switch obj.Type {
	case "platform":
		if obj.Platform == nil {
			return fmt.Errorf("platform needs a platform section")
		}
		goal := entity.Vec2{X: obj.Platform.Goal.X, Y: obj.Platform.Goal.Y}
		pl := entity.NewPlatform(pos, size, goal, obj.Platform.Speed)
		pl.Spiky = obj.Platform.Spiky
		switch obj.Platform.World {
		case "":
		case "light":
			pl.RestrictTo(entity.WorldLight)
		case "dark":
			pl.RestrictTo(entity.WorldDark)
		default:
			return fmt.Errorf("unknown world %q", obj.Platform.World)
		}
		stage.Platforms = append(stage.Platforms, pl)

	case "abilityBlock":
		if obj.Ability == nil {
			return fmt.Errorf("ability block needs an ability section")
		}
		light, ok := abilityNames[obj.Ability.Light]
		if !ok {
			return fmt.Errorf("unknown ability %q", obj.Ability.Light)
		}
		dark, ok := abilityNames[obj.Ability.Dark]
		if !ok {
			return fmt.Errorf("unknown ability %q", obj.Ability.Dark)
		}
		pair := entity.AbilityPair{Light: light, Dark: dark}
		stage.AbilityBlocks = append(stage.AbilityBlocks, entity.NewAbilityBlock(pos, size, pair))

	case "key":
		stage.AddKey(entity.NewKey(pos, obj.Group))

	case "door":
		stage.Doors = append(stage.Doors, entity.NewDoor(pos, size, obj.Group))

	default:
		return fmt.Errorf("unknown object type %q", obj.Type)
	}
	return nil
}
