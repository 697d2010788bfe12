package main

import (
	"fmt"
	"log"

	"github.com/younwookim/duality/internal/application/game"
	"github.com/younwookim/duality/internal/application/replay"
	"github.com/younwookim/duality/internal/application/scene/playing"
	"github.com/younwookim/duality/internal/infrastructure/config"
)

// replayScene builds a playback scene from a recording. The recording names
// the stage it was captured on; playback must start there or the input
// stream desyncs immediately.
func replayScene(loader *config.Loader, cfg *config.PhysicsConfig, filename string) (*playing.Playing, error) {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return nil, fmt.Errorf("loading replay: %w", err)
	}

	sim, err := game.NewSession(loader, cfg, data.Stage)
	if err != nil {
		return nil, fmt.Errorf("preparing replay session: %w", err)
	}

	log.Printf("Replaying %s: stage %s, %d ticks", filename, data.Stage, len(data.Frames))
	return playing.NewReplay(sim, cfg, replay.NewReplayer(*data)), nil
}
