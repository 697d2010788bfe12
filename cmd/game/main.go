package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/duality/internal/application/game"
	"github.com/younwookim/duality/internal/application/scene/playing"
	"github.com/younwookim/duality/internal/infrastructure/config"
)

func main() {
	assetsFlag := flag.String("assets", "assets", "Asset directory (physics.yaml, stages/)")
	stageFlag := flag.String("stage", "map01", "Stage to start on")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded input file")
	flag.Parse()

	loader := config.NewLoader(*assetsFlag)
	cfg, err := loader.LoadPhysics()
	if err != nil {
		log.Fatalf("Failed to load physics config: %v", err)
	}

	var initial *playing.Playing
	if *replayFlag != "" {
		initial, err = replayScene(loader, cfg, *replayFlag)
	} else {
		initial, err = playScene(loader, cfg, *assetsFlag, *stageFlag, *recordFlag)
	}
	if err != nil {
		log.Fatal(err)
	}

	g := game.New(initial, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)

	ebiten.SetWindowSize(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	ebiten.SetWindowTitle("Duality")

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func playScene(loader *config.Loader, cfg *config.PhysicsConfig, assets, stage, record string) (*playing.Playing, error) {
	sim, err := game.NewSession(loader, cfg, stage)
	if err != nil {
		return nil, err
	}

	// The game runs without the watcher, just without live reloads.
	watcher, err := config.NewWatcher(assets)
	if err != nil {
		log.Printf("Config watcher disabled: %v", err)
		watcher = nil
	}

	return playing.New(sim, cfg, watcher, record), nil
}
