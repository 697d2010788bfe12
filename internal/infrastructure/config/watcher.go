package config

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads physics.yaml whenever it changes on disk. Reloaded
// configs are delivered over a channel so the game loop can apply them
// between ticks; physics constants never change mid-tick.
type Watcher struct {
	loader  *Loader
	watcher *fsnotify.Watcher
	updates chan *PhysicsConfig
	done    chan struct{}
}

// NewWatcher starts watching basePath/physics.yaml for changes
func NewWatcher(basePath string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fw.Add(basePath); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		loader:  NewLoader(basePath),
		watcher: fw,
		updates: make(chan *PhysicsConfig, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Updates returns the channel carrying reloaded configs
func (w *Watcher) Updates() <-chan *PhysicsConfig {
	return w.updates
}

// Close stops the watcher
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != "physics.yaml" {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := w.loader.LoadPhysics()
			if err != nil {
				log.Printf("Failed to reload physics config: %v", err)
				continue
			}
			// Drop a stale pending update rather than block
			select {
			case <-w.updates:
			default:
			}
			w.updates <- cfg
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Config watcher error: %v", err)
		}
	}
}
