package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader loads game configuration from an asset tree using fs.FS
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a config loader rooted at a filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a config loader from fs.FS
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadPhysics loads physics.yaml layered over the built-in defaults, so a
// partial file only overrides what it names
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "physics.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read physics.yaml: %w", err)
	}

	cfg := DefaultPhysics()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse physics.yaml: %w", err)
	}

	return cfg, nil
}

// LoadStage loads a stage JSON file by name
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	path := "stages/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
	}

	var cfg StageConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
	}

	return &cfg, nil
}

// StageNames lists the available stage names, sorted. Main progression
// stages use the "map" prefix.
func (l *Loader) StageNames() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, "stages")
	if err != nil {
		return nil, fmt.Errorf("failed to list stages: %w", err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// MainStageNames lists the progression stages ("map" prefix), sorted
func (l *Loader) MainStageNames() ([]string, error) {
	names, err := l.StageNames()
	if err != nil {
		return nil, err
	}

	var main []string
	for _, name := range names {
		if strings.HasPrefix(name, "map") {
			main = append(main, name)
		}
	}
	return main, nil
}
