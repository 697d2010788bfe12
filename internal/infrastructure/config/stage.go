package config

// StageConfig is the root config for stage JSON files. The collision layer
// is a list of row strings; each character maps to a tile through
// TileMapping.
type StageConfig struct {
	Name        string            `json:"name"`
	Layers      LayersConfig      `json:"layers"`
	TileMapping map[string]string `json:"tileMapping"`
	Objects     []ObjectConfig    `json:"objects"`
}

type LayersConfig struct {
	Collision []string `json:"collision"`
}

// ObjectConfig is one placed object. Type selects which of the optional
// payloads is meaningful.
type ObjectConfig struct {
	Type     string          `json:"type"`
	Position PositionConfig  `json:"position"`
	Platform *PlatformConfig `json:"platform,omitempty"`
	Ability  *AbilityConfig  `json:"ability,omitempty"`
	Group    int             `json:"group,omitempty"`
	Size     *SizeConfig     `json:"size,omitempty"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type SizeConfig struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type PlatformConfig struct {
	Goal  PositionConfig `json:"goal"`
	Speed float64        `json:"speed"`
	// Spiky faces in left, right, up, down order
	Spiky [4]bool `json:"spiky"`
	// World restricts the platform to "light" or "dark" when set
	World string `json:"world,omitempty"`
}

type AbilityConfig struct {
	Light string `json:"light"`
	Dark  string `json:"dark"`
}
