package entity

import "image/color"

// Ability is one movement ability slot value. The set is closed; slots are
// selected by world type, never dispatched dynamically.
type Ability int

const (
	AbilityNone Ability = iota
	AbilityDoubleJump
	AbilityGlider
	AbilityDash
	AbilityWallJump

	abilityCount
)

// Cycle returns the next ability in the fixed order, wrapping around.
// Used by dev tooling to step through abilities at runtime.
func (a Ability) Cycle() Ability {
	return (a + 1) % abilityCount
}

// String returns the ability name
func (a Ability) String() string {
	switch a {
	case AbilityNone:
		return "None"
	case AbilityDoubleJump:
		return "DoubleJump"
	case AbilityGlider:
		return "Glider"
	case AbilityDash:
		return "Dash"
	case AbilityWallJump:
		return "WallJump"
	default:
		return "Unknown"
	}
}

// Color returns the render tint associated with the ability
func (a Ability) Color() color.RGBA {
	switch a {
	case AbilityDoubleJump:
		return color.RGBA{100, 200, 100, 255}
	case AbilityGlider:
		return color.RGBA{100, 160, 220, 255}
	case AbilityDash:
		return color.RGBA{220, 160, 60, 255}
	case AbilityWallJump:
		return color.RGBA{190, 100, 200, 255}
	default:
		return color.RGBA{128, 128, 128, 255}
	}
}

// AbilityPair holds one ability per world type. Exactly one is active per
// tick, selected by the current world type.
type AbilityPair struct {
	Light Ability `json:"light"`
	Dark  Ability `json:"dark"`
}

// Current returns the ability active in the given world
func (p AbilityPair) Current(world WorldType) Ability {
	if world == WorldLight {
		return p.Light
	}
	return p.Dark
}

// Set replaces the ability slot for the given world
func (p *AbilityPair) Set(world WorldType, a Ability) {
	if world == WorldLight {
		p.Light = a
	} else {
		p.Dark = a
	}
}
