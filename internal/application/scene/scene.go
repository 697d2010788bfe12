// Package scene defines the Scene interface for game state transitions.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (menu, playing, paused, etc.).
// Scenes drive their own simulation timing inside Update.
type Scene interface {
	// Update advances the scene by one frame. Returns the next scene to
	// transition to, or nil to stay on the current scene.
	Update() (Scene, error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when the scene becomes active.
	OnEnter()

	// OnExit is called when the scene is deactivated.
	OnExit()
}
