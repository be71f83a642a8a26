// Package scene defines the Scene interface for game screens.
//
// The playing scene is the only screen today; Scene keeps the loop
// independent of it so a title or results screen can be swapped in.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one game screen.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by dt seconds. A non-nil next scene
	// replaces this one; an error stops the loop.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter runs each time the scene becomes current.
	OnEnter()

	// OnExit runs when the scene is replaced or the game closes.
	OnExit()
}
