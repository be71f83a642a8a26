package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Enemy drifts across the map on a sine path until a bullet hits it
type Enemy struct {
	Body
	DriftSpeed float64 // world units per second along +X
	Amplitude  float64 // vertical swing scale
	Frequency  float64
}

// NewEnemy creates an enemy at pos
func NewEnemy(pos mgl64.Vec2, drift, amplitude, frequency float64) Enemy {
	return Enemy{
		Body:       Body{Pos: pos},
		DriftSpeed: drift,
		Amplitude:  amplitude,
		Frequency:  frequency,
	}
}

// Update moves the enemy one step.
// X advances linearly; Y is nudged by a sine of the new X.
func (e *Enemy) Update(dt float64) {
	x := e.Pos.X() + dt*e.DriftSpeed
	y := e.Pos.Y() + math.Sin(x+math.Pi*dt)*e.Amplitude*(e.Frequency*dt)
	e.Pos = mgl64.Vec2{x, y}
}
