// Package entity defines the simulation entity kinds and their per-entity state.
package entity

import "github.com/go-gl/mathgl/mgl64"

// Player is the controllable character; the chunk streamer follows it
type Player struct {
	Body
	Speed float64 // world units per second
}

// NewPlayer creates a player at pos
func NewPlayer(pos mgl64.Vec2, speed float64) Player {
	return Player{Body: Body{Pos: pos}, Speed: speed}
}

// Move advances the player along dir (normalized when non-zero)
func (p *Player) Move(dir mgl64.Vec2, dt float64) {
	if dir.LenSqr() == 0 {
		return
	}
	p.Pos = p.Pos.Add(dir.Normalize().Mul(p.Speed * dt))
}
