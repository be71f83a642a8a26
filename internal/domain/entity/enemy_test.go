package entity

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestEnemy_UpdateDriftsRight(t *testing.T) {
	e := NewEnemy(mgl64.Vec2{-700, 0}, 10, 100, 5)
	dt := 1.0 / 60.0

	e.Update(dt)

	wantX := -700 + dt*10
	wantY := math.Sin(wantX+math.Pi*dt) * 100 * (5 * dt)
	assert.InDelta(t, wantX, e.Pos.X(), 1e-9)
	assert.InDelta(t, wantY, e.Pos.Y(), 1e-9)
}

func TestEnemy_ZeroAmplitudeStaysLevel(t *testing.T) {
	e := NewEnemy(mgl64.Vec2{0, 50}, 10, 0, 5)

	for i := 0; i < 100; i++ {
		e.Update(0.1)
	}
	assert.InDelta(t, 100.0, e.Pos.X(), 1e-9)
	assert.Equal(t, 50.0, e.Pos.Y())
}
