package system

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/snowfort/internal/domain/entity"
	"github.com/younwookim/snowfort/internal/ecs"
)

func TestMovePlayer(t *testing.T) {
	w := ecs.NewWorld()
	w.CreatePlayer(mgl64.Vec2{}, 200)

	MovePlayer(w, InputState{Held: ActionRight}, 0.5)
	p, _ := w.Player()
	assert.InDelta(t, 100.0, p.Pos.X(), 1e-9)

	MovePlayer(w, InputState{Held: ActionUp | ActionLeft}, 1)
	p, _ = w.Player()
	d := 200 / math.Sqrt2
	assert.InDelta(t, 100-d, p.Pos.X(), 1e-9, "diagonal is normalized")
	assert.InDelta(t, d, p.Pos.Y(), 1e-9)
}

func TestMovePlayer_NoPlayer(t *testing.T) {
	assert.NotPanics(t, func() {
		MovePlayer(ecs.NewWorld(), InputState{Held: ActionUp}, 1)
	})
}

func TestTowerPlacement(t *testing.T) {
	w := ecs.NewWorld()
	w.CreatePlayer(mgl64.Vec2{12, 34}, 200)
	s := NewTowerPlacement(w, 1.5, quietLogger())

	assert.False(t, s.Update(InputState{Held: ActionPlaceTower}), "holding does not place")
	assert.True(t, s.Update(InputState{Pressed: ActionPlaceTower}))
	assert.Equal(t, 1, w.Towers.Len())

	w.Towers.Each(func(_ ecs.Handle, tw *entity.Tower) bool {
		assert.Equal(t, mgl64.Vec2{12, 34}, tw.Pos)
		assert.Equal(t, 1500*time.Millisecond, tw.Fire.Duration)
		return true
	})
}

func TestTowerPlacement_NoPlayer(t *testing.T) {
	s := NewTowerPlacement(ecs.NewWorld(), 1, quietLogger())
	assert.False(t, s.Update(InputState{Pressed: ActionPlaceTower}))
}
