package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/snowfort/internal/domain/entity"
	"github.com/younwookim/snowfort/internal/ecs"
)

// EnemyView is the read-only slice of an enemy the selector needs
type EnemyView struct {
	ID  ecs.Handle
	Pos mgl64.Vec2
}

// SelectTarget returns the enemy position closest to towerPos.
// Ties go to the first enemy in slice order. Empty input yields false.
func SelectTarget(towerPos mgl64.Vec2, enemies []EnemyView) (mgl64.Vec2, bool) {
	var (
		best    mgl64.Vec2
		bestD   float64
		hasBest bool
	)
	for _, e := range enemies {
		d := e.Pos.Sub(towerPos).LenSqr()
		if !hasBest || d < bestD {
			best, bestD, hasBest = e.Pos, d, true
		}
	}
	return best, hasBest
}

// AimSystem turns every tower toward its nearest enemy
type AimSystem struct {
	world   *ecs.World
	enemies []EnemyView
}

// NewAimSystem creates the system
func NewAimSystem(w *ecs.World) *AimSystem {
	return &AimSystem{world: w}
}

// Update snapshots enemies once, then aims each tower.
// A tower with no target keeps its previous rotation.
func (s *AimSystem) Update() {
	s.enemies = s.enemies[:0]
	s.world.Enemies.Each(func(h ecs.Handle, e *entity.Enemy) bool {
		s.enemies = append(s.enemies, EnemyView{ID: h, Pos: e.Pos})
		return true
	})

	s.world.Towers.Each(func(_ ecs.Handle, t *entity.Tower) bool {
		target, ok := SelectTarget(t.Pos, s.enemies)
		t.HasTarget = ok
		if ok {
			t.Target = target
			t.FaceToward(target)
		}
		return true
	})
}
