package system

import (
	"github.com/sirupsen/logrus"

	"github.com/younwookim/snowfort/internal/ecs"
)

// MovePlayer moves the player along the held direction keys
func MovePlayer(w *ecs.World, in InputState, dt float64) {
	p, ok := w.Player()
	if !ok {
		return
	}
	p.Move(in.MoveDir(), dt)
}

// TowerPlacement drops a tower at the player when the place action fires
type TowerPlacement struct {
	world        *ecs.World
	fireInterval float64
	log          logrus.FieldLogger
	cmds         Commands
}

// NewTowerPlacement creates the placement system
func NewTowerPlacement(w *ecs.World, fireInterval float64, log logrus.FieldLogger) *TowerPlacement {
	return &TowerPlacement{world: w, fireInterval: fireInterval, log: log}
}

// Update places at most one tower per press
func (s *TowerPlacement) Update(in InputState) bool {
	if !in.WasJustPressed(ActionPlaceTower) {
		return false
	}
	p, ok := s.world.Player()
	if !ok {
		return false
	}
	s.cmds.Push(SpawnTowerIntent{Pos: p.Pos, FireInterval: s.fireInterval})
	s.cmds.Apply(s.world)
	s.log.WithFields(logrus.Fields{
		"x":      p.Pos.X(),
		"y":      p.Pos.Y(),
		"towers": s.world.Towers.Len(),
	}).Info("tower placed")
	return true
}
