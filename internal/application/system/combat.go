package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/snowfort/internal/domain/entity"
	"github.com/younwookim/snowfort/internal/ecs"
)

// CombatConfig holds the tuning values the combat loop reads each tick
type CombatConfig struct {
	BulletSpeed        float64 // world units/sec
	CollisionThreshold float64 // world units, strict
	BulletRange        float64 // 0 = unlimited
}

// KillEvent describes one bullet/enemy collision
type KillEvent struct {
	Bullet ecs.Handle
	Enemy  ecs.Handle
	Pos    mgl64.Vec2 // enemy position at impact
}

// CombatSystem runs tower fire timers, bullet motion and collisions
type CombatSystem struct {
	world *ecs.World
	cfg   CombatConfig
	cmds  Commands
	log   logrus.FieldLogger
	kills int

	// OnKill is called once per resolved collision, after both are removed
	OnKill func(KillEvent)
}

// NewCombatSystem creates a combat system
func NewCombatSystem(w *ecs.World, cfg CombatConfig, log logrus.FieldLogger) *CombatSystem {
	return &CombatSystem{world: w, cfg: cfg, log: log}
}

// Fire advances every tower timer and spawns one bullet per completed
// interval at the tower's position and rotation. Returns bullets spawned.
func (s *CombatSystem) Fire(dt float64) int {
	s.world.Towers.Each(func(_ ecs.Handle, t *entity.Tower) bool {
		for n := t.Fire.Tick(dt); n > 0; n-- {
			s.cmds.Push(SpawnBulletIntent{From: t.Body, Speed: s.cfg.BulletSpeed})
		}
		return true
	})
	return s.cmds.Apply(s.world)
}

// MoveBullets integrates bullet positions and drops bullets past their range
func (s *CombatSystem) MoveBullets(dt float64) {
	s.world.Bullets.Each(func(h ecs.Handle, b *entity.Bullet) bool {
		b.Update(dt)
		if s.cfg.BulletRange > 0 && b.Travelled > s.cfg.BulletRange {
			s.cmds.Push(DespawnBulletIntent{ID: h})
		}
		return true
	})
	s.cmds.Apply(s.world)
}

// ResolveCollisions removes every bullet/enemy pair closer than the
// threshold. Each bullet kills at most one enemy: the first in creation
// order. An enemy already hit this tick is not matched again.
func (s *CombatSystem) ResolveCollisions() int {
	thresholdSqr := s.cfg.CollisionThreshold * s.cfg.CollisionThreshold
	hit := make(map[ecs.Handle]struct{})
	var events []KillEvent

	s.world.Bullets.Each(func(bh ecs.Handle, b *entity.Bullet) bool {
		s.world.Enemies.Each(func(eh ecs.Handle, e *entity.Enemy) bool {
			if _, dead := hit[eh]; dead {
				return true
			}
			if b.DistanceSqr(&e.Body) >= thresholdSqr {
				return true
			}
			hit[eh] = struct{}{}
			s.cmds.Push(DespawnBulletIntent{ID: bh})
			s.cmds.Push(DespawnEnemyIntent{ID: eh})
			events = append(events, KillEvent{Bullet: bh, Enemy: eh, Pos: e.Pos})
			return false
		})
		return true
	})
	s.cmds.Apply(s.world)

	for _, ev := range events {
		s.kills++
		s.log.WithFields(logrus.Fields{
			"x":     ev.Pos.X(),
			"y":     ev.Pos.Y(),
			"total": s.kills,
		}).Debug("enemy killed")
		if s.OnKill != nil {
			s.OnKill(ev)
		}
	}
	return len(events)
}

// Kills returns the number of enemies destroyed so far
func (s *CombatSystem) Kills() int { return s.kills }

// BulletCount returns the number of live bullets
func (s *CombatSystem) BulletCount() int { return s.world.Bullets.Len() }
