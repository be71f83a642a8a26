package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/snowfort/internal/domain/entity"
	"github.com/younwookim/snowfort/internal/ecs"
)

// EnemySpawner adds an enemy at a fixed point on a repeating timer
type EnemySpawner struct {
	world    *ecs.World
	timer    entity.Timer
	pos      mgl64.Vec2
	cfg      ecs.EnemyConfig
	maxAlive int // 0 = unlimited
	cmds     Commands
}

// NewEnemySpawner creates a spawner firing every interval seconds
func NewEnemySpawner(w *ecs.World, interval float64, pos mgl64.Vec2, cfg ecs.EnemyConfig, maxAlive int) *EnemySpawner {
	return &EnemySpawner{
		world:    w,
		timer:    entity.NewTimer(interval),
		pos:      pos,
		cfg:      cfg,
		maxAlive: maxAlive,
	}
}

// Update returns the number of enemies spawned this tick
func (s *EnemySpawner) Update(dt float64) int {
	alive := s.world.CountEnemies()
	for n := s.timer.Tick(dt); n > 0; n-- {
		if s.maxAlive > 0 && alive >= s.maxAlive {
			break
		}
		s.cmds.Push(SpawnEnemyIntent{Pos: s.pos, Config: s.cfg})
		alive++
	}
	return s.cmds.Apply(s.world)
}

// MoveEnemies advances every enemy along its path
func MoveEnemies(w *ecs.World, dt float64) {
	w.Enemies.Each(func(_ ecs.Handle, e *entity.Enemy) bool {
		e.Update(dt)
		return true
	})
}
