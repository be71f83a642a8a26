package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/snowfort/internal/domain/entity"
	"github.com/younwookim/snowfort/internal/ecs"
)

// Intent is a world mutation requested during a read pass
type Intent interface {
	isIntent()
}

// SpawnTowerIntent places a tower
type SpawnTowerIntent struct {
	Pos          mgl64.Vec2
	FireInterval float64
}

func (SpawnTowerIntent) isIntent() {}

// SpawnBulletIntent fires a bullet with the given transform
type SpawnBulletIntent struct {
	From  entity.Body
	Speed float64
}

func (SpawnBulletIntent) isIntent() {}

// SpawnEnemyIntent adds an enemy
type SpawnEnemyIntent struct {
	Pos    mgl64.Vec2
	Config ecs.EnemyConfig
}

func (SpawnEnemyIntent) isIntent() {}

// DespawnEnemyIntent removes an enemy
type DespawnEnemyIntent struct {
	ID ecs.Handle
}

func (DespawnEnemyIntent) isIntent() {}

// DespawnBulletIntent removes a bullet
type DespawnBulletIntent struct {
	ID ecs.Handle
}

func (DespawnBulletIntent) isIntent() {}

// Commands buffers intents so that every read of a pass happens before
// any write. Apply runs them in push order.
type Commands struct {
	intents []Intent
}

// Push queues an intent
func (c *Commands) Push(i Intent) {
	c.intents = append(c.intents, i)
}

// Len returns the number of queued intents
func (c *Commands) Len() int { return len(c.intents) }

// Apply executes and clears the queue. Despawning an entity that is
// already gone is a no-op. Returns the number of intents that changed
// the world.
func (c *Commands) Apply(w *ecs.World) int {
	applied := 0
	for _, i := range c.intents {
		switch in := i.(type) {
		case SpawnTowerIntent:
			w.CreateTower(in.Pos, in.FireInterval)
			applied++
		case SpawnBulletIntent:
			w.CreateBullet(in.From, in.Speed)
			applied++
		case SpawnEnemyIntent:
			w.CreateEnemy(in.Pos, in.Config)
			applied++
		case DespawnEnemyIntent:
			if w.Enemies.Remove(in.ID) {
				applied++
			}
		case DespawnBulletIntent:
			if w.Bullets.Remove(in.ID) {
				applied++
			}
		}
	}
	clear(c.intents)
	c.intents = c.intents[:0]
	return applied
}
