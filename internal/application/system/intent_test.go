package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/snowfort/internal/domain/entity"
	"github.com/younwookim/snowfort/internal/ecs"
)

func TestCommands_ApplyInOrder(t *testing.T) {
	w := ecs.NewWorld()
	var c Commands

	c.Push(SpawnTowerIntent{Pos: mgl64.Vec2{1, 2}, FireInterval: 1})
	c.Push(SpawnEnemyIntent{Pos: mgl64.Vec2{3, 4}})
	c.Push(SpawnBulletIntent{From: entity.Body{Pos: mgl64.Vec2{5, 6}}, Speed: 9})
	assert.Equal(t, 3, c.Len())

	assert.Equal(t, 3, c.Apply(w))
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 1, w.Towers.Len())
	assert.Equal(t, 1, w.Enemies.Len())
	assert.Equal(t, 1, w.Bullets.Len())
}

func TestCommands_DespawnTwiceIsNoop(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEnemy(mgl64.Vec2{}, ecs.EnemyConfig{})
	b := w.CreateBullet(entity.Body{}, 1)
	var c Commands

	c.Push(DespawnEnemyIntent{ID: e})
	c.Push(DespawnEnemyIntent{ID: e})
	c.Push(DespawnBulletIntent{ID: b})
	c.Push(DespawnBulletIntent{ID: b})

	assert.Equal(t, 2, c.Apply(w))
	assert.Equal(t, 0, w.Enemies.Len())
	assert.Equal(t, 0, w.Bullets.Len())

	c.Push(DespawnEnemyIntent{ID: e})
	assert.Equal(t, 0, c.Apply(w), "already removed")
}

func TestCommands_EmptyApply(t *testing.T) {
	var c Commands
	assert.Equal(t, 0, c.Apply(ecs.NewWorld()))
}
