package ecs

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/snowfort/internal/domain/entity"
	"github.com/younwookim/snowfort/internal/domain/terrain"
)

// World holds one pool per entity kind.
// Systems iterate the pool of the kind they care about; there is no
// untyped registry.
type World struct {
	Players *Pool[entity.Player]
	Enemies *Pool[entity.Enemy]
	Towers  *Pool[entity.Tower]
	Bullets *Pool[entity.Bullet]
	Chunks  *Pool[terrain.Chunk]

	// Singleton references
	PlayerID Handle
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		Players: NewPool[entity.Player](1),
		Enemies: NewPool[entity.Enemy](64),
		Towers:  NewPool[entity.Tower](16),
		Bullets: NewPool[entity.Bullet](128),
		Chunks:  NewPool[terrain.Chunk](64),
	}
}

// CreatePlayer creates the player entity and records it as the singleton
func (w *World) CreatePlayer(pos mgl64.Vec2, speed float64) Handle {
	id := w.Players.Insert(entity.NewPlayer(pos, speed))
	w.PlayerID = id
	return id
}

// Player returns the player, or false when none has been spawned yet
func (w *World) Player() (*entity.Player, bool) {
	return w.Players.Get(w.PlayerID)
}

// EnemyConfig holds configuration for creating an enemy
type EnemyConfig struct {
	DriftSpeed float64 // world units/sec along +X
	Amplitude  float64
	Frequency  float64
}

// CreateEnemy creates an enemy entity
func (w *World) CreateEnemy(pos mgl64.Vec2, cfg EnemyConfig) Handle {
	return w.Enemies.Insert(entity.NewEnemy(pos, cfg.DriftSpeed, cfg.Amplitude, cfg.Frequency))
}

// CreateTower creates a tower entity
func (w *World) CreateTower(pos mgl64.Vec2, fireInterval float64) Handle {
	return w.Towers.Insert(entity.NewTower(pos, fireInterval))
}

// CreateBullet creates a bullet that inherits the given transform
func (w *World) CreateBullet(from entity.Body, speed float64) Handle {
	return w.Bullets.Insert(entity.NewBullet(from, speed))
}

// CountEnemies returns the number of live enemies
func (w *World) CountEnemies() int {
	return w.Enemies.Len()
}
