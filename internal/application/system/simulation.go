package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/snowfort/internal/domain/terrain"
	"github.com/younwookim/snowfort/internal/ecs"
	"github.com/younwookim/snowfort/internal/infrastructure/config"
)

// Simulation wires every system into the fixed per-tick pipeline.
//
// Stage order:
//
//	player move, tower placement, stem toggle,
//	enemy spawn, enemy move,
//	chunk load-set, chunk spawn, chunk despawn,
//	aim, fire, bullet move, collision,
//	camera
//
// Chunk stages only touch World.Chunks and combat stages never do.
// Aim runs before fire and bullet move runs before collision.
type Simulation struct {
	World     *ecs.World
	Index     terrain.SpatialIndex
	Loader    *ChunkLoadSystem
	Chunks    *ChunkStore
	Aim       *AimSystem
	Combat    *CombatSystem
	Spawner   *EnemySpawner
	Placement *TowerPlacement
	Camera    *Camera
	Pipeline  *Pipeline

	// Stems is optional; nil disables stem toggling
	Stems StemToggler

	// LastReconcile holds the chunk stats of the latest tick
	LastReconcile ReconcileStats

	input InputState
	ticks int
}

// NewSimulation builds a simulation with the player at its spawn point
func NewSimulation(cfg *config.GameConfig, gen terrain.Generator, tcfg TerrainConfig, log logrus.FieldLogger, opts ...ChunkStoreOption) *Simulation {
	w := ecs.NewWorld()
	index := NewSpatialIndex(cfg.World)

	opts = append([]ChunkStoreOption{WithLogger(log.WithField("system", "chunks"))}, opts...)
	s := &Simulation{
		World:  w,
		Index:  index,
		Loader: NewChunkLoadSystem(w, index, cfg.World.RenderDistance),
		Chunks: NewChunkStore(w, index, gen, tcfg, opts...),
		Aim:    NewAimSystem(w),
		Combat: NewCombatSystem(w, CombatConfig{
			BulletSpeed:        cfg.Combat.BulletSpeed,
			CollisionThreshold: cfg.Combat.CollisionThreshold,
			BulletRange:        cfg.Combat.BulletRange,
		}, log.WithField("system", "combat")),
		Spawner: NewEnemySpawner(w, cfg.Enemy.SpawnInterval,
			mgl64.Vec2{cfg.Enemy.SpawnX, cfg.Enemy.SpawnY},
			ecs.EnemyConfig{
				DriftSpeed: cfg.Enemy.DriftSpeed,
				Amplitude:  cfg.Enemy.Amplitude,
				Frequency:  cfg.Enemy.Frequency,
			}, cfg.Enemy.MaxAlive),
		Placement: NewTowerPlacement(w, cfg.Combat.FireInterval, log.WithField("system", "placement")),
		Camera:    NewCamera(cfg.Camera.ViewportHeight, cfg.Camera.ZoomMin, cfg.Camera.ZoomMax, cfg.Camera.ZoomSpeed),
	}
	w.CreatePlayer(mgl64.Vec2{cfg.Player.SpawnX, cfg.Player.SpawnY}, cfg.Player.Speed)

	s.Pipeline = NewPipeline(
		Stage{StagePlayer, func(dt float64) { MovePlayer(w, s.input, dt) }},
		Stage{StagePlacement, func(float64) { s.Placement.Update(s.input) }},
		Stage{StageStems, func(float64) { ToggleStems(s.Stems, s.input) }},
		Stage{StageSpawn, func(dt float64) { s.Spawner.Update(dt) }},
		Stage{StageEnemyMove, func(dt float64) { MoveEnemies(w, dt) }},
		Stage{StageLoadSet, func(float64) { s.Loader.Update() }},
		Stage{StageChunkLoad, func(float64) {
			s.LastReconcile = ReconcileStats{}
			s.LastReconcile.Spawned, s.LastReconcile.Repopulated = s.Chunks.LoadPass(s.Loader.Set())
		}},
		Stage{StageChunkUnld, func(float64) {
			s.LastReconcile.Unloaded = s.Chunks.UnloadPass(s.Loader.Set())
		}},
		Stage{StageAim, func(float64) { s.Aim.Update() }},
		Stage{StageFire, func(dt float64) { s.Combat.Fire(dt) }},
		Stage{StageBulletMove, func(dt float64) { s.Combat.MoveBullets(dt) }},
		Stage{StageCollision, func(float64) { s.Combat.ResolveCollisions() }},
		Stage{StageCamera, func(float64) { s.Camera.Update(w, s.input) }},
	)
	return s
}

// Step runs one tick with the given input
func (s *Simulation) Step(in InputState, dt float64) {
	s.input = in
	s.Pipeline.Tick(dt)
	s.ticks++
}

// Ticks returns the number of steps run
func (s *Simulation) Ticks() int { return s.ticks }

// PlayerChunk returns the chunk the player stands in
func (s *Simulation) PlayerChunk() (terrain.ChunkCoord, bool) {
	p, ok := s.World.Player()
	if !ok {
		return terrain.ChunkCoord{}, false
	}
	return s.Index.WorldToChunk(p.Pos), true
}
