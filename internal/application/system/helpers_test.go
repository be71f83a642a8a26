package system

import (
	"io"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/snowfort/internal/domain/terrain"
	"github.com/younwookim/snowfort/internal/ecs"
	"github.com/younwookim/snowfort/internal/infrastructure/assets"
)

// fakeBackend records tilemap calls like the old mockStage did for collisions
type fakeBackend struct {
	placed  map[terrain.ChunkCoord][]terrain.Tile
	removed []terrain.ChunkCoord
	places  int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{placed: make(map[terrain.ChunkCoord][]terrain.Tile)}
}

func (b *fakeBackend) PlaceTiles(c terrain.ChunkCoord, _ mgl64.Vec2, _ assets.Handle, tiles []terrain.Tile) {
	b.placed[c] = tiles
	b.places++
}

func (b *fakeBackend) RemoveTiles(c terrain.ChunkCoord) {
	delete(b.placed, c)
	b.removed = append(b.removed, c)
}

type fakeLevel map[terrain.TilePos]terrain.TileIndex

func (l fakeLevel) TileAt(t terrain.TilePos) (terrain.TileIndex, bool) {
	idx, ok := l[t]
	return idx, ok
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// testIndex is tile size 8, chunk side 32: one chunk spans 256 world units
var testIndex = terrain.SpatialIndex{TileSize: 8, ChunkSide: 32}

const snowTile terrain.TileIndex = 7

type streamingFixture struct {
	world   *ecs.World
	load    *ChunkLoadSystem
	store   *ChunkStore
	backend *fakeBackend
}

func newStreamingFixture(radius int, opts ...ChunkStoreOption) *streamingFixture {
	w := ecs.NewWorld()
	backend := newFakeBackend()
	gen := terrain.UniformGenerator{Side: testIndex.ChunkSide, Index: snowTile}
	opts = append([]ChunkStoreOption{WithBackend(backend), WithLogger(quietLogger())}, opts...)
	return &streamingFixture{
		world:   w,
		load:    NewChunkLoadSystem(w, testIndex, radius),
		store:   NewChunkStore(w, testIndex, gen, TerrainConfig{Tileset: 1, DefaultTileIndex: snowTile}, opts...),
		backend: backend,
	}
}

func (f *streamingFixture) tick() ReconcileStats {
	f.load.Update()
	return reconcile(f.store, f.load.Set())
}

// reconcile runs the load pass then the unload pass, as the chunk stages do
func reconcile(s *ChunkStore, desired *terrain.LoadSet) ReconcileStats {
	var st ReconcileStats
	st.Spawned, st.Repopulated = s.LoadPass(desired)
	st.Unloaded = s.UnloadPass(desired)
	return st
}

func (f *streamingFixture) movePlayer(pos mgl64.Vec2) {
	p, _ := f.world.Player()
	p.Pos = pos
}
