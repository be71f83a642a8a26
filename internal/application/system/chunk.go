package system

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/snowfort/internal/domain/terrain"
	"github.com/younwookim/snowfort/internal/ecs"
	"github.com/younwookim/snowfort/internal/infrastructure/assets"
)

// TerrainConfig is created once at startup and never mutated
type TerrainConfig struct {
	Tileset          assets.Handle
	DefaultTileIndex terrain.TileIndex
}

// TilemapBackend draws chunk tiles until told to remove them
type TilemapBackend interface {
	PlaceTiles(c terrain.ChunkCoord, anchor mgl64.Vec2, tileset assets.Handle, tiles []terrain.Tile)
	RemoveTiles(c terrain.ChunkCoord)
}

// AuthoredLevel answers whether a world tile belongs to hand-made content.
// It is only consulted for the home chunk (0,0); every other chunk is
// purely generated.
type AuthoredLevel interface {
	TileAt(t terrain.TilePos) (terrain.TileIndex, bool)
}

type nopBackend struct{}

func (nopBackend) PlaceTiles(terrain.ChunkCoord, mgl64.Vec2, assets.Handle, []terrain.Tile) {}
func (nopBackend) RemoveTiles(terrain.ChunkCoord)                                           {}

// ChunkLoadSystem keeps the load set centered on the player chunk
type ChunkLoadSystem struct {
	world  *ecs.World
	index  terrain.SpatialIndex
	radius int
	set    *terrain.LoadSet
}

// NewChunkLoadSystem creates the system with an empty set
func NewChunkLoadSystem(w *ecs.World, index terrain.SpatialIndex, radius int) *ChunkLoadSystem {
	return &ChunkLoadSystem{
		world:  w,
		index:  index,
		radius: radius,
		set:    terrain.NewLoadSet(),
	}
}

// Update recomputes the set from the player position.
// Without a player the previous set is kept and false is returned.
func (s *ChunkLoadSystem) Update() bool {
	p, ok := s.world.Player()
	if !ok {
		return false
	}
	s.set.Recompute(s.index.WorldToChunk(p.Pos), s.radius)
	return true
}

// Set returns the current load set
func (s *ChunkLoadSystem) Set() *terrain.LoadSet { return s.set }

// ReconcileStats counts what the load and unload passes of one tick did
type ReconcileStats struct {
	Spawned     int // new containers
	Repopulated int // existing empty containers given tiles again
	Unloaded    int // containers whose tiles were removed
}

// Changed reports whether anything happened
func (r ReconcileStats) Changed() bool {
	return r.Spawned+r.Repopulated+r.Unloaded > 0
}

// ChunkStore owns the chunk containers in World.Chunks.
// There is at most one container per coordinate; unloading drops the tiles
// and keeps the container so it can be repopulated cheaply.
type ChunkStore struct {
	world    *ecs.World
	index    terrain.SpatialIndex
	gen      terrain.Generator
	cfg      TerrainConfig
	backend  TilemapBackend
	authored AuthoredLevel
	log      logrus.FieldLogger

	byCoord map[terrain.ChunkCoord]ecs.Handle
}

// ChunkStoreOption customizes a ChunkStore
type ChunkStoreOption func(*ChunkStore)

// WithBackend sends tile changes to b
func WithBackend(b TilemapBackend) ChunkStoreOption {
	return func(s *ChunkStore) { s.backend = b }
}

// WithAuthoredLevel overlays hand-made tiles on generated ones
func WithAuthoredLevel(l AuthoredLevel) ChunkStoreOption {
	return func(s *ChunkStore) { s.authored = l }
}

// WithLogger sets the logger for chunk events
func WithLogger(log logrus.FieldLogger) ChunkStoreOption {
	return func(s *ChunkStore) { s.log = log }
}

// NewChunkStore creates an empty store
func NewChunkStore(w *ecs.World, index terrain.SpatialIndex, gen terrain.Generator, cfg TerrainConfig, opts ...ChunkStoreOption) *ChunkStore {
	s := &ChunkStore{
		world:   w,
		index:   index,
		gen:     gen,
		cfg:     cfg,
		backend: nopBackend{},
		log:     logrus.StandardLogger(),
		byCoord: make(map[terrain.ChunkCoord]ecs.Handle),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// LoadPass materializes every desired coordinate that has no tiles.
// Coordinates are visited in LoadSet.Coords order.
func (s *ChunkStore) LoadPass(desired *terrain.LoadSet) (spawned, repopulated int) {
	for _, c := range desired.Coords() {
		h, exists := s.byCoord[c]
		if !exists {
			s.spawn(c)
			spawned++
			continue
		}
		chunk, ok := s.world.Chunks.Get(h)
		if !ok {
			panic(fmt.Sprintf("chunk index points at dead container %v for %s", h, c))
		}
		if !chunk.Loaded() {
			s.populate(chunk)
			repopulated++
		}
	}
	return spawned, repopulated
}

// UnloadPass removes the tiles of every loaded chunk outside desired
func (s *ChunkStore) UnloadPass(desired *terrain.LoadSet) int {
	unloaded := 0
	s.world.Chunks.Each(func(_ ecs.Handle, chunk *terrain.Chunk) bool {
		if desired.Contains(chunk.Coord) || !chunk.Loaded() {
			return true
		}
		chunk.Tiles = nil
		s.backend.RemoveTiles(chunk.Coord)
		unloaded++
		return true
	})
	return unloaded
}

func (s *ChunkStore) spawn(c terrain.ChunkCoord) {
	if _, dup := s.byCoord[c]; dup {
		panic(fmt.Sprintf("duplicate chunk spawn at %s", c))
	}
	h := s.world.Chunks.Insert(terrain.Chunk{
		Coord:  c,
		Anchor: s.index.ChunkToWorld(c),
	})
	s.byCoord[c] = h
	s.log.WithField("chunk", c.String()).Debug("chunk container spawned")

	chunk, _ := s.world.Chunks.Get(h)
	s.populate(chunk)
}

func (s *ChunkStore) populate(chunk *terrain.Chunk) {
	grid := s.gen.Generate(chunk.Coord)
	tiles := make([]terrain.Tile, 0, len(grid.Cells))
	home := s.authored != nil && chunk.Coord == terrain.ChunkCoord{}
	for y := 0; y < grid.Side; y++ {
		for x := 0; x < grid.Side; x++ {
			local := terrain.TilePos{X: x, Y: y}
			idx := grid.At(x, y)
			if home {
				if a, ok := s.authored.TileAt(s.index.LocalToTile(chunk.Coord, local)); ok {
					idx = a
				}
			}
			tiles = append(tiles, terrain.Tile{Local: local, Index: idx})
		}
	}
	chunk.Tiles = tiles
	s.backend.PlaceTiles(chunk.Coord, chunk.Anchor, s.cfg.Tileset, tiles)
}

// Lookup returns the container at c, if one was ever spawned
func (s *ChunkStore) Lookup(c terrain.ChunkCoord) (*terrain.Chunk, bool) {
	h, ok := s.byCoord[c]
	if !ok {
		return nil, false
	}
	return s.world.Chunks.Get(h)
}

// Containers returns the number of chunk containers
func (s *ChunkStore) Containers() int { return len(s.byCoord) }

// LoadedCount returns the number of containers holding tiles
func (s *ChunkStore) LoadedCount() int {
	n := 0
	s.world.Chunks.Each(func(_ ecs.Handle, c *terrain.Chunk) bool {
		if c.Loaded() {
			n++
		}
		return true
	})
	return n
}

// Reset forgets every container
func (s *ChunkStore) Reset() {
	s.world.Chunks.Each(func(_ ecs.Handle, c *terrain.Chunk) bool {
		if c.Loaded() {
			s.backend.RemoveTiles(c.Coord)
		}
		return true
	})
	s.world.Chunks.Clear()
	clear(s.byCoord)
}
