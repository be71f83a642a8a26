// Package terrain holds the chunked tile world: coordinates, load sets,
// chunk contents and the deterministic tile generators.
package terrain

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ChunkCoord identifies a chunk in the uniform chunk grid
type ChunkCoord struct {
	X, Y int
}

func (c ChunkCoord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns c offset by (dx, dy)
func (c ChunkCoord) Add(dx, dy int) ChunkCoord {
	return ChunkCoord{X: c.X + dx, Y: c.Y + dy}
}

// Key packs the coordinate into a single integer (32 bits per axis)
func (c ChunkCoord) Key() uint64 {
	return uint64(uint32(int32(c.X)))<<32 | uint64(uint32(int32(c.Y)))
}

// TilePos is a tile coordinate, either world-global or chunk-local
type TilePos struct {
	X, Y int
}

// SpatialIndex converts between world positions, tiles and chunks.
// All conversions floor, so negative positions never collapse onto zero.
type SpatialIndex struct {
	TileSize  float64 // world units per tile
	ChunkSide int     // tiles per chunk edge
}

// ChunkWorldSize returns the edge length of one chunk in world units
func (s SpatialIndex) ChunkWorldSize() float64 {
	return s.TileSize * float64(s.ChunkSide)
}

// WorldToChunk returns the chunk containing pos
func (s SpatialIndex) WorldToChunk(pos mgl64.Vec2) ChunkCoord {
	size := s.ChunkWorldSize()
	return ChunkCoord{
		X: int(math.Floor(pos.X() / size)),
		Y: int(math.Floor(pos.Y() / size)),
	}
}

// ChunkToWorld returns the origin (minimum) corner of a chunk
func (s SpatialIndex) ChunkToWorld(c ChunkCoord) mgl64.Vec2 {
	size := s.ChunkWorldSize()
	return mgl64.Vec2{float64(c.X) * size, float64(c.Y) * size}
}

// WorldToTile returns the global tile containing pos
func (s SpatialIndex) WorldToTile(pos mgl64.Vec2) TilePos {
	return TilePos{
		X: int(math.Floor(pos.X() / s.TileSize)),
		Y: int(math.Floor(pos.Y() / s.TileSize)),
	}
}

// TileToChunk splits a global tile into its chunk and chunk-local position
func (s SpatialIndex) TileToChunk(t TilePos) (ChunkCoord, TilePos) {
	cx, lx := floorDivMod(t.X, s.ChunkSide)
	cy, ly := floorDivMod(t.Y, s.ChunkSide)
	return ChunkCoord{X: cx, Y: cy}, TilePos{X: lx, Y: ly}
}

// LocalToTile returns the global tile for a chunk-local position
func (s SpatialIndex) LocalToTile(c ChunkCoord, local TilePos) TilePos {
	return TilePos{
		X: c.X*s.ChunkSide + local.X,
		Y: c.Y*s.ChunkSide + local.Y,
	}
}

func floorDivMod(a, b int) (q, r int) {
	q = a / b
	r = a % b
	if r < 0 {
		q--
		r += b
	}
	return q, r
}
