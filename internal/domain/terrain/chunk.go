package terrain

import "github.com/go-gl/mathgl/mgl64"

// TileIndex selects a texture in the tileset atlas
type TileIndex uint32

// Tile is one placed tile inside a chunk
type Tile struct {
	Local TilePos // position inside the chunk tilemap
	Index TileIndex
}

// Grid is a square chunk-sized block of tile indices, row-major
type Grid struct {
	Side  int
	Cells []TileIndex
}

// NewGrid allocates a side x side grid
func NewGrid(side int) Grid {
	return Grid{Side: side, Cells: make([]TileIndex, side*side)}
}

// At returns the tile index at chunk-local (x, y)
func (g Grid) At(x, y int) TileIndex {
	return g.Cells[y*g.Side+x]
}

// Set writes the tile index at chunk-local (x, y)
func (g Grid) Set(x, y int, idx TileIndex) {
	g.Cells[y*g.Side+x] = idx
}

// Clone returns a deep copy
func (g Grid) Clone() Grid {
	cells := make([]TileIndex, len(g.Cells))
	copy(cells, g.Cells)
	return Grid{Side: g.Side, Cells: cells}
}

// Chunk is a materialized terrain chunk.
// The container outlives its tiles: unloading clears Tiles only.
type Chunk struct {
	Coord  ChunkCoord
	Anchor mgl64.Vec2 // world-space origin corner
	Tiles  []Tile
}

// Loaded reports whether the chunk currently has tile children
func (c *Chunk) Loaded() bool {
	return len(c.Tiles) > 0
}
