package terrain

import "math"

// Generator produces the tile contents of a chunk.
// Implementations must be deterministic and free of side effects so a
// chunk regenerated after unload is identical to the first load.
type Generator interface {
	Generate(c ChunkCoord) Grid
}

// UniformGenerator fills every cell with the same tile
type UniformGenerator struct {
	Side  int
	Index TileIndex
}

// Generate implements Generator
func (g UniformGenerator) Generate(_ ChunkCoord) Grid {
	grid := NewGrid(g.Side)
	for i := range grid.Cells {
		grid.Cells[i] = g.Index
	}
	return grid
}

// NoiseGenerator samples hash value-noise at world tile coordinates and
// maps it onto Palette. Sampling in world space keeps chunk seams invisible.
type NoiseGenerator struct {
	Side    int
	Seed    uint32
	Scale   int         // lattice spacing in tiles
	Palette []TileIndex // low to high
}

// Generate implements Generator
func (g NoiseGenerator) Generate(c ChunkCoord) Grid {
	grid := NewGrid(g.Side)
	if len(g.Palette) == 0 {
		return grid
	}
	scale := g.Scale
	if scale <= 0 {
		scale = 1
	}
	for y := 0; y < g.Side; y++ {
		for x := 0; x < g.Side; x++ {
			wx := c.X*g.Side + x
			wy := c.Y*g.Side + y
			v := valueNoise(g.Seed, wx, wy, scale)
			i := int(v * float64(len(g.Palette)))
			if i >= len(g.Palette) {
				i = len(g.Palette) - 1
			}
			grid.Set(x, y, g.Palette[i])
		}
	}
	return grid
}

// valueNoise returns a smooth value in [0, 1) for a global tile
func valueNoise(seed uint32, x, y, scale int) float64 {
	x0, fx := floorDivMod(x, scale)
	y0, fy := floorDivMod(y, scale)
	tx := smooth(float64(fx) / float64(scale))
	ty := smooth(float64(fy) / float64(scale))

	v00 := lattice(seed, x0, y0)
	v10 := lattice(seed, x0+1, y0)
	v01 := lattice(seed, x0, y0+1)
	v11 := lattice(seed, x0+1, y0+1)

	top := v00 + (v10-v00)*tx
	bottom := v01 + (v11-v01)*tx
	return top + (bottom-top)*ty
}

func lattice(seed uint32, x, y int) float64 {
	return float64(Hash2(seed, int32(x), int32(y))) / float64(math.MaxUint32+1)
}

func smooth(t float64) float64 {
	return t * t * (3 - 2*t)
}

// Hash32 mixes a 32-bit value (murmur-style finalizer)
func Hash32(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16
	return x
}

// Hash2 returns a stable hash for 2D integer coordinates and a seed
func Hash2(seed uint32, x, y int32) uint32 {
	h := seed
	h ^= uint32(x) * 0x9e3779b1
	h ^= uint32(y) * 0x85ebca6b
	return Hash32(h)
}
