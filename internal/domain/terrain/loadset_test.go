package terrain

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSet_Recompute(t *testing.T) {
	for _, r := range []int{0, 1, 2, 3, 5} {
		for _, center := range []ChunkCoord{{0, 0}, {1, 0}, {-4, 7}} {
			s := NewLoadSet()
			s.Recompute(center, r)

			side := 2*r + 1
			assert.Equal(t, side*side, s.Len(), "r=%d center=%v", r, center)

			// symmetric around the center
			for _, c := range s.Coords() {
				mirror := ChunkCoord{2*center.X - c.X, 2*center.Y - c.Y}
				assert.True(t, s.Contains(mirror), "mirror of %v missing", c)
			}
			assert.False(t, s.Contains(center.Add(r+1, 0)))
			assert.False(t, s.Contains(center.Add(0, -r-1)))
		}
	}
}

func TestLoadSet_ReplacesPreviousContents(t *testing.T) {
	s := NewLoadSet()
	s.Recompute(ChunkCoord{0, 0}, 1)
	require.True(t, s.Contains(ChunkCoord{-1, -1}))

	// teleport: nothing from the old window survives
	s.Recompute(ChunkCoord{10, 10}, 1)
	assert.False(t, s.Contains(ChunkCoord{-1, -1}))
	assert.False(t, s.Contains(ChunkCoord{0, 0}))
	assert.True(t, s.Contains(ChunkCoord{9, 9}))
	assert.Equal(t, 9, s.Len())
	assert.Equal(t, ChunkCoord{10, 10}, s.Center())
}

func TestLoadSet_CoordsSorted(t *testing.T) {
	s := NewLoadSet()
	s.Recompute(ChunkCoord{0, 0}, 1)

	coords := s.Coords()
	require.Len(t, coords, 9)
	assert.Equal(t, ChunkCoord{-1, -1}, coords[0])
	assert.Equal(t, ChunkCoord{0, -1}, coords[1])
	assert.Equal(t, ChunkCoord{1, 1}, coords[8])
}

// Player at origin, R=3, tile 8, side 32: 49 chunks from (-3,-3) to (3,3).
// Moving to (300, 0) shifts the window one chunk right.
func TestLoadSet_PlayerScenario(t *testing.T) {
	idx := SpatialIndex{TileSize: 8, ChunkSide: 32}
	s := NewLoadSet()

	s.Recompute(idx.WorldToChunk(mgl64.Vec2{0, 0}), 3)
	assert.Equal(t, 49, s.Len())
	for _, c := range []ChunkCoord{{0, 0}, {3, 3}, {-3, -3}, {3, -3}, {-3, 3}} {
		assert.True(t, s.Contains(c), "missing %v", c)
	}

	s.Recompute(idx.WorldToChunk(mgl64.Vec2{300, 0}), 3)
	assert.Equal(t, ChunkCoord{1, 0}, s.Center())
	assert.Equal(t, 49, s.Len())
	assert.True(t, s.Contains(ChunkCoord{4, 0}))
	assert.False(t, s.Contains(ChunkCoord{-3, 0}))
}

func TestLoadSet_NegativeRadiusClamped(t *testing.T) {
	s := NewLoadSet()
	s.Recompute(ChunkCoord{2, 2}, -1)
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Contains(ChunkCoord{2, 2}))
}
