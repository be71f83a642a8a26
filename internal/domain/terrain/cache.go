package terrain

import (
	"fmt"

	"github.com/dgraph-io/ristretto/v2"
)

// CachedGenerator memoizes generated grids by chunk coordinate.
// Cache misses regenerate, which is safe because generators are pure.
type CachedGenerator struct {
	inner Generator
	cache *ristretto.Cache[uint64, Grid]
}

// NewCachedGenerator wraps inner with a cache holding up to maxChunks grids
func NewCachedGenerator(inner Generator, maxChunks int64) (*CachedGenerator, error) {
	if maxChunks <= 0 {
		maxChunks = 256
	}
	cache, err := ristretto.NewCache(&ristretto.Config[uint64, Grid]{
		NumCounters: maxChunks * 10,
		MaxCost:     maxChunks,
		BufferItems: 64,
		// cost is counted in chunks, not bytes
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chunk cache: %w", err)
	}
	return &CachedGenerator{inner: inner, cache: cache}, nil
}

// Generate implements Generator.
// The cached grid is cloned so callers may not corrupt it.
func (g *CachedGenerator) Generate(c ChunkCoord) Grid {
	if grid, ok := g.cache.Get(c.Key()); ok {
		return grid.Clone()
	}
	grid := g.inner.Generate(c)
	g.cache.Set(c.Key(), grid.Clone(), 1)
	return grid
}

// Wait blocks until pending cache writes are applied
func (g *CachedGenerator) Wait() {
	g.cache.Wait()
}

// Close releases the cache goroutines
func (g *CachedGenerator) Close() {
	g.cache.Close()
}
