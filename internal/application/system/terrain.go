package system

import (
	"fmt"

	"github.com/younwookim/snowfort/internal/domain/terrain"
	"github.com/younwookim/snowfort/internal/infrastructure/config"
)

// NewSpatialIndex builds the index from world config
func NewSpatialIndex(cfg config.WorldConfig) terrain.SpatialIndex {
	return terrain.SpatialIndex{TileSize: cfg.TileSize, ChunkSide: cfg.ChunkSide}
}

// NewGenerator builds the configured tile generator wrapped in a grid
// cache. The returned cache must be closed on shutdown.
func NewGenerator(cfg config.WorldConfig) (*terrain.CachedGenerator, error) {
	var inner terrain.Generator
	switch cfg.Generator {
	case "uniform", "":
		inner = terrain.UniformGenerator{Side: cfg.ChunkSide, Index: terrain.TileIndex(cfg.DefaultTileIndex)}
	case "noise":
		palette := make([]terrain.TileIndex, len(cfg.Palette))
		for i, p := range cfg.Palette {
			palette[i] = terrain.TileIndex(p)
		}
		inner = terrain.NoiseGenerator{
			Side:    cfg.ChunkSide,
			Seed:    cfg.Seed,
			Scale:   cfg.NoiseScale,
			Palette: palette,
		}
	default:
		return nil, fmt.Errorf("unknown generator %q", cfg.Generator)
	}

	gen, err := terrain.NewCachedGenerator(inner, cfg.CacheChunks)
	if err != nil {
		return nil, fmt.Errorf("failed to create generator cache: %w", err)
	}
	return gen, nil
}
