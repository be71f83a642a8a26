package system

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/snowfort/internal/domain/terrain"
	"github.com/younwookim/snowfort/internal/infrastructure/config"
)

// HomeLevel is the hand-made area around the spawn point.
// It answers AuthoredLevel queries for the chunk store.
type HomeLevel struct {
	ID    string
	Name  string
	Spawn mgl64.Vec2
	tiles map[terrain.TilePos]terrain.TileIndex
}

// TileAt implements AuthoredLevel
func (l *HomeLevel) TileAt(t terrain.TilePos) (terrain.TileIndex, bool) {
	idx, ok := l.tiles[t]
	return idx, ok
}

// Len returns the number of authored tiles
func (l *HomeLevel) Len() int { return len(l.tiles) }

// LoadLevel converts a LevelConfig into a HomeLevel.
// Row 0 of the ground layer is the top row, so it lands on the highest
// world tile Y. Characters without a mapping are left to the generator.
func LoadLevel(cfg *config.LevelConfig) (*HomeLevel, error) {
	height := len(cfg.Layers.Ground)
	if cfg.Size.Height > 0 && height != cfg.Size.Height {
		return nil, fmt.Errorf("level %s: ground has %d rows, size says %d", cfg.ID, height, cfg.Size.Height)
	}

	l := &HomeLevel{
		ID:    cfg.ID,
		Name:  cfg.Name,
		Spawn: mgl64.Vec2{cfg.PlayerSpawn.X, cfg.PlayerSpawn.Y},
		tiles: make(map[terrain.TilePos]terrain.TileIndex),
	}
	for row, line := range cfg.Layers.Ground {
		y := cfg.Origin.Y + height - 1 - row
		for col, char := range []rune(line) {
			if cfg.Size.Width > 0 && col >= cfg.Size.Width {
				break
			}
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok || mapping.Type == "empty" {
				continue
			}
			l.tiles[terrain.TilePos{X: cfg.Origin.X + col, Y: y}] = terrain.TileIndex(mapping.TileIndex)
		}
	}
	return l, nil
}
