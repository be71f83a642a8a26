package main

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/snowfort/internal/application/replay"
	"github.com/younwookim/snowfort/internal/application/system"
	"github.com/younwookim/snowfort/internal/domain/terrain"
	"github.com/younwookim/snowfort/internal/infrastructure/config"
	"github.com/younwookim/snowfort/internal/infrastructure/logging"
)

func embeddedLoader(t *testing.T) *config.Loader {
	t.Helper()
	fsys, err := fs.Sub(configFS, "configs")
	require.NoError(t, err)
	return config.NewFSLoader(fsys, "configs")
}

func TestEmbeddedConfig_Loads(t *testing.T) {
	loader := embeddedLoader(t)

	cfg, err := loader.LoadGame()
	require.NoError(t, err)
	assert.Equal(t, "uniform", cfg.World.Generator)
	assert.Equal(t, 3.0, cfg.Combat.CollisionThreshold)
	assert.Equal(t, 32, cfg.World.ChunkSide)
}

func TestLoadHomeLevel(t *testing.T) {
	loader := embeddedLoader(t)

	level, err := loadHomeLevel(loader, "home")
	require.NoError(t, err)
	assert.Equal(t, "home", level.ID)

	// bottom-left corner of the wall ring
	idx, ok := level.TileAt(terrain.TilePos{X: 10, Y: 12})
	require.True(t, ok)
	assert.Equal(t, terrain.TileIndex(5), idx)

	// the gate in the bottom wall is floor
	idx, ok = level.TileAt(terrain.TilePos{X: 15, Y: 12})
	require.True(t, ok)
	assert.Equal(t, terrain.TileIndex(4), idx)
}

func TestLoadHomeLevel_FitsHomeChunk(t *testing.T) {
	loader := embeddedLoader(t)
	cfg, err := loader.LoadGame()
	require.NoError(t, err)
	level, err := loadHomeLevel(loader, cfg.World.HomeLevel)
	require.NoError(t, err)

	index := terrain.SpatialIndex{TileSize: cfg.World.TileSize, ChunkSide: cfg.World.ChunkSide}
	inHome := 0
	for x := -64; x < 64; x++ {
		for y := -64; y < 64; y++ {
			if _, ok := level.TileAt(terrain.TilePos{X: x, Y: y}); !ok {
				continue
			}
			c, _ := index.TileToChunk(terrain.TilePos{X: x, Y: y})
			assert.Equal(t, terrain.ChunkCoord{}, c, "tile %d,%d", x, y)
			inHome++
		}
	}
	assert.Equal(t, level.Len(), inHome)
	assert.Equal(t, terrain.ChunkCoord{}, index.WorldToChunk(level.Spawn))
}

func TestLoadHomeLevel_None(t *testing.T) {
	level, err := loadHomeLevel(embeddedLoader(t), "")
	assert.NoError(t, err)
	assert.Nil(t, level)
}

func TestLoadHomeLevel_Missing(t *testing.T) {
	_, err := loadHomeLevel(embeddedLoader(t), "nowhere")
	assert.Error(t, err)
}

func TestOpenInput_Live(t *testing.T) {
	cfg := &config.GameConfig{}
	in, err := openInput("", cfg, logging.Discard())
	require.NoError(t, err)
	assert.IsType(t, system.EbitenInput{}, in)
}

func TestOpenInput_Replay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.msgpack")
	data := &replay.ReplayData{
		Version: replay.Version,
		Seed:    99,
		Level:   "home",
		DT:      1.0 / 30.0,
		Frames: []replay.FrameInput{
			{F: 0, Held: uint16(system.ActionUp)},
			{F: 1, Pressed: uint16(system.ActionPlaceTower)},
		},
	}
	require.NoError(t, replay.SaveReplay(path, data))

	cfg := &config.GameConfig{}
	cfg.World.Seed = 1
	cfg.Display.Framerate = 60

	in, err := openInput(path, cfg, logging.Discard())
	require.NoError(t, err)

	r, ok := in.(*replay.Replayer)
	require.True(t, ok)
	assert.Equal(t, 2, r.TotalFrames())
	assert.Equal(t, uint32(99), cfg.World.Seed, "replay seed wins")
	assert.Equal(t, 30, cfg.Display.Framerate)

	assert.True(t, r.Poll().IsHeld(system.ActionUp))
	assert.True(t, r.Poll().WasJustPressed(system.ActionPlaceTower))
}

func TestOpenInput_MissingFile(t *testing.T) {
	_, err := openInput(filepath.Join(t.TempDir(), "nope.msgpack"), &config.GameConfig{}, logging.Discard())
	assert.Error(t, err)
}
