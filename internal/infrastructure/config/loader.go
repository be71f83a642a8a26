package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "SNOWFORT"

// Loader loads game configuration using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// FS returns the underlying filesystem (assets live next to configs)
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// LoadGame loads game.json on top of the built-in defaults.
// A missing game.json is not an error; defaults and env still apply.
func (l *Loader) LoadGame() (*GameConfig, error) {
	v := viper.New()
	v.SetConfigType("json")
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	data, err := fs.ReadFile(l.fsys, "game.json")
	switch {
	case err == nil:
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("failed to parse game.json: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read game.json: %w", err)
	}

	var cfg GameConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode game config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadLevel loads an authored level file
func (l *Loader) LoadLevel(name string) (*LevelConfig, error) {
	path := "levels/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", name, err)
	}

	var cfg LevelConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w", name, err)
	}

	return &cfg, nil
}

// Validate rejects configurations the simulation cannot run with
func (c *GameConfig) Validate() error {
	var errs []error
	if c.World.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("world.tileSize must be positive, got %v", c.World.TileSize))
	}
	if c.World.ChunkSide <= 0 {
		errs = append(errs, fmt.Errorf("world.chunkSide must be positive, got %d", c.World.ChunkSide))
	}
	if c.World.RenderDistance < 0 {
		errs = append(errs, fmt.Errorf("world.renderDistance must not be negative, got %d", c.World.RenderDistance))
	}
	switch c.World.Generator {
	case "uniform", "noise":
	default:
		errs = append(errs, fmt.Errorf("world.generator must be uniform or noise, got %q", c.World.Generator))
	}
	if c.Combat.FireInterval <= 0 {
		errs = append(errs, fmt.Errorf("combat.fireInterval must be positive, got %v", c.Combat.FireInterval))
	}
	if c.Combat.CollisionThreshold <= 0 {
		errs = append(errs, fmt.Errorf("combat.collisionThreshold must be positive, got %v", c.Combat.CollisionThreshold))
	}
	if c.Camera.ZoomMin <= 0 || c.Camera.ZoomMax < c.Camera.ZoomMin {
		errs = append(errs, fmt.Errorf("camera zoom range [%v, %v] is invalid", c.Camera.ZoomMin, c.Camera.ZoomMax))
	}
	if c.Display.Framerate <= 0 {
		errs = append(errs, fmt.Errorf("display.framerate must be positive, got %d", c.Display.Framerate))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid game config: %w", errors.Join(errs...))
	}
	return nil
}
