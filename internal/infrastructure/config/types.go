package config

// GameConfig is the root config for game.json.
// Every key has a default (see defaults.go) and can be overridden with
// SNOWFORT_<SECTION>_<KEY> environment variables.
type GameConfig struct {
	Display DisplayConfig `mapstructure:"display"`
	World   WorldConfig   `mapstructure:"world"`
	Combat  CombatConfig  `mapstructure:"combat"`
	Player  PlayerConfig  `mapstructure:"player"`
	Enemy   EnemyConfig   `mapstructure:"enemy"`
	Camera  CameraConfig  `mapstructure:"camera"`
	Audio   AudioConfig   `mapstructure:"audio"`
	Log     LogConfig     `mapstructure:"log"`
}

type DisplayConfig struct {
	Title        string `mapstructure:"title"`
	ScreenWidth  int    `mapstructure:"screenWidth"`
	ScreenHeight int    `mapstructure:"screenHeight"`
	Scale        int    `mapstructure:"scale"`
	Framerate    int    `mapstructure:"framerate"`
}

// WorldConfig configures chunk streaming and tile generation
type WorldConfig struct {
	TileSize         float64  `mapstructure:"tileSize"`       // world units per tile
	ChunkSide        int      `mapstructure:"chunkSide"`      // tiles per chunk edge
	RenderDistance   int      `mapstructure:"renderDistance"` // chunks, inclusive
	DefaultTileIndex uint32   `mapstructure:"defaultTileIndex"`
	Generator        string   `mapstructure:"generator"` // "uniform" or "noise"
	Seed             uint32   `mapstructure:"seed"`
	NoiseScale       int      `mapstructure:"noiseScale"` // lattice spacing in tiles
	Palette          []uint32 `mapstructure:"palette"`
	CacheChunks      int64    `mapstructure:"cacheChunks"`
	Tileset          string   `mapstructure:"tileset"`
	TilesetColumns   int      `mapstructure:"tilesetColumns"`
	HomeLevel        string   `mapstructure:"homeLevel"`
}

// CombatConfig configures towers and bullets
type CombatConfig struct {
	FireInterval       float64 `mapstructure:"fireInterval"` // seconds
	BulletSpeed        float64 `mapstructure:"bulletSpeed"`  // world units/sec
	CollisionThreshold float64 `mapstructure:"collisionThreshold"`
	BulletRange        float64 `mapstructure:"bulletRange"` // 0 = bullets live until they hit
	TowerSize          float64 `mapstructure:"towerSize"`
	TowerSprite        string  `mapstructure:"towerSprite"`
	BulletSprite       string  `mapstructure:"bulletSprite"`
}

type PlayerConfig struct {
	Speed  float64 `mapstructure:"speed"`
	SpawnX float64 `mapstructure:"spawnX"`
	SpawnY float64 `mapstructure:"spawnY"`
	Size   float64 `mapstructure:"size"`
	Sprite string  `mapstructure:"sprite"`
}

// EnemyConfig configures the repeating enemy spawner
type EnemyConfig struct {
	SpawnInterval float64 `mapstructure:"spawnInterval"`
	SpawnX        float64 `mapstructure:"spawnX"`
	SpawnY        float64 `mapstructure:"spawnY"`
	DriftSpeed    float64 `mapstructure:"driftSpeed"`
	Amplitude     float64 `mapstructure:"amplitude"`
	Frequency     float64 `mapstructure:"frequency"`
	MaxAlive      int     `mapstructure:"maxAlive"` // 0 = unlimited
	Sprite        string  `mapstructure:"sprite"`
}

type CameraConfig struct {
	ViewportHeight float64 `mapstructure:"viewportHeight"` // world units visible vertically at scale 1
	ZoomMin        float64 `mapstructure:"zoomMin"`
	ZoomMax        float64 `mapstructure:"zoomMax"`
	ZoomSpeed      float64 `mapstructure:"zoomSpeed"`
}

type AudioConfig struct {
	Enabled bool     `mapstructure:"enabled"`
	Stems   []string `mapstructure:"stems"`
	MutedDB float64  `mapstructure:"mutedDB"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"` // empty = stderr
	JSON       bool   `mapstructure:"json"`
	MaxSizeMB  int    `mapstructure:"maxSizeMB"`
	MaxBackups int    `mapstructure:"maxBackups"`
	MaxAgeDays int    `mapstructure:"maxAgeDays"`
}
