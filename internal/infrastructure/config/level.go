package config

// LevelConfig is the root config for authored level JSON files.
// Row 0 of each layer is the top row of the level.
type LevelConfig struct {
	ID          string                       `json:"id"`
	Name        string                       `json:"name"`
	Size        LevelSizeConfig              `json:"size"`
	Origin      TileConfig                   `json:"origin"` // world tile of the bottom-left cell
	Tileset     string                       `json:"tileset"`
	PlayerSpawn PositionConfig               `json:"playerSpawn"`
	Layers      LayersConfig                 `json:"layers"`
	TileMapping map[string]TileMappingConfig `json:"tileMapping"`
}

type LevelSizeConfig struct {
	Width  int `json:"width"`  // tiles
	Height int `json:"height"` // tiles
}

type TileConfig struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type LayersConfig struct {
	Ground []string `json:"ground"`
}

// TileMappingConfig maps a layer character to a tileset index
type TileMappingConfig struct {
	Type      string `json:"type"`
	TileIndex uint32 `json:"tileIndex"`
}
