package config

// Config contains the level space dimensions
type Config struct {
	Width  int
	Height int
}

// PlayerConfig contains the character collision box
type PlayerConfig struct {
	CollisionWidth  float64
	CollisionHeight float64
}

// LevelConfig contains level loading configuration
type LevelConfig struct {
	StartLevel int    // Level id loaded first
	LevelsDir  string // Directory of level TMX files, empty = built-in table
	CellSize   int    // resolv space cell size in pixels
}

var C *Config
var Player PlayerConfig
var Level LevelConfig

func init() {
	C = &Config{
		Width:  640,
		Height: 480,
	}

	Player = PlayerConfig{
		CollisionWidth:  20,
		CollisionHeight: 30,
	}

	Level = LevelConfig{
		StartLevel: 1,
		LevelsDir:  "",
		CellSize:   16,
	}
}
