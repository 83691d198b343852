package assets

import (
	"embed"

	"github.com/alindqvist/blackwhite/shared/leveldata"
)

var (
	//go:embed all:levels
	LevelsFS embed.FS
)

// LevelsDir is the directory of the level TMX files inside LevelsFS.
const LevelsDir = "levels"

// LoadLevelTable builds a level table from the embedded TMX files.
func LoadLevelTable() (*leveldata.Table, error) {
	return leveldata.LoadTable(LevelsFS, LevelsDir)
}
