package components

import (
	"github.com/alindqvist/blackwhite/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Table *leveldata.Table
	ID    int  // Requested level id
	Known bool // False when ID fell through to the fallback row
}

var Level = donburi.NewComponentType[LevelData]()
