package systems

import (
	"github.com/alindqvist/blackwhite/components"
	cfg "github.com/alindqvist/blackwhite/config"
	"github.com/alindqvist/blackwhite/shared/leveldata"
	"github.com/alindqvist/blackwhite/systems/factory"
	"github.com/yohamta/donburi"
)

// LoadLevel replaces whatever level is in the world with level id.
func LoadLevel(world donburi.World, table *leveldata.Table, id int) *donburi.Entry {
	factory.UnloadLevel(world)
	return factory.CreateLevel(world, table, id)
}

// LoadStartLevel loads the configured start level.
func LoadStartLevel(world donburi.World, table *leveldata.Table) *donburi.Entry {
	return LoadLevel(world, table, cfg.Level.StartLevel)
}

// AdvanceLevel loads the level after the current one and returns its id.
// Past the last defined level every id builds the fallback level.
func AdvanceLevel(world donburi.World) (int, bool) {
	levelEntry, ok := components.Level.First(world)
	if !ok {
		return 0, false
	}
	level := components.Level.Get(levelEntry)
	table, next := level.Table, level.ID+1

	LoadLevel(world, table, next)
	return next, true
}

// CurrentLevel returns the id of the loaded level.
func CurrentLevel(world donburi.World) (int, bool) {
	levelEntry, ok := components.Level.First(world)
	if !ok {
		return 0, false
	}
	return components.Level.Get(levelEntry).ID, true
}
