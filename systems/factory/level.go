package factory

import (
	"log"

	"github.com/alindqvist/blackwhite/archetypes"
	"github.com/alindqvist/blackwhite/components"
	cfg "github.com/alindqvist/blackwhite/config"
	"github.com/alindqvist/blackwhite/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// CreateLevel spawns the geometry, door and both characters of a level.
// Ids without a table row build the fallback level.
func CreateLevel(world donburi.World, table *leveldata.Table, id int) *donburi.Entry {
	lvl, known := table.Lookup(id)
	if !known {
		log.Printf("Warning: level %d has no definition, using fallback level", id)
	}

	if _, ok := components.Space.First(world); !ok {
		CreateSpace(world, cfg.C.Width, cfg.C.Height, cfg.Level.CellSize, cfg.Level.CellSize)
	}

	level := archetypes.Level.Spawn(world)
	components.Level.SetValue(level, components.LevelData{
		Table: table,
		ID:    id,
		Known: known,
	})

	var platforms, switches int
	for _, o := range lvl.Objects {
		switch o := o.(type) {
		case leveldata.Platform:
			CreatePlatform(world, o)
			platforms++
		case leveldata.Switch:
			CreateSwitch(world, o)
			switches++
		}
	}
	CreateDoor(world, lvl.Door)
	CreatePlayer(world, true, lvl.SpawnWhite)
	CreatePlayer(world, false, lvl.SpawnBlack)

	log.Printf("Loaded level %d: %d platforms, %d switches, door at (%v, %v)",
		id, platforms, switches, lvl.Door.X, lvl.Door.Y)

	return level
}

// UnloadLevel removes every level entity and empties the collision space.
// The space entity itself is kept for the next level.
func UnloadLevel(world donburi.World) {
	var space *donburi.Entry
	if e, ok := components.Space.First(world); ok {
		space = e
	}

	var doomed []donburi.Entity
	query := donburi.NewQuery(filter.Or(
		filter.Contains(components.Object),
		filter.Contains(components.Level),
	))
	query.Each(world, func(e *donburi.Entry) {
		if space != nil && e.HasComponent(components.Object) {
			components.Space.Get(space).Remove(components.Object.Get(e).Object)
		}
		doomed = append(doomed, e.Entity())
	})

	for _, entity := range doomed {
		world.Remove(entity)
	}
}
