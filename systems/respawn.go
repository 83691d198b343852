package systems

import (
	"github.com/alindqvist/blackwhite/components"
	"github.com/alindqvist/blackwhite/tags"
	"github.com/yohamta/donburi"
)

// ResetCharacters moves both characters back to the spawn points of the
// current level.
func ResetCharacters(world donburi.World) {
	levelEntry, ok := components.Level.First(world)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	tags.Player.Each(world, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		obj := components.Object.Get(e)

		spawn := level.Table.Spawn(level.ID, player.White)
		obj.X = spawn.X
		obj.Y = spawn.Y
		obj.Update()
	})
}
