package systems

import (
	"github.com/alindqvist/blackwhite/components"
	"github.com/alindqvist/blackwhite/tags"
	"github.com/yohamta/donburi"
)

// AtDoor reports whether both characters overlap the level exit.
func AtDoor(world donburi.World) bool {
	doorEntry, ok := tags.Door.First(world)
	if !ok {
		return false
	}
	door := components.Object.Get(doorEntry).Object

	players, inside := 0, 0
	tags.Player.Each(world, func(e *donburi.Entry) {
		players++
		obj := components.Object.Get(e)
		if overlaps(obj.X, obj.Y, obj.W, obj.H, door) {
			inside++
		}
	})

	return players > 0 && inside == players
}
