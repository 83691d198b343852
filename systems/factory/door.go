package factory

import (
	"github.com/alindqvist/blackwhite/archetypes"
	"github.com/alindqvist/blackwhite/components"
	"github.com/alindqvist/blackwhite/shared/leveldata"
	"github.com/alindqvist/blackwhite/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Door trigger area, anchored at the door point.
const (
	DoorWidth  = 25
	DoorHeight = 40
)

// CreateDoor creates the level exit with collision detection
func CreateDoor(world donburi.World, at leveldata.Point) *donburi.Entry {
	door := archetypes.Door.Spawn(world)

	obj := resolv.NewObject(at.X, at.Y, DoorWidth, DoorHeight, tags.ResolvDoor)
	obj.SetShape(resolv.NewRectangle(0, 0, DoorWidth, DoorHeight))
	obj.Data = door

	components.Object.SetValue(door, components.ObjectData{Object: obj})
	components.Door.SetValue(door, components.DoorData{X: at.X, Y: at.Y})

	addToSpace(world, obj)
	return door
}
