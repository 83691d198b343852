package factory

import (
	"github.com/alindqvist/blackwhite/archetypes"
	"github.com/alindqvist/blackwhite/components"
	"github.com/alindqvist/blackwhite/shared/leveldata"
	"github.com/alindqvist/blackwhite/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SwitchSize is the side of a switch's square trigger area.
const SwitchSize = 16

func CreateSwitch(world donburi.World, s leveldata.Switch) *donburi.Entry {
	sw := archetypes.Switch.Spawn(world)

	obj := resolv.NewObject(s.Position.X, s.Position.Y, SwitchSize, SwitchSize, tags.ResolvSwitch)
	obj.SetShape(resolv.NewRectangle(0, 0, SwitchSize, SwitchSize))
	obj.Data = sw

	components.Object.SetValue(sw, components.ObjectData{Object: obj})
	components.Switch.SetValue(sw, components.SwitchData{
		Activated: s.Activated,
	})

	addToSpace(world, obj)
	return sw
}
