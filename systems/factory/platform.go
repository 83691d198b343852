package factory

import (
	"github.com/alindqvist/blackwhite/archetypes"
	"github.com/alindqvist/blackwhite/components"
	"github.com/alindqvist/blackwhite/shared/leveldata"
	"github.com/alindqvist/blackwhite/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlatform creates a platform that only the matching character collides with.
func CreatePlatform(world donburi.World, p leveldata.Platform) *donburi.Entry {
	platform := archetypes.Platform.Spawn(world)

	obj := resolv.NewObject(p.Position.X, p.Position.Y, p.Width, p.Height, tags.SolidFor(p.WhiteOnly))
	obj.SetShape(resolv.NewRectangle(0, 0, p.Width, p.Height))
	obj.Data = platform

	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	components.Platform.SetValue(platform, components.PlatformData{
		WhiteOnly: p.WhiteOnly,
		Color:     p.Color,
	})

	addToSpace(world, obj)
	return platform
}
