package factory

import (
	"github.com/alindqvist/blackwhite/archetypes"
	"github.com/alindqvist/blackwhite/components"
	cfg "github.com/alindqvist/blackwhite/config"
	"github.com/alindqvist/blackwhite/shared/leveldata"
	"github.com/alindqvist/blackwhite/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreatePlayer(world donburi.World, white bool, at leveldata.Point) *donburi.Entry {
	player := archetypes.Player.Spawn(world)

	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	obj := resolv.NewObject(at.X, at.Y, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player

	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Player.SetValue(player, components.PlayerData{White: white})

	addToSpace(world, obj)
	return player
}
