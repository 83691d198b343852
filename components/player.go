package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	White bool
}

var Player = donburi.NewComponentType[PlayerData]()
