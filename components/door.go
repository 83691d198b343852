package components

import "github.com/yohamta/donburi"

type DoorData struct {
	X, Y float64
}

var Door = donburi.NewComponentType[DoorData]()
