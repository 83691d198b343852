package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

type PlatformData struct {
	WhiteOnly bool
	Color     color.RGBA
}

var Platform = donburi.NewComponentType[PlatformData]()
