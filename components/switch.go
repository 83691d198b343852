package components

import "github.com/yohamta/donburi"

// SwitchData is carried as loaded; no system reads or toggles it yet.
type SwitchData struct {
	Activated bool
}

var Switch = donburi.NewComponentType[SwitchData]()
