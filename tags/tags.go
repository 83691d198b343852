package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Platform = donburi.NewTag().SetName("Platform")
	Switch   = donburi.NewTag().SetName("Switch")
	Door     = donburi.NewTag().SetName("Door")
)

// Resolv tags for collision
const (
	ResolvWhite  = "white" // solid for the white character
	ResolvBlack  = "black" // solid for the black character
	ResolvSwitch = "switch"
	ResolvDoor   = "door"
	ResolvPlayer = "player"
)

// SolidFor returns the resolv tag of geometry that blocks the given character.
func SolidFor(white bool) string {
	if white {
		return ResolvWhite
	}
	return ResolvBlack
}
