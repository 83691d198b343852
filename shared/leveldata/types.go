// Package leveldata holds the level geometry, door and spawn tables for
// both characters. It has no dependencies on donburi or resolv: pure data only.
package leveldata

import "image/color"

// FallbackID is the display id of the row used for every level id that has
// no row of its own.
const FallbackID = 6

var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black = color.RGBA{A: 255}
)

// Point is a position in level space.
type Point struct {
	X, Y float64
}

// Object is an element of a level's ordered geometry list: a Platform or a Switch.
type Object interface {
	isObject()
}

// Platform is a rectangle that is solid for one character color only.
type Platform struct {
	Position      Point
	Width, Height float64
	WhiteOnly     bool
	Color         color.RGBA
}

func (Platform) isObject() {}

// NewPlatform returns a platform colored after the character it is solid for.
func NewPlatform(x, y, w, h float64, whiteOnly bool) Platform {
	return Platform{
		Position:  Point{X: x, Y: y},
		Width:     w,
		Height:    h,
		WhiteOnly: whiteOnly,
		Color:     ColorFor(whiteOnly),
	}
}

// Switch is a togglable level object. Nothing in the game toggles it yet.
type Switch struct {
	Position  Point
	Activated bool
}

func (Switch) isObject() {}

// ColorFor returns the platform color for the given solidity flag.
func ColorFor(whiteOnly bool) color.RGBA {
	if whiteOnly {
		return White
	}
	return Black
}

// Level is one row of the level table.
type Level struct {
	ID         int
	Objects    []Object
	Door       Point
	SpawnWhite Point
	SpawnBlack Point
}

// Platforms returns the level's platforms in table order.
func (l Level) Platforms() []Platform {
	var out []Platform
	for _, o := range l.Objects {
		if p, ok := o.(Platform); ok {
			out = append(out, p)
		}
	}
	return out
}

// Switches returns the level's switches in table order.
func (l Level) Switches() []Switch {
	var out []Switch
	for _, o := range l.Objects {
		if s, ok := o.(Switch); ok {
			out = append(out, s)
		}
	}
	return out
}

// Spawn returns the spawn point of the white or black character.
func (l Level) Spawn(white bool) Point {
	if white {
		return l.SpawnWhite
	}
	return l.SpawnBlack
}

// GeometryKind tags which half of a Geometry is set.
type GeometryKind int

const (
	KindObjects GeometryKind = iota
	KindDoor
)

func (k GeometryKind) String() string {
	switch k {
	case KindObjects:
		return "objects"
	case KindDoor:
		return "door"
	default:
		return "unknown"
	}
}

// Geometry is the result of a geometry lookup: either the object list or the
// door point of a level, never both.
type Geometry struct {
	Kind    GeometryKind
	Objects []Object
	Door    Point
}
