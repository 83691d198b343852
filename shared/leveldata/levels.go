package leveldata

var builtin = mustTable(builtinLevels, builtinFallback)

// Builtin returns the level table compiled into the game.
func Builtin() *Table {
	return builtin
}

var builtinLevels = []Level{
	{
		ID: 1,
		Objects: []Object{
			NewPlatform(50, 150, 200, 12, false),
			NewPlatform(300, 250, 200, 12, false),
			NewPlatform(50, 250, 200, 12, true),
			NewPlatform(300, 150, 200, 12, true),
		},
		Door:       Point{X: 550, Y: 175},
		SpawnWhite: Point{X: 125, Y: 100},
		SpawnBlack: Point{X: 75, Y: 100},
	},
	{
		ID: 2,
		Objects: []Object{
			NewPlatform(40, 100, 50, 12, false),
			NewPlatform(250, 350, 50, 12, false),
			NewPlatform(100, 100, 50, 12, true),
			NewPlatform(310, 350, 50, 12, true),
			NewPlatform(400, 225, 50, 12, false),
			NewPlatform(460, 225, 50, 12, true),
		},
		Door:       Point{X: 575, Y: 200},
		SpawnWhite: Point{X: 125, Y: 30},
		SpawnBlack: Point{X: 65, Y: 30},
	},
	{
		ID: 3,
		Objects: []Object{
			NewPlatform(150, 100, 75, 12, true),
			NewPlatform(40, 100, 75, 12, false),
			Switch{Position: Point{X: 250, Y: 250}},
		},
		Door:       Point{X: 575, Y: 200},
		SpawnWhite: Point{X: 175, Y: 30},
		SpawnBlack: Point{X: 65, Y: 30},
	},
	{
		ID: 4,
		Objects: []Object{
			NewPlatform(30, 350, 150, 12, false),
			NewPlatform(125, 300, 150, 12, true),
			NewPlatform(400, 400, 100, 12, true),
			NewPlatform(325, 100, 40, 250, false), // wall
		},
		Door:       Point{X: 500, Y: 150},
		SpawnWhite: Point{X: 150, Y: 250},
		SpawnBlack: Point{X: 50, Y: 300},
	},
	{
		ID: 5,
		Objects: []Object{
			NewPlatform(30, 350, 550, 12, true),
			NewPlatform(100, 200, 25, 135, false),
			NewPlatform(400, 200, 25, 135, false),
		},
		Door:       Point{X: 500, Y: 250},
		SpawnWhite: Point{X: 50, Y: 300},
		SpawnBlack: Point{X: 50, Y: 250},
	},
}

var builtinFallback = Level{
	ID: FallbackID,
	Objects: []Object{
		NewPlatform(30, 300, 225, 12, true),
		NewPlatform(400, 300, 225, 12, false),
	},
	Door:       Point{X: 305, Y: 200},
	SpawnWhite: Point{X: 50, Y: 250},
	SpawnBlack: Point{X: 550, Y: 250},
}

func mustTable(levels []Level, fallback Level) *Table {
	t, err := NewTable(levels, fallback)
	if err != nil {
		panic(err)
	}
	return t
}
