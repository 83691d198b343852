package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group and class names used by the level TMX files.
const (
	GroupObjects     = "Objects"
	GroupDoor        = "Door"
	GroupPlayerSpawn = "PlayerSpawn"

	ClassPlatform = "platform"
	ClassSwitch   = "switch"

	SpawnWhite = "white"
	SpawnBlack = "black"

	FallbackFile = "default.tmx"
)

var (
	ErrNoDoor        = errors.New("no door object")
	ErrMissingSpawn  = errors.New("missing player spawn")
	ErrUnknownObject = errors.New("unknown object class")
	ErrNoFallback    = errors.New("no " + FallbackFile)
	ErrDuplicate     = errors.New("duplicate object")
)

// LoadLevel parses a TMX file into a level row with the given id. It takes an
// fs.FS so callers can pass embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string, id int) (Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return Level{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := Level{ID: id}
	var haveDoor, haveWhite, haveBlack bool

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupObjects:
			for _, o := range og.Objects {
				class := o.Class
				if class == "" {
					class = o.Type //nolint:staticcheck // older TMX files use type=
				}
				switch class {
				case ClassPlatform:
					whiteOnly := o.Properties.GetBool("whiteOnly")
					level.Objects = append(level.Objects, NewPlatform(o.X, o.Y, o.Width, o.Height, whiteOnly))
				case ClassSwitch:
					level.Objects = append(level.Objects, Switch{
						Position:  Point{X: o.X, Y: o.Y},
						Activated: o.Properties.GetBool("activated"),
					})
				default:
					return Level{}, fmt.Errorf("%s: object %d %q: %w", tmxPath, o.ID, class, ErrUnknownObject)
				}
			}
		case GroupDoor:
			for _, o := range og.Objects {
				if haveDoor {
					return Level{}, fmt.Errorf("%s: door object %d: %w", tmxPath, o.ID, ErrDuplicate)
				}
				level.Door = Point{X: o.X, Y: o.Y}
				haveDoor = true
			}
		case GroupPlayerSpawn:
			for _, o := range og.Objects {
				p := Point{X: o.X, Y: o.Y}
				switch o.Name {
				case SpawnWhite:
					if haveWhite {
						return Level{}, fmt.Errorf("%s: %s spawn %d: %w", tmxPath, SpawnWhite, o.ID, ErrDuplicate)
					}
					level.SpawnWhite = p
					haveWhite = true
				case SpawnBlack:
					if haveBlack {
						return Level{}, fmt.Errorf("%s: %s spawn %d: %w", tmxPath, SpawnBlack, o.ID, ErrDuplicate)
					}
					level.SpawnBlack = p
					haveBlack = true
				}
			}
		}
	}

	if !haveDoor {
		return Level{}, fmt.Errorf("%s: %w", tmxPath, ErrNoDoor)
	}
	if !haveWhite {
		return Level{}, fmt.Errorf("%s: %s: %w", tmxPath, SpawnWhite, ErrMissingSpawn)
	}
	if !haveBlack {
		return Level{}, fmt.Errorf("%s: %s: %w", tmxPath, SpawnBlack, ErrMissingSpawn)
	}

	return level, nil
}

// LoadTable discovers the .tmx files in dir within fsys and builds a table.
// level<N>.tmx becomes level N and default.tmx becomes the fallback row.
// Other .tmx files are ignored.
func LoadTable(fsys fs.FS, dir string) (*Table, error) {
	pattern := path.Join(dir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	sort.Strings(matches)

	var (
		levels   []Level
		fallback *Level
	)
	for _, p := range matches {
		name := path.Base(p)
		if name == FallbackFile {
			l, err := LoadLevel(fsys, p, FallbackID)
			if err != nil {
				return nil, err
			}
			fallback = &l
			continue
		}

		id, ok := levelID(name)
		if !ok {
			continue
		}
		l, err := LoadLevel(fsys, p, id)
		if err != nil {
			return nil, err
		}
		levels = append(levels, l)
	}

	if fallback == nil {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoFallback)
	}
	return NewTable(levels, *fallback)
}

// levelID parses "level12.tmx" into 12.
func levelID(name string) (int, bool) {
	stem := strings.TrimSuffix(name, ".tmx")
	num, found := strings.CutPrefix(stem, "level")
	if !found {
		return 0, false
	}
	id, err := strconv.Atoi(num)
	if err != nil {
		return 0, false
	}
	return id, true
}
