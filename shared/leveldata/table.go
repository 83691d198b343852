package leveldata

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

var (
	ErrDuplicateLevel = errors.New("duplicate level id")
	ErrInvalidLevelID = errors.New("level id must be positive")
	ErrEmptyLevel     = errors.New("level has no objects")
)

// Table maps level ids to level rows. Ids without a row resolve to the
// fallback row. A Table is never modified after construction, so it can be
// read from any goroutine.
type Table struct {
	levels   map[int]Level
	ids      []int
	fallback Level
}

// NewTable builds a table from the given rows and fallback row.
func NewTable(levels []Level, fallback Level) (*Table, error) {
	t := &Table{
		levels:   make(map[int]Level, len(levels)),
		ids:      make([]int, 0, len(levels)),
		fallback: cloneLevel(fallback),
	}
	if len(fallback.Objects) == 0 {
		return nil, fmt.Errorf("fallback: %w", ErrEmptyLevel)
	}

	for _, l := range levels {
		if l.ID <= 0 {
			return nil, fmt.Errorf("level %d: %w", l.ID, ErrInvalidLevelID)
		}
		if _, ok := t.levels[l.ID]; ok {
			return nil, fmt.Errorf("level %d: %w", l.ID, ErrDuplicateLevel)
		}
		if len(l.Objects) == 0 {
			return nil, fmt.Errorf("level %d: %w", l.ID, ErrEmptyLevel)
		}
		t.levels[l.ID] = cloneLevel(l)
		t.ids = append(t.ids, l.ID)
	}

	sort.Ints(t.ids)
	return t, nil
}

// Lookup returns the row for id and whether id has a row of its own.
// Unknown ids get the fallback row.
func (t *Table) Lookup(id int) (Level, bool) {
	if l, ok := t.levels[id]; ok {
		return cloneLevel(l), true
	}
	return cloneLevel(t.fallback), false
}

// Fallback returns the row used for ids without their own row.
func (t *Table) Fallback() Level {
	return cloneLevel(t.fallback)
}

// IDs returns the ids that have their own row, in ascending order.
func (t *Table) IDs() []int {
	return slices.Clone(t.ids)
}

// Geometry returns the door point of the level when wantDoor is set and its
// ordered object list otherwise.
func (t *Table) Geometry(id int, wantDoor bool) Geometry {
	l := t.row(id)
	if wantDoor {
		return Geometry{Kind: KindDoor, Door: l.Door}
	}
	return Geometry{Kind: KindObjects, Objects: slices.Clone(l.Objects)}
}

// Objects returns the ordered platforms and switches of a level.
func (t *Table) Objects(id int) []Object {
	return slices.Clone(t.row(id).Objects)
}

// Door returns the exit location of a level.
func (t *Table) Door(id int) Point {
	return t.row(id).Door
}

// Spawn returns where the white or black character starts a level.
func (t *Table) Spawn(id int, white bool) Point {
	return t.row(id).Spawn(white)
}

func (t *Table) row(id int) *Level {
	if l, ok := t.levels[id]; ok {
		return &l
	}
	return &t.fallback
}

func cloneLevel(l Level) Level {
	l.Objects = slices.Clone(l.Objects)
	return l
}

// GeometryFor looks up level geometry in the built-in table.
func GeometryFor(id int, wantDoor bool) Geometry {
	return builtin.Geometry(id, wantDoor)
}

// SpawnFor looks up a spawn point in the built-in table.
func SpawnFor(id int, white bool) Point {
	return builtin.Spawn(id, white)
}
