package leveldata

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"testing/fstest"
)

const tmxHeader = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="40" height="30" tilewidth="16" tileheight="16" infinite="0">
`

func platformTMX(id int, x, y, w, h float64, whiteOnly bool) string {
	return fmt.Sprintf(`  <object id="%d" class="platform" x="%v" y="%v" width="%v" height="%v">
   <properties>
    <property name="whiteOnly" type="bool" value="%v"/>
   </properties>
  </object>
`, id, x, y, w, h, whiteOnly)
}

func pointTMX(id int, name string, x, y float64) string {
	return fmt.Sprintf(`  <object id="%d" name="%s" x="%v" y="%v">
   <point/>
  </object>
`, id, name, x, y)
}

type tmxParts struct {
	objects []string
	door    string
	spawns  []string
}

func (p tmxParts) String() string {
	var b strings.Builder
	b.WriteString(tmxHeader)
	b.WriteString(" <objectgroup id=\"1\" name=\"Objects\">\n")
	for _, o := range p.objects {
		b.WriteString(o)
	}
	b.WriteString(" </objectgroup>\n")
	if p.door != "" {
		b.WriteString(" <objectgroup id=\"2\" name=\"Door\">\n")
		b.WriteString(p.door)
		b.WriteString(" </objectgroup>\n")
	}
	b.WriteString(" <objectgroup id=\"3\" name=\"PlayerSpawn\">\n")
	for _, s := range p.spawns {
		b.WriteString(s)
	}
	b.WriteString(" </objectgroup>\n")
	b.WriteString("</map>\n")
	return b.String()
}

func validLevel() tmxParts {
	return tmxParts{
		objects: []string{
			platformTMX(1, 10, 20, 100, 12, true),
			`  <object id="2" class="switch" x="250" y="250" width="16" height="16">
   <properties>
    <property name="activated" type="bool" value="true"/>
   </properties>
  </object>
`,
			platformTMX(3, 200, 20, 50, 12, false),
		},
		door:   pointTMX(4, "door", 500, 150),
		spawns: []string{pointTMX(5, SpawnWhite, 30, 40), pointTMX(6, SpawnBlack, 60, 40)},
	}
}

func TestLoadLevel(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/level7.tmx": {Data: []byte(validLevel().String())},
	}

	l, err := LoadLevel(fsys, "levels/level7.tmx", 7)
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}

	if l.ID != 7 {
		t.Fatalf("expected id 7, got %d", l.ID)
	}
	if len(l.Objects) != 3 {
		t.Fatalf("expected 3 objects, got %d", len(l.Objects))
	}
	if p, ok := l.Objects[0].(Platform); !ok || p != NewPlatform(10, 20, 100, 12, true) {
		t.Fatalf("unexpected first object %+v", l.Objects[0])
	}
	if s, ok := l.Objects[1].(Switch); !ok || !s.Activated || s.Position != (Point{X: 250, Y: 250}) {
		t.Fatalf("unexpected second object %+v", l.Objects[1])
	}
	if p, ok := l.Objects[2].(Platform); !ok || p.WhiteOnly || p.Color != Black {
		t.Fatalf("unexpected third object %+v", l.Objects[2])
	}
	if l.Door != (Point{X: 500, Y: 150}) {
		t.Fatalf("unexpected door %+v", l.Door)
	}
	if l.SpawnWhite != (Point{X: 30, Y: 40}) || l.SpawnBlack != (Point{X: 60, Y: 40}) {
		t.Fatalf("unexpected spawns %+v %+v", l.SpawnWhite, l.SpawnBlack)
	}
}

func TestLoadLevelErrors(t *testing.T) {
	noDoor := validLevel()
	noDoor.door = ""

	noBlack := validLevel()
	noBlack.spawns = noBlack.spawns[:1]

	unknown := validLevel()
	unknown.objects = append(unknown.objects, `  <object id="9" class="ladder" x="1" y="1" width="1" height="1"/>
`)

	twoDoors := validLevel()
	twoDoors.door += pointTMX(10, "door", 100, 100)

	twoWhite := validLevel()
	twoWhite.spawns = append(twoWhite.spawns, pointTMX(11, SpawnWhite, 90, 40))

	tests := []struct {
		name string
		tmx  tmxParts
		want error
	}{
		{"no_door", noDoor, ErrNoDoor},
		{"two_doors", twoDoors, ErrDuplicate},
		{"two_white_spawns", twoWhite, ErrDuplicate},
		{"missing_spawn", noBlack, ErrMissingSpawn},
		{"unknown_class", unknown, ErrUnknownObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"level1.tmx": {Data: []byte(tt.tmx.String())}}
			_, err := LoadLevel(fsys, "level1.tmx", 1)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadTable(t *testing.T) {
	data := []byte(validLevel().String())
	fsys := fstest.MapFS{
		"levels/level2.tmx":  {Data: data},
		"levels/level10.tmx": {Data: data},
		"levels/default.tmx": {Data: data},
		"levels/scratch.tmx": {Data: []byte("not a map")},
	}

	tbl, err := LoadTable(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}

	ids := tbl.IDs()
	if len(ids) != 2 || ids[0] != 2 || ids[1] != 10 {
		t.Fatalf("expected ids [2 10], got %v", ids)
	}
	if l, ok := tbl.Lookup(3); ok || l.ID != FallbackID {
		t.Fatalf("level 3 should resolve to the fallback row, got %d", l.ID)
	}
}

func TestLoadTableNoFallback(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/level1.tmx": {Data: []byte(validLevel().String())},
	}

	if _, err := LoadTable(fsys, "levels"); !errors.Is(err, ErrNoFallback) {
		t.Fatalf("expected ErrNoFallback, got %v", err)
	}
}

func TestLevelID(t *testing.T) {
	cases := map[string]int{
		"level1.tmx":  1,
		"level42.tmx": 42,
	}
	for name, want := range cases {
		if got, ok := levelID(name); !ok || got != want {
			t.Fatalf("%s: expected %d, got %d (%v)", name, want, got, ok)
		}
	}
	for _, name := range []string{"default.tmx", "levelx.tmx", "intro.tmx"} {
		if _, ok := levelID(name); ok {
			t.Fatalf("%s should not parse as a level", name)
		}
	}
}
