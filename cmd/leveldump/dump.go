package main

import (
	"fmt"
	"image/color"
	"io"
	"text/tabwriter"

	"github.com/alindqvist/blackwhite/shared/leveldata"
	"gopkg.in/yaml.v3"
)

type errUnknownSource string

func (e errUnknownSource) Error() string {
	return fmt.Sprintf("unknown level source %q", string(e))
}

type pointDoc struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type objectDoc struct {
	Kind      string  `yaml:"kind"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Width     float64 `yaml:"width,omitempty"`
	Height    float64 `yaml:"height,omitempty"`
	WhiteOnly bool    `yaml:"whiteOnly,omitempty"`
	Color     string  `yaml:"color,omitempty"`
	Activated bool    `yaml:"activated,omitempty"`
}

type levelDoc struct {
	ID         int         `yaml:"id"`
	Fallback   bool        `yaml:"fallback,omitempty"`
	Objects    []objectDoc `yaml:"objects"`
	Door       pointDoc    `yaml:"door"`
	SpawnWhite pointDoc    `yaml:"spawnWhite"`
	SpawnBlack pointDoc    `yaml:"spawnBlack"`
}

func newLevelDoc(table *leveldata.Table, id int) levelDoc {
	l, known := table.Lookup(id)
	doc := levelDoc{
		ID:         id,
		Fallback:   !known,
		Door:       pointDoc(l.Door),
		SpawnWhite: pointDoc(l.SpawnWhite),
		SpawnBlack: pointDoc(l.SpawnBlack),
	}

	for _, o := range l.Objects {
		switch o := o.(type) {
		case leveldata.Platform:
			doc.Objects = append(doc.Objects, objectDoc{
				Kind:      "platform",
				X:         o.Position.X,
				Y:         o.Position.Y,
				Width:     o.Width,
				Height:    o.Height,
				WhiteOnly: o.WhiteOnly,
				Color:     hex(o.Color),
			})
		case leveldata.Switch:
			doc.Objects = append(doc.Objects, objectDoc{
				Kind:      "switch",
				X:         o.Position.X,
				Y:         o.Position.Y,
				Activated: o.Activated,
			})
		}
	}
	return doc
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func write(w io.Writer, format string, docs []levelDoc) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(docs); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		return writeText(w, docs)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeText(w io.Writer, docs []levelDoc) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, d := range docs {
		title := fmt.Sprintf("level %d", d.ID)
		if d.Fallback {
			title += " (fallback)"
		}
		fmt.Fprintf(tw, "%s\tdoor (%v, %v)\twhite (%v, %v)\tblack (%v, %v)\n",
			title, d.Door.X, d.Door.Y, d.SpawnWhite.X, d.SpawnWhite.Y, d.SpawnBlack.X, d.SpawnBlack.Y)
		for _, o := range d.Objects {
			switch o.Kind {
			case "platform":
				fmt.Fprintf(tw, "  platform\t(%v, %v)\t%vx%v\t%s\n", o.X, o.Y, o.Width, o.Height, o.Color)
			case "switch":
				fmt.Fprintf(tw, "  switch\t(%v, %v)\tactivated=%v\t\n", o.X, o.Y, o.Activated)
			}
		}
	}
	return tw.Flush()
}
