package main

import (
	"flag"
	"log"
	"os"

	"github.com/alindqvist/blackwhite/assets"
	"github.com/alindqvist/blackwhite/config"
	"github.com/alindqvist/blackwhite/shared/leveldata"
)

func main() {
	envFile := flag.String("env", ".env", "Environment file overlaid on the default config")
	level := flag.Int("level", 0, "Level id to dump (default: the configured start level)")
	all := flag.Bool("all", false, "Dump every level plus the fallback")
	source := flag.String("source", "builtin", "Level source: builtin or tmx")
	dir := flag.String("dir", "", "Directory of level TMX files (empty = embedded levels)")
	format := flag.String("format", "text", "Output format: text or yaml")
	flag.Parse()

	if err := config.LoadEnv(*envFile); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *dir == "" {
		*dir = config.Level.LevelsDir
	}

	table, err := loadTable(*source, *dir)
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	levelSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "level" {
			levelSet = true
		}
	})
	if !levelSet {
		*level = config.Level.StartLevel
	}
	ids := selectIDs(table, *level, *all)

	docs := make([]levelDoc, 0, len(ids))
	for _, id := range ids {
		docs = append(docs, newLevelDoc(table, id))
	}

	if err := write(os.Stdout, *format, docs); err != nil {
		log.Fatalf("Failed to write levels: %v", err)
	}
}

// selectIDs returns the ids to dump: every defined level plus the fallback
// when all is set, otherwise just level.
func selectIDs(table *leveldata.Table, level int, all bool) []int {
	if all {
		return append(table.IDs(), leveldata.FallbackID)
	}
	return []int{level}
}

func loadTable(source, dir string) (*leveldata.Table, error) {
	switch source {
	case "builtin":
		return leveldata.Builtin(), nil
	case "tmx":
		if dir == "" {
			return assets.LoadLevelTable()
		}
		return leveldata.LoadTable(os.DirFS(dir), ".")
	default:
		return nil, errUnknownSource(source)
	}
}
