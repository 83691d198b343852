package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadEnv.
const (
	EnvWidth      = "BLACKWHITE_WIDTH"
	EnvHeight     = "BLACKWHITE_HEIGHT"
	EnvStartLevel = "BLACKWHITE_START_LEVEL"
	EnvLevelsDir  = "BLACKWHITE_LEVELS_DIR"
	EnvCellSize   = "BLACKWHITE_CELL_SIZE"
)

var envKeys = []string{EnvWidth, EnvHeight, EnvStartLevel, EnvLevelsDir, EnvCellSize}

// LoadEnv overlays the values of envFile and then the process environment on
// the global config. A missing envFile is not an error.
func LoadEnv(envFile string) error {
	vars := map[string]string{}
	if envFile != "" {
		fileVars, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read %s: %w", envFile, err)
		}
		for k, v := range fileVars {
			vars[k] = v
		}
	}
	for _, k := range envKeys {
		if v, ok := os.LookupEnv(k); ok {
			vars[k] = v
		}
	}
	return applyEnv(vars)
}

// applyEnv parses every value before assigning any, so a bad value leaves
// the globals untouched.
func applyEnv(vars map[string]string) error {
	width, height := C.Width, C.Height
	level := Level

	ints := []struct {
		key string
		dst *int
	}{
		{EnvWidth, &width},
		{EnvHeight, &height},
		{EnvStartLevel, &level.StartLevel},
		{EnvCellSize, &level.CellSize},
	}
	for _, e := range ints {
		v, ok := vars[e.key]
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", e.key, v, err)
		}
		*e.dst = n
	}

	if v, ok := vars[EnvLevelsDir]; ok {
		level.LevelsDir = v
	}

	if level.CellSize <= 0 {
		return fmt.Errorf("%s must be positive, got %d", EnvCellSize, level.CellSize)
	}

	C.Width, C.Height = width, height
	Level = level
	return nil
}
