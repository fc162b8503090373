package main

import (
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/san-kum/haot/internal/aero"
	"github.com/san-kum/haot/internal/config"
)

// parseComposition reads "species=value" pairs.
func parseComposition(args []string) (aero.Composition, error) {
	c := make(aero.Composition, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("expected species=density, got %q", arg)
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("density of %s: %w", name, err)
		}
		if _, dup := c[name]; dup {
			return nil, fmt.Errorf("species %s given twice", name)
		}
		c[name] = v
	}
	return c, nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// plottable drops the non-finite samples asciigraph cannot draw.
func plottable(s []float64) []float64 {
	out := make([]float64, 0, len(s))
	for _, v := range s {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}

// storeDir prefers the --data flag over the config's data_dir.
func storeDir(flag string, cfg *config.Config) string {
	if flag != "" {
		return flag
	}
	return cfg.DataDir
}

// exportPath is explicit when given, otherwise <dir>/<runID><ext>.
func exportPath(explicit, dir, runID, ext string) string {
	if explicit != "" {
		return explicit
	}
	return filepath.Join(dir, runID+ext)
}
