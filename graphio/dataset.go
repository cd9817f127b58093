package graphio

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// File extensions of a dataset pair.
const (
	GraphExt  = ".dat"
	OrbitsExt = ".gfc"
)

// Entry is one graph of a dataset: <name>.dat plus, when present,
// <name>.gfc.
type Entry struct {
	Name       string
	GraphPath  string
	OrbitsPath string // empty when no graphlet file exists
}

// ScanDataset lists the graphs of a dataset sorted by name.
//
// With a graphlet directory, every <name>.gfc is paired with
// graphDir/<name>.dat (orbit files without a graph are skipped). Without
// one, every .dat under graphDir is listed with an empty OrbitsPath.
// Returns ErrEmptyDataset when nothing matched.
func ScanDataset(graphDir, graphletDir string) ([]Entry, error) {
	var out []Entry
	if graphletDir != "" {
		names, err := namesWithExt(graphletDir, OrbitsExt)
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			gp := filepath.Join(graphDir, name+GraphExt)
			if _, err := os.Stat(gp); err != nil {
				continue
			}
			out = append(out, Entry{
				Name:       name,
				GraphPath:  gp,
				OrbitsPath: filepath.Join(graphletDir, name+OrbitsExt),
			})
		}
	} else {
		names, err := namesWithExt(graphDir, GraphExt)
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			out = append(out, Entry{Name: name, GraphPath: filepath.Join(graphDir, name+GraphExt)})
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("ScanDataset(%q, %q): %w", graphDir, graphletDir, ErrEmptyDataset)
	}

	return out, nil
}

func namesWithExt(dir, ext string) ([]string, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("ScanDataset: %w", err)
	}
	var names []string
	for _, e := range ents {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ext))
	}
	sort.Strings(names)

	return names, nil
}
