// SPDX-License-Identifier: MIT
// Package: lvhawkes/builder
//
// byname.go - string-keyed constructor lookup for the CLI generator.

package builder

import (
	"fmt"
	"sort"
)

// Params carries the size knobs a named topology may read.
// N is the primary size; K is the secondary one (bipartite right side,
// grid columns, tree depth); P is the edge probability of RandomSparse.
type Params struct {
	N int
	K int
	P float64
}

var kinds = map[string]func(Params) Constructor{
	"complete":  func(p Params) Constructor { return Complete(p.N) },
	"star":      func(p Params) Constructor { return Star(p.N) },
	"path":      func(p Params) Constructor { return Path(p.N) },
	"cycle":     func(p Params) Constructor { return Cycle(p.N) },
	"wheel":     func(p Params) Constructor { return Wheel(p.N) },
	"bipartite": func(p Params) Constructor { return CompleteBipartite(p.N, p.K) },
	"grid":      func(p Params) Constructor { return Grid(p.N, p.K) },
	"tree":      func(p Params) Constructor { return Tree(p.N, p.K) },
	"random":    func(p Params) Constructor { return RandomSparse(p.N, p.P) },
}

// ByName resolves a topology name to its Constructor.
// Returns ErrUnknownKind for names outside Kinds().
func ByName(name string, p Params) (Constructor, error) {
	mk, ok := kinds[name]
	if !ok {
		return nil, fmt.Errorf("ByName(%q): %w", name, ErrUnknownKind)
	}

	return mk(p), nil
}

// Kinds lists the names ByName accepts, sorted.
func Kinds() []string {
	out := make([]string, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
