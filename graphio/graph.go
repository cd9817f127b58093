// Package graphio reads and writes the on-disk formats lvhawkes consumes:
// edge-list graph files (.dat), per-edge graphlet orbit counts (.gfc) and
// the CSV reports a sweep produces. The computational packages never touch
// the filesystem; everything file-shaped lives here.
package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvhawkes/core"
)

const maxLineBytes = 1 << 20

// ReadGraph parses an edge-list graph:
//
//	N [anything]
//	u v [anything]
//	...
//
// The first non-comment line declares the vertex count N; every following
// line holds one undirected edge between 0-based ids. Blank lines and lines
// starting with '#' are ignored, as are extra columns.
func ReadGraph(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	n := -1
	var edges []core.Edge
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if n < 0 {
			v, err := strconv.Atoi(fields[0])
			if err != nil || v <= 0 {
				return nil, fmt.Errorf("ReadGraph: line %d: vertex count %q: %w", line, fields[0], ErrMalformed)
			}
			n = v
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("ReadGraph: line %d: want 2 ids, got %d: %w", line, len(fields), ErrMalformed)
		}
		u, err1 := strconv.Atoi(fields[0])
		v, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("ReadGraph: line %d: non-integer id: %w", line, ErrMalformed)
		}
		edges = append(edges, core.Edge{U: u, V: v})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadGraph: %w", err)
	}
	if n < 0 {
		return nil, fmt.Errorf("ReadGraph: missing vertex count: %w", ErrMalformed)
	}

	g, err := core.NewGraph(n, edges, opts...)
	if err != nil {
		return nil, fmt.Errorf("ReadGraph: %w", err)
	}

	return g, nil
}

// LoadGraph opens path and parses it with ReadGraph.
func LoadGraph(path string, opts ...core.GraphOption) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadGraph: %w", err)
	}
	defer f.Close()

	g, err := ReadGraph(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// WriteGraph serializes g in the format ReadGraph accepts: "N M" then one
// canonical edge per line.
func WriteGraph(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", g.Order(), g.Size()); err != nil {
		return fmt.Errorf("WriteGraph: %w", err)
	}
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%d %d\n", e.U, e.V); err != nil {
			return fmt.Errorf("WriteGraph: %w", err)
		}
	}

	return bw.Flush()
}
