package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"gonum.org/v1/gonum/mat"
)

// OrbitCount is the number of edge-orbit columns in a .gfc line.
const OrbitCount = 46

// ReadOrbitCounts parses per-edge graphlet orbit counts into an n×46 matrix
// of per-vertex totals. Each line is
//
//	n1 n2 c0 c1 ... c45
//
// where n2 may carry trailing punctuation ("17:" or "17,"). The counts of a
// line are added to both endpoints.
func ReadOrbitCounts(r io.Reader, n int) (*mat.Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("ReadOrbitCounts: n=%d: %w", n, ErrMalformed)
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	out := mat.NewDense(n, OrbitCount, nil)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if len(fields) < 2+OrbitCount {
			return nil, fmt.Errorf("ReadOrbitCounts: line %d: %d fields, want %d: %w",
				line, len(fields), 2+OrbitCount, ErrMalformed)
		}
		u, err1 := parseID(fields[0])
		v, err2 := parseID(fields[1])
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("ReadOrbitCounts: line %d: bad id: %w", line, ErrMalformed)
		}
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("ReadOrbitCounts: line %d: id outside [0,%d): %w", line, n, ErrMalformed)
		}
		for k := 0; k < OrbitCount; k++ {
			c, err := strconv.ParseFloat(fields[2+k], 64)
			if err != nil {
				return nil, fmt.Errorf("ReadOrbitCounts: line %d col %d: %w", line, k, ErrMalformed)
			}
			out.Set(u, k, out.At(u, k)+c)
			out.Set(v, k, out.At(v, k)+c)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadOrbitCounts: %w", err)
	}

	return out, nil
}

// LoadOrbitCounts opens path and parses it with ReadOrbitCounts.
func LoadOrbitCounts(path string, n int) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadOrbitCounts: %w", err)
	}
	defer f.Close()

	m, err := ReadOrbitCounts(f, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// parseID accepts a decimal id with optional trailing punctuation.
func parseID(s string) (int, error) {
	return strconv.Atoi(strings.TrimRightFunc(s, func(r rune) bool { return !unicode.IsDigit(r) }))
}
