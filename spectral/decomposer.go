// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"log/slog"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/lvhawkes/core"
)

// Decomposer memoizes decompositions per graph identity.
//
// Concurrency:
//   - Safe for concurrent use. Concurrent first requests for the same graph
//     share one solve (singleflight); later requests hit the LRU and receive
//     the identical *Decomposition pointer.
//   - Failed solves are not cached.
type Decomposer struct {
	opts   options
	cache  *lru.Cache[uint64, *Decomposition]
	group  singleflight.Group
	logger *slog.Logger
}

// NewDecomposer builds a Decomposer; see Option for knobs.
func NewDecomposer(opts ...Option) *Decomposer {
	o := resolve(opts)
	// lru.New only fails for size <= 0, which WithCacheSize rejects.
	cache, _ := lru.New[uint64, *Decomposition](o.cacheSize)

	return &Decomposer{
		opts:   o,
		cache:  cache,
		logger: o.logger.With("component", "spectral.Decomposer"),
	}
}

// Decompose returns the cached decomposition of g, computing it on first use.
// Errors are those of the package-level Decompose.
func (d *Decomposer) Decompose(g *core.Graph) (*Decomposition, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if dec, ok := d.cache.Get(g.ID()); ok {
		d.opts.observer.ObserveCacheLookup(true)
		return dec, nil
	}
	d.opts.observer.ObserveCacheLookup(false)

	key := strconv.FormatUint(g.ID(), 10)
	v, err, shared := d.group.Do(key, func() (any, error) {
		if dec, ok := d.cache.Get(g.ID()); ok {
			return dec, nil
		}
		dec, err := decompose(g, d.opts)
		if err != nil {
			return nil, err
		}
		d.cache.Add(g.ID(), dec)

		return dec, nil
	})
	if err != nil {
		return nil, err
	}
	dec, ok := v.(*Decomposition)
	if !ok {
		return nil, fmt.Errorf("Decompose: unexpected singleflight result %T", v)
	}
	if shared {
		d.logger.Debug("shared in-flight decomposition", "graph", g.ID())
	}

	return dec, nil
}

// Forget drops g's cached decomposition, if any.
func (d *Decomposer) Forget(g *core.Graph) {
	if g != nil {
		d.cache.Remove(g.ID())
	}
}

// Len reports the number of cached decompositions.
func (d *Decomposer) Len() int { return d.cache.Len() }
