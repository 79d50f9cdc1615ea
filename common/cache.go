package common

import (
	"reflect"
	"sync"
)

// mapCache is the process-wide single-slot memo of spec.md §3/§5: it holds
// the last (from, to, options, compiled map) tuple and is reused iff the
// triple matches by value. It is an optimization only — removing it must
// not change any result, so every lookup falls through to a fresh compile
// on any mismatch rather than erroring.
type mapCache struct {
	mu      sync.Mutex
	valid   bool
	from    string
	to      string
	opts    Options
	compiled *CompiledMap
}

func newMapCache() *mapCache {
	return &mapCache{}
}

func (c *mapCache) lookup(from, to string, opts Options) (*CompiledMap, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid {
		return nil, false
	}
	if normalize(from) != c.from || normalize(to) != c.to {
		return nil, false
	}
	if !reflect.DeepEqual(opts, c.opts) {
		return nil, false
	}
	return c.compiled, true
}

func (c *mapCache) store(from, to string, opts Options, cm *CompiledMap) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = true
	c.from = normalize(from)
	c.to = normalize(to)
	c.opts = opts
	c.compiled = cm
}

// invalidate clears the cache. Called whenever a scheme is (re)registered,
// since a cached compiled map may reference its previous definition.
func (c *mapCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
	c.compiled = nil
}
