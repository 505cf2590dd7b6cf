package rootcheck

import (
	"sync"

	"go.trai.ch/tfroot/internal/core/domain"
	"go.trai.ch/tfroot/internal/core/ports"
)

// verdict is the outcome of answering a query from the cache alone.
type verdict int

const (
	verdictUnknown verdict = iota
	verdictRoot
	verdictNotRoot
)

// cache holds classifications keyed by canonical path.
//
// Entries are insert-only: the first classification stored for a path is kept for the
// lifetime of the cache. One mutex covers both inference and batch inserts, so a reader
// never observes half of a workspace's mapping roots.
type cache struct {
	mu      sync.Mutex
	entries map[string]domain.Classification
	matcher ports.PathMatcher
}

func newCache(matcher ports.PathMatcher) *cache {
	return &cache{
		entries: make(map[string]domain.Classification),
		matcher: matcher,
	}
}

// infer answers a query for path from the cached entries.
//
// A path at or below a mapping root is not a root unless it is that root. A path at or
// above a path without a workspace has no workspace either.
func (c *cache) infer(path string) verdict {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cls, ok := c.entries[path]; ok {
		if cls == domain.MappingRoot {
			return verdictRoot
		}
		return verdictNotRoot
	}

	covered := false
	for known, cls := range c.entries {
		switch cls {
		case domain.MappingRoot:
			// Exact hits were answered above, so containment here means strictly below.
			if c.matcher.IsUnder(path, known) {
				covered = true
			}
		case domain.NotUnderVCS:
			if c.matcher.IsUnder(known, path) {
				covered = true
			}
		}
	}
	if covered {
		return verdictNotRoot
	}

	return verdictUnknown
}

// store inserts every path with the given classification in one critical section.
// Paths that are already classified keep their classification.
func (c *cache) store(cls domain.Classification, paths ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, p := range paths {
		if _, exists := c.entries[p]; exists {
			continue
		}
		c.entries[p] = cls
	}
}

func (c *cache) lookup(path string) (domain.Classification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cls, ok := c.entries[path]
	return cls, ok
}

func (c *cache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
