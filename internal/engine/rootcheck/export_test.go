package rootcheck

import "go.trai.ch/tfroot/internal/core/domain"

// CacheLen returns the number of classified paths.
func (c *Checker) CacheLen() int {
	return c.cache.len()
}

// Cached returns the stored classification for an exact canonical path.
func (c *Checker) Cached(path string) (domain.Classification, bool) {
	return c.cache.lookup(path)
}
