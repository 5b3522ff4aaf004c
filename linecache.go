package lazygrid

// DefaultLineCachePruneAfter is the number of layout passes a line-size
// entry survives without being observed.
const DefaultLineCachePruneAfter = 120

// lineKey identifies a line by the key of its first item, so entries follow
// the line when items before it are inserted or removed.
type lineKey struct {
	first Key
}

type lineEntry struct {
	size int
	seen uint64
}

// lineSizeCache remembers the last measured size of recently seen lines.
type lineSizeCache struct {
	entries    map[lineKey]lineEntry
	pass       uint64
	pruneAfter uint64
}

func newLineSizeCache(pruneAfter int) *lineSizeCache {
	return &lineSizeCache{
		entries:    make(map[lineKey]lineEntry),
		pruneAfter: uint64(max(1, pruneAfter)),
	}
}

// beginPass starts a new generation.
func (c *lineSizeCache) beginPass() {
	c.pass++
}

// observe records size for the line starting with first and returns the
// previously cached size. known is false on the first observation.
func (c *lineSizeCache) observe(first Key, size int) (previous int, known bool) {
	k := lineKey{first: first}
	e, known := c.entries[k]
	c.entries[k] = lineEntry{size: size, seen: c.pass}
	return e.size, known
}

// prune drops entries unseen for pruneAfter passes. Sweeps run every
// pruneAfter/8 passes and return the number of entries dropped.
func (c *lineSizeCache) prune() int {
	interval := max(1, c.pruneAfter/8)
	if c.pass%interval != 0 {
		return 0
	}
	dropped := 0
	for k, e := range c.entries {
		if c.pass-e.seen >= c.pruneAfter {
			delete(c.entries, k)
			dropped++
		}
	}
	return dropped
}

func (c *lineSizeCache) reset() {
	clear(c.entries)
}

func (c *lineSizeCache) len() int {
	return len(c.entries)
}
