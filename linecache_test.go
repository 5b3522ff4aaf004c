package lazygrid

import (
	"testing"

	"github.com/grindlemire/lazygrid/internal/layout"
	"github.com/stretchr/testify/assert"
)

func TestLineSizeCache_Observe(t *testing.T) {
	c := newLineSizeCache(DefaultLineCachePruneAfter)
	c.beginPass()

	_, known := c.observe("a", 50)
	assert.False(t, known, "first observation")

	prev, known := c.observe("a", 80)
	assert.True(t, known)
	assert.Equal(t, 50, prev)

	prev, _ = c.observe("a", 30)
	assert.Equal(t, 80, prev)
	assert.Equal(t, 1, c.len())

	c.reset()
	_, known = c.observe("a", 30)
	assert.False(t, known)
}

func TestLineSizeCache_Prune(t *testing.T) {
	c := newLineSizeCache(8)

	c.beginPass()
	c.observe("old", 10)
	c.observe("kept", 10)

	for range 6 {
		c.beginPass()
		c.observe("kept", 10)
		assert.Zero(t, c.prune())
	}

	// Pass 8: "old" was seen 7 passes ago.
	c.beginPass()
	c.observe("kept", 10)
	assert.Zero(t, c.prune())

	c.beginPass()
	c.observe("kept", 10)
	assert.Equal(t, 1, c.prune())
	assert.Equal(t, 1, c.len())

	_, known := c.observe("old", 10)
	assert.False(t, known)
}

func TestGrid_PrunesLineCache(t *testing.T) {
	src := newFakeSource(3000, 50)
	g := newTestGrid(t, src, WithSlots(Count(3)), WithLineCachePruneAfter(4))
	mustLayout(t, g, layout.Tight(90, 160))
	for range 20 {
		g.ScrollBy(500)
		mustLayout(t, g, layout.Tight(90, 160))
	}
	// Each pass sees about 14 lines; only the last few passes may remain.
	assert.Less(t, g.lineCache.len(), 5*15)
}
