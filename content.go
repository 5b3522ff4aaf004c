package lazygrid

import (
	"sort"
	"sync/atomic"

	"github.com/grindlemire/lazygrid/internal/layout"
)

// ItemsSpec describes a run of items added to a [Content]. Every callback
// receives the index local to the run. Nil callbacks fall back to defaults:
// index-derived keys, span 1 and a nil content type. Measure is required.
type ItemsSpec struct {
	Key         func(i int) Key
	Span        func(i int) int
	ContentType func(i int) any
	Measure     func(i int, constraints layout.Constraints) Placeable
}

type interval struct {
	start int
	count int
	spec  ItemsSpec
}

// Content is an [ItemSource] assembled from runs of items, in the order they
// were added.
type Content struct {
	intervals []interval
	count     int
	custom    bool
	version   atomic.Uint64
}

// NewContent returns an empty Content.
func NewContent() *Content {
	return &Content{}
}

// Item adds a single item.
func (c *Content) Item(spec ItemsSpec) *Content {
	return c.Items(1, spec)
}

// Items adds count items described by spec. Runs with a non-positive count
// or no Measure callback are ignored.
func (c *Content) Items(count int, spec ItemsSpec) *Content {
	if count <= 0 || spec.Measure == nil {
		return c
	}
	c.intervals = append(c.intervals, interval{start: c.count, count: count, spec: spec})
	c.count += count
	if spec.Span != nil {
		c.custom = true
	}
	return c
}

// Count implements ItemSource.
func (c *Content) Count() int {
	return c.count
}

// SpansChanged records that the span of an existing item changed. Grids
// over c reassign lines on their next pass.
func (c *Content) SpansChanged() {
	c.version.Add(1)
}

// SpanVersion implements SpanVersioner.
func (c *Content) SpanVersion() uint64 {
	return c.version.Load()
}

// HasCustomSpans implements CustomSpans.
func (c *Content) HasCustomSpans() bool {
	return c.custom
}

// Key implements ItemSource.
func (c *Content) Key(index int) Key {
	iv, local := c.locate(index)
	if iv == nil || iv.spec.Key == nil {
		return defaultKey{index: index}
	}
	return iv.spec.Key(local)
}

// ContentType implements ItemSource.
func (c *Content) ContentType(index int) any {
	iv, local := c.locate(index)
	if iv == nil || iv.spec.ContentType == nil {
		return nil
	}
	return iv.spec.ContentType(local)
}

// Span implements ItemSource.
func (c *Content) Span(index int) int {
	iv, local := c.locate(index)
	if iv == nil || iv.spec.Span == nil {
		return 1
	}
	return iv.spec.Span(local)
}

// Measure implements ItemSource.
func (c *Content) Measure(index int, constraints layout.Constraints) Placeable {
	iv, local := c.locate(index)
	if iv == nil {
		return Placeable{}
	}
	return iv.spec.Measure(local, constraints)
}

// locate finds the run holding index and the index local to it.
func (c *Content) locate(index int) (*interval, int) {
	if index < 0 || index >= c.count {
		return nil, 0
	}
	i := sort.Search(len(c.intervals), func(i int) bool {
		return c.intervals[i].start+c.intervals[i].count > index
	})
	iv := &c.intervals[i]
	return iv, index - iv.start
}
