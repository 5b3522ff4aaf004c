package lazygrid

import "github.com/grindlemire/lazygrid/internal/layout"

// Key identifies an item across layout passes. Keys survive reordering and
// must be comparable; two items in the same source must not share a key.
type Key = any

// Placeable is the result of measuring one item.
type Placeable struct {
	// Size is the measured size. It should respect the constraints passed
	// to the measurement callback.
	Size layout.Size

	// Handle is an opaque value handed back unchanged in a Placement so the
	// host can find what to draw.
	Handle any
}

// ItemSource supplies the flat item sequence a grid lays out.
//
// Count, Key, ContentType and Span must not change during a layout pass.
// Measure must be synchronous, terminating and idempotent for the same
// index and constraints within one pass.
type ItemSource interface {
	Count() int
	Key(index int) Key
	ContentType(index int) any
	Span(index int) int
	Measure(index int, constraints layout.Constraints) Placeable
}

// CustomSpans is implemented by sources that know whether any item spans
// more than one slot. Sources reporting false get O(1) line lookups.
// Sources that do not implement it are assumed to have custom spans.
type CustomSpans interface {
	HasCustomSpans() bool
}

// SpanVersioner is implemented by sources whose spans can change while the
// item count stays the same. The version must change whenever any span
// does; a grid rebuilds its line assignment on the first pass that sees a
// new version.
type SpanVersioner interface {
	SpanVersion() uint64
}

func hasCustomSpans(source ItemSource) bool {
	if cs, ok := source.(CustomSpans); ok {
		return cs.HasCustomSpans()
	}
	return true
}

// defaultKey is the key of items that do not provide one. It wraps the
// index so it cannot collide with host keys.
type defaultKey struct {
	index int
}
