package lazygrid

import "github.com/grindlemire/lazygrid/internal/layout"

// Placement is where one item goes, in container coordinates.
type Placement struct {
	Index       int
	Key         Key
	ContentType any
	Rect        layout.Rect

	// Row and Column locate the item in the grid. Both are -1 for pinned
	// items placed outside a line.
	Row, Column int

	Handle any

	// Retained marks items kept measured outside the viewport for pinning
	// or beyond-bounds retention.
	Retained bool
}

// PlacementSink receives placements in order.
type PlacementSink interface {
	Place(p Placement)
}

// PlacementFunc adapts a function to a PlacementSink.
type PlacementFunc func(p Placement)

// Place implements PlacementSink.
func (f PlacementFunc) Place(p Placement) {
	f(p)
}

// LineInfo describes a visible line in content coordinates, before reverse
// layout is applied.
type LineInfo struct {
	Index          int
	FirstItemIndex int
	ItemCount      int
	MainAxisOffset int
	MainAxisSize   int
}

// RealizedLayout is the immutable result of a layout pass.
type RealizedLayout struct {
	// Width and Height are the grid size, within the container constraints.
	Width, Height int

	Orientation layout.Orientation
	Placements  []Placement
	Lines       []LineInfo

	FirstVisibleItemIndex        int
	FirstVisibleLineIndex        int
	FirstVisibleLineScrollOffset int

	// ConsumedScroll is the part of the pending delta applied by the pass.
	// PendingScroll is what is left for the next pass; it is non-zero only
	// when a growth correction deferred the scroll.
	ConsumedScroll int
	PendingScroll  int

	CanScrollForward  bool
	CanScrollBackward bool

	// TotalMainAxisSize is the content size including padding. It is exact
	// once every line has been measured and an estimate otherwise.
	TotalMainAxisSize  int
	TotalSizeEstimated bool

	// StartExpansion is how much lines before the first visible line grew
	// without moving the viewport.
	StartExpansion int
	// Growth lists lines measured larger than their cached size.
	Growth []LineGrowth
	// Retried is set when the pass was rerun without consuming scroll.
	Retried bool
	// Reanchored is set when items were removed past the anchor and it was
	// moved to the last item.
	Reanchored bool

	Slots        Slots
	SlotsPerLine int

	ViewportStartOffset int
	ViewportEndOffset   int
	TotalItemsCount     int
}

// Place hands every placement to sink, retained items included.
func (r *RealizedLayout) Place(sink PlacementSink) {
	for _, p := range r.Placements {
		sink.Place(p)
	}
}

// VisibleItems returns the placements of the visible lines.
func (r *RealizedLayout) VisibleItems() []Placement {
	out := make([]Placement, 0, len(r.Placements))
	for _, p := range r.Placements {
		if !p.Retained {
			out = append(out, p)
		}
	}
	return out
}

// IsEmpty reports whether nothing was placed.
func (r *RealizedLayout) IsEmpty() bool {
	return len(r.Placements) == 0
}
