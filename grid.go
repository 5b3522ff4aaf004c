package lazygrid

import (
	"fmt"
	"sync"

	"github.com/grindlemire/lazygrid/internal/layout"
	"github.com/grindlemire/lazygrid/internal/span"
	"go.uber.org/zap"
)

// Grid lays out an item source as a lazily measured grid. Only lines that
// intersect the viewport, plus retained ones, are measured on each pass.
//
// Layout must not be called concurrently for one Grid. The other methods
// are safe to call from any goroutine and observe committed state only.
type Grid struct {
	mu     sync.Mutex
	source ItemSource
	log    *zap.Logger

	// Configuration, fixed after New.
	orientation           layout.Orientation
	slotPolicy            SlotPolicy
	mainArrangement       layout.Arrangement
	crossArrangement      layout.Arrangement
	padding               layout.Edges
	reverseLayout         bool
	direction             layout.LayoutDirection
	beyondBoundsLineCount int
	onStartExpand         func(expansion int)
	prefetchEnabled       bool

	spans      *span.Provider
	lineCache  *lineSizeCache
	sizes      *contentSizeTracker
	state      scrollState
	position   ScrollPosition
	pinned     []int
	pins       map[Key]*pinEntry
	prefetch   *PrefetchQueue
	placements *PlacementQueue

	// Inputs of the last pass, to detect what changed.
	lastSlots      Slots
	lastCrossSize  int
	lastCount      int
	lastCustom     bool
	spansDirty     bool
	spanVersion    uint64
	lineCount      int
	lineCountValid bool

	last             *RealizedLayout
	lastPrefetchLine int
	scrollDirection  int
	passes           uint64
}

// New creates a grid over source.
func New(source ItemSource, opts ...Option) (*Grid, error) {
	if source == nil {
		return nil, ErrNilSource
	}

	g := &Grid{
		source:           source,
		log:              Logger(),
		orientation:      layout.Vertical,
		slotPolicy:       Count(1),
		prefetchEnabled:  true,
		spans:            span.NewProvider(),
		lineCache:        newLineSizeCache(DefaultLineCachePruneAfter),
		sizes:            newContentSizeTracker(),
		pins:             make(map[Key]*pinEntry),
		placements:       NewPlacementQueue(defaultPlacementQueueSize),
		lastCount:        -1,
		lastCrossSize:    -1,
		lastPrefetchLine: -1,
		scrollDirection:  1,
	}

	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	g.prefetch = newPrefetchQueue(source)
	return g, nil
}

// ScrollBy adds delta to the pending scroll consumed by the next Layout.
// Positive values scroll forward.
func (g *Grid) ScrollBy(delta int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state.pending += delta
}

// ScrollToItem anchors the next Layout at index with the given offset into
// its line, dropping any pending scroll.
func (g *Grid) ScrollToItem(index, offset int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state.scrollTo(index, offset)
}

// SetDragging tells the grid whether a user-driven scroll is in progress.
// Line growth while dragging moves content instead of being corrected.
func (g *Grid) SetDragging(dragging bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state.dragging = dragging
}

// InvalidateSpans must be called when item spans change without the item
// count changing, unless the source implements [SpanVersioner].
func (g *Grid) InvalidateSpans() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.spansDirty = true
}

// ScrollPosition returns the anchor committed by the last Layout.
func (g *Grid) ScrollPosition() ScrollPosition {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.position
}

// LastLayout returns the result of the last Layout, or nil.
func (g *Grid) LastLayout() *RealizedLayout {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.last
}

// Placements returns the queue of placement deltas filled by Layout.
func (g *Grid) Placements() *PlacementQueue {
	return g.placements
}

// Prefetch returns the queue of prefetch requests scheduled by Layout.
func (g *Grid) Prefetch() *PrefetchQueue {
	return g.prefetch
}

// Layout measures and places the grid within c. The scrolling axis of c must
// be bounded, and so must the cross axis since slots are resolved against
// it. Use tight constraints for the main-axis arrangement to have spare
// space to distribute.
func (g *Grid) Layout(c layout.Constraints) (*RealizedLayout, error) {
	g.mu.Lock()
	result, expansion, err := g.layout(c)
	hook := g.onStartExpand
	g.mu.Unlock()
	if err != nil {
		return nil, err
	}

	if hook != nil && expansion != 0 {
		hook(expansion)
	}
	return result, nil
}

type contentPadding struct {
	start, top           int
	horizontal, vertical int
	before, after        int
}

// resolvePadding maps the content padding onto the main axis. Reverse layout
// swaps which side comes before the content.
func (g *Grid) resolvePadding() contentPadding {
	if g.padding.IsZero() {
		return contentPadding{}
	}
	p := contentPadding{
		top:        g.padding.Top,
		horizontal: g.padding.Horizontal(),
		vertical:   g.padding.Vertical(),
	}
	var end int
	if g.orientation == layout.Vertical {
		p.start, end = g.padding.Left, g.padding.Right
	} else {
		p.start, end = g.padding.Start(g.direction), g.padding.End(g.direction)
	}

	switch {
	case g.orientation == layout.Vertical && !g.reverseLayout:
		p.before = g.padding.Top
	case g.orientation == layout.Vertical:
		p.before = g.padding.Bottom
	case !g.reverseLayout:
		p.before = p.start
	default:
		p.before = end
	}
	mainPadding := p.vertical
	if g.orientation == layout.Horizontal {
		mainPadding = p.horizontal
	}
	p.after = mainPadding - p.before
	return p
}

func (g *Grid) layout(c layout.Constraints) (*RealizedLayout, int, error) {
	vertical := g.orientation == layout.Vertical
	if (vertical && !c.HasBoundedHeight()) || (!vertical && !c.HasBoundedWidth()) {
		return nil, 0, fmt.Errorf("%w: %s grid measured with %s", ErrInfiniteMainAxis, g.orientation, c)
	}
	if (vertical && !c.HasBoundedWidth()) || (!vertical && !c.HasBoundedHeight()) {
		return nil, 0, fmt.Errorf("%w: %s grid measured with %s", ErrInfiniteCrossAxis, g.orientation, c)
	}

	// Phase 1: resolving padding, slots and spans.
	pad := g.resolvePadding()
	content := c.Offset(-pad.horizontal, -pad.vertical)
	mainAvailable := c.MaxHeight - pad.vertical
	crossAvailable := c.MaxWidth - pad.horizontal
	if !vertical {
		mainAvailable, crossAvailable = c.MaxWidth-pad.horizontal, c.MaxHeight-pad.vertical
	}

	slots := ResolveSlots(g.slotPolicy, crossAvailable, g.crossArrangement)
	count := max(0, g.source.Count())
	g.syncSpans(slots, crossAvailable, count)

	// Phase 2: resolving the anchor.
	index, offset, reanchored := g.state.resolve(g.source, count)
	if reanchored {
		g.log.Debug("anchor past the end, re-anchoring",
			zap.Int("item_count", count),
			zap.Int("anchor", index))
	}
	anchorLine := 0
	if count > 0 && slots.Len() > 0 {
		anchorLine = g.spans.LineIndexOf(index)
	}

	// Phase 3: measuring, retrying without consuming scroll on growth.
	g.passes++
	g.lineCache.beginPass()
	rec := &reconciler{cache: g.lineCache, sizes: g.sizes}
	params := g.measureParams(pad, content, mainAvailable, slots, count, rec)
	params.firstVisibleLineIndex = anchorLine
	params.firstVisibleLineScrollOffset = offset
	params.scrollDelta = g.state.pending

	res := measureGrid(params)
	growth := rec.take()
	allGrowth := growth
	retried := false
	if !g.state.dragging && rec.shouldRetry(growth, res.consumedScroll) {
		g.sizes.invalidate()
		g.log.Debug("line growth, retrying without consuming scroll",
			zap.Int("lines", len(growth)),
			zap.Int("pending", g.state.pending))
		params.scrollDelta = 0
		res = measureGrid(params)
		growth = rec.take()
		allGrowth = append(allGrowth, growth...)
		retried = true
	}
	expansion := 0
	if !g.state.dragging && len(allGrowth) > 0 {
		g.sizes.invalidate()
		expansion = startExpansion(allGrowth, anchorLine)
	}

	// Phase 4: committing.
	if !retried {
		g.state.pending = 0
	}
	switch {
	case !res.isEmpty():
		g.state.commit(res.firstVisibleLine, res.firstVisibleLineScrollOffset)
	case count == 0:
		g.state.commit(nil, 0)
	}

	result := g.realize(c, pad, slots, count, &res)
	result.StartExpansion = expansion
	result.Growth = allGrowth
	result.Retried = retried
	result.Reanchored = reanchored

	if g.last != nil {
		diffPlacements(g.placements, g.last.Placements, result.Placements, g.scrollShift(result.ConsumedScroll))
	}
	g.schedulePrefetch(&res, slots, count)

	if dropped := g.lineCache.prune(); dropped > 0 {
		g.log.Debug("pruned line cache",
			zap.Int("dropped", dropped),
			zap.Int("remaining", g.lineCache.len()))
	}

	g.log.Debug("layout pass",
		zap.Uint64("pass", g.passes),
		zap.Int("first_line", result.FirstVisibleLineIndex),
		zap.Int("offset", result.FirstVisibleLineScrollOffset),
		zap.Int("lines", len(result.Lines)),
		zap.Int("placed", len(result.Placements)),
		zap.Int("consumed", result.ConsumedScroll))

	g.last = result
	return result, expansion, nil
}

func (g *Grid) measureParams(pad contentPadding, content layout.Constraints, mainAvailable int, slots Slots, count int, rec *reconciler) measureParams {
	visualOffset := layout.Point{X: pad.start, Y: pad.top}
	if g.reverseLayout && mainAvailable <= 0 {
		// Paddings exceed the viewport: the content collapses to zero and
		// is moved towards the start.
		if g.orientation == layout.Vertical {
			visualOffset.Y += mainAvailable
		} else {
			visualOffset.X += mainAvailable
		}
	}
	geometry := &itemGeometry{
		orientation:   g.orientation,
		reverseLayout: g.reverseLayout,
		direction:     g.direction,
		beforePadding: pad.before,
		afterPadding:  pad.after,
		visualOffset:  visualOffset,
	}

	items := &itemProvider{source: g.source, newItem: newItemFactory(geometry)}
	lines := &lineProvider{
		orientation:       g.orientation,
		slots:             slots,
		itemCount:         count,
		spaceBetweenLines: g.mainArrangement.Spacing,
		items:             items,
		spans:             g.spans,
		newLine:           newLineFactory(g.orientation, slots),
		observe:           rec.observe,
	}

	return measureParams{
		itemCount:             count,
		slotsPerLine:          slots.Len(),
		lines:                 lines,
		items:                 items,
		mainAxisAvailableSize: mainAvailable,
		beforeContentPadding:  pad.before,
		afterContentPadding:   pad.after,
		spaceBetweenLines:     g.mainArrangement.Spacing,
		constraints:           content,
		orientation:           g.orientation,
		mainArrangement:       g.mainArrangement,
		reverseLayout:         g.reverseLayout,
		pinnedItems:           g.pinnedIndices(count),
		beyondBoundsLineCount: g.beyondBoundsLineCount,
	}
}

// syncSpans pushes the pass's slots and items into the span provider and
// drops size caches whose line indices no longer apply.
func (g *Grid) syncSpans(slots Slots, crossAvailable, count int) {
	custom := hasCustomSpans(g.source)
	if slots.Len() != g.spans.SlotsPerLine() || crossAvailable != g.lastCrossSize {
		g.lineCache.reset()
		g.sizes.reset()
		g.lineCountValid = false
		g.lastCrossSize = crossAvailable
	}
	if count != g.lastCount || custom != g.lastCustom {
		if count < g.lastCount {
			g.log.Debug("item count shrank",
				zap.Int("from", g.lastCount),
				zap.Int("to", count))
		}
		g.sizes.reset()
		g.lineCountValid = false
		g.lastCount, g.lastCustom = count, custom
	}
	if v, ok := g.source.(SpanVersioner); ok {
		if version := v.SpanVersion(); version != g.spanVersion {
			g.log.Debug("spans changed",
				zap.Uint64("from", g.spanVersion),
				zap.Uint64("to", version))
			g.spanVersion = version
			g.spansDirty = true
		}
	}
	if g.spansDirty {
		g.spans.Invalidate()
		g.sizes.reset()
		g.lineCountValid = false
		g.spansDirty = false
	}

	g.spans.SetSlotsPerLine(slots.Len())
	g.spans.SetItems(count, g.source.Span, custom)
	g.lastSlots = slots
}

func (g *Grid) lines() int {
	if !g.lineCountValid {
		g.lineCount = g.spans.LineCount()
		g.lineCountValid = true
	}
	return g.lineCount
}

// realize converts a measure result into the public layout and updates the
// committed position.
func (g *Grid) realize(c layout.Constraints, pad contentPadding, slots Slots, count int, res *measureResult) *RealizedLayout {
	size := c.Constrain(layout.Size{Width: res.layoutWidth + pad.horizontal, Height: res.layoutHeight + pad.vertical})
	width, height := size.Width, size.Height

	r := &RealizedLayout{
		Width:               width,
		Height:              height,
		Orientation:         g.orientation,
		ConsumedScroll:      res.consumedScroll,
		PendingScroll:       g.state.pending,
		CanScrollForward:    res.canScrollForward,
		Slots:               slots,
		SlotsPerLine:        slots.Len(),
		ViewportStartOffset: res.viewportStartOffset,
		ViewportEndOffset:   res.viewportEndOffset,
		TotalItemsCount:     count,
	}

	r.Placements = make([]Placement, len(res.items))
	for i, it := range res.items {
		r.Placements[i] = Placement{
			Index:       it.Index,
			Key:         it.Key,
			ContentType: it.ContentType,
			Rect:        it.rect(width),
			Row:         it.Row,
			Column:      it.Column,
			Handle:      it.Placeable.Handle,
			Retained:    it.retained,
		}
	}
	r.Lines = make([]LineInfo, 0, len(res.visibleLines))
	for _, l := range res.visibleLines {
		r.Lines = append(r.Lines, LineInfo{
			Index:          l.Index,
			FirstItemIndex: l.Items[0].Index,
			ItemCount:      len(l.Items),
			MainAxisOffset: g.orientation.MainOf(l.Items[0].offset),
			MainAxisSize:   l.MainAxisSize,
		})
	}

	total, estimated := 0, false
	if slots.Len() > 0 {
		total, estimated = g.sizes.total(g.lines())
	}
	r.TotalMainAxisSize = total + pad.before + pad.after
	r.TotalSizeEstimated = estimated

	if res.firstVisibleLine != nil {
		r.FirstVisibleItemIndex = res.firstVisibleLine.Items[0].Index
		r.FirstVisibleLineIndex = res.firstVisibleLine.Index
		r.FirstVisibleLineScrollOffset = res.firstVisibleLineScrollOffset
		r.CanScrollBackward = r.FirstVisibleLineIndex > 0 || r.FirstVisibleLineScrollOffset > 0
		g.position = ScrollPosition{
			FirstVisibleItemIndex:        r.FirstVisibleItemIndex,
			FirstVisibleLineIndex:        r.FirstVisibleLineIndex,
			FirstVisibleLineScrollOffset: r.FirstVisibleLineScrollOffset,
			EstimatedOffset:              g.sizes.average()*r.FirstVisibleLineIndex + r.FirstVisibleLineScrollOffset,
		}
	} else if count == 0 {
		g.position = ScrollPosition{}
	}
	return r
}

// scrollShift returns how far placements move on screen when consumed
// pixels of scroll are applied.
func (g *Grid) scrollShift(consumed int) layout.Point {
	move := -consumed
	if g.reverseLayout {
		move = -move
	}
	if g.orientation == layout.Horizontal && g.direction == layout.RTL {
		move = -move
	}
	return g.orientation.Point(move, 0)
}

// schedulePrefetch queues the line just past the retained window in the
// direction of the last scroll.
func (g *Grid) schedulePrefetch(res *measureResult, slots Slots, count int) {
	if !g.prefetchEnabled || res.isEmpty() {
		return
	}
	if dir := sign(res.consumedScroll); dir != 0 {
		g.scrollDirection = dir
	}
	first := res.visibleLines[0].Index - 1 - g.beyondBoundsLineCount
	last := res.visibleLines[len(res.visibleLines)-1].Index + 1 + g.beyondBoundsLineCount

	target := last
	if g.scrollDirection < 0 {
		target = first
	}
	var reqs []PrefetchRequest
	if target != g.lastPrefetchLine {
		reqs = planPrefetch(g.spans, slots, g.orientation, g.source, target)
		g.lastPrefetchLine = target
	}
	g.prefetch.schedule(first, last, count, reqs)
}
