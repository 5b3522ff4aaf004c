package lazygrid

import "github.com/grindlemire/lazygrid/internal/layout"

// measureParams is the input of one measurement pass.
type measureParams struct {
	itemCount    int
	slotsPerLine int
	lines        *lineProvider
	items        *itemProvider

	// mainAxisAvailableSize is the viewport size minus content padding.
	mainAxisAvailableSize int
	beforeContentPadding  int
	afterContentPadding   int
	spaceBetweenLines     int

	firstVisibleLineIndex        int
	firstVisibleLineScrollOffset int
	// scrollDelta is the pending delta, positive when scrolling forward.
	scrollDelta int

	// constraints are the container constraints minus content padding.
	constraints     layout.Constraints
	orientation     layout.Orientation
	mainArrangement layout.Arrangement
	reverseLayout   bool

	pinnedItems           []int
	beyondBoundsLineCount int
}

// measureResult is the output of one measurement pass.
type measureResult struct {
	firstVisibleLine             *MeasuredLine
	firstVisibleLineScrollOffset int
	canScrollForward             bool
	consumedScroll               int

	layoutWidth, layoutHeight int
	visibleLines              []*MeasuredLine
	extraLinesBefore          []*MeasuredLine
	extraLinesAfter           []*MeasuredLine

	// items holds every positioned item: retained items before the window,
	// the visible lines, then retained items after it.
	items []*MeasuredItem

	viewportStartOffset int
	viewportEndOffset   int
	totalItemsCount     int
}

func (r *measureResult) isEmpty() bool {
	return len(r.visibleLines) == 0
}

// measureGrid realizes the lines intersecting the viewport around the anchor
// after applying the pending scroll delta.
func measureGrid(p measureParams) measureResult {
	maxOffset := p.mainAxisAvailableSize
	if p.itemCount <= 0 || p.slotsPerLine <= 0 {
		return measureResult{
			layoutWidth:         p.constraints.MinWidth,
			layoutHeight:        p.constraints.MinHeight,
			viewportStartOffset: -p.beforeContentPadding,
			viewportEndOffset:   maxOffset + p.afterContentPadding,
		}
	}

	currentFirstLineIndex := p.firstVisibleLineIndex
	currentFirstLineScrollOffset := p.firstVisibleLineScrollOffset

	// scrollDelta follows the offset arithmetic: positive moves content
	// forward on screen, i.e. scrolls backward.
	requested := -p.scrollDelta
	scrollDelta := requested
	currentFirstLineScrollOffset -= scrollDelta

	// Phase 1: fixing the anchor when scrolled before the first line.
	if currentFirstLineIndex == 0 && currentFirstLineScrollOffset < 0 {
		scrollDelta += currentFirstLineScrollOffset
		currentFirstLineScrollOffset = 0
	}

	var visibleLines []*MeasuredLine

	// Lines are composed into the before-padding area too.
	minOffset := -p.beforeContentPadding
	if p.spaceBetweenLines < 0 {
		minOffset += p.spaceBetweenLines
	}
	currentFirstLineScrollOffset += minOffset

	// Phase 2: measuring backward while the offset is negative.
	for currentFirstLineScrollOffset < 0 && currentFirstLineIndex > 0 {
		previous := currentFirstLineIndex - 1
		line := p.lines.line(previous)
		visibleLines = prepend(visibleLines, line)
		currentFirstLineScrollOffset += line.MainAxisSizeWithSpacings
		currentFirstLineIndex = previous
	}
	// Scrolled backward past the first line: not everything was consumed.
	if currentFirstLineScrollOffset < minOffset {
		scrollDelta += currentFirstLineScrollOffset - minOffset
		currentFirstLineScrollOffset = minOffset
	}
	currentFirstLineScrollOffset -= minOffset

	// Phase 3: filling forward until the viewport and after padding are
	// covered.
	index := currentFirstLineIndex
	maxMainAxis := max(0, maxOffset+p.afterContentPadding)
	currentMainAxisOffset := -currentFirstLineScrollOffset

	// Lines composed while going backward come first.
	kept := visibleLines[:0]
	for _, line := range visibleLines {
		if currentMainAxisOffset >= maxMainAxis {
			continue
		}
		index++
		currentMainAxisOffset += line.MainAxisSizeWithSpacings
		kept = append(kept, line)
	}
	visibleLines = kept

	// At least one line is kept even when everything is offscreen, which
	// happens when the padding exceeds the viewport.
	for index < p.itemCount && (currentMainAxisOffset < maxMainAxis || currentMainAxisOffset <= 0 || len(visibleLines) == 0) {
		line := p.lines.line(index)
		if line.IsEmpty() {
			break
		}
		currentMainAxisOffset += line.MainAxisSizeWithSpacings
		if currentMainAxisOffset <= minOffset && line.lastItemIndex() != p.itemCount-1 {
			// Fully above the start: advance the anchor.
			currentFirstLineIndex = index + 1
			currentFirstLineScrollOffset -= line.MainAxisSizeWithSpacings
		} else {
			visibleLines = append(visibleLines, line)
		}
		index++
	}

	// Phase 4: content ended before the viewport did, scroll back by the
	// shortfall if earlier lines exist.
	if currentMainAxisOffset < maxOffset {
		toScrollBack := maxOffset - currentMainAxisOffset
		currentFirstLineScrollOffset -= toScrollBack
		currentMainAxisOffset += toScrollBack
		for currentFirstLineScrollOffset < p.beforeContentPadding && currentFirstLineIndex > 0 {
			previous := currentFirstLineIndex - 1
			line := p.lines.line(previous)
			visibleLines = prepend(visibleLines, line)
			currentFirstLineScrollOffset += line.MainAxisSizeWithSpacings
			currentFirstLineIndex = previous
		}
		scrollDelta += toScrollBack
		if currentFirstLineScrollOffset < 0 {
			scrollDelta += currentFirstLineScrollOffset
			currentMainAxisOffset += currentFirstLineScrollOffset
			currentFirstLineScrollOffset = 0
		}
	}

	// The delta actually consumed. It can differ from the request when
	// content ran out or when lines changed size.
	consumed := requested
	if sign(requested) == sign(scrollDelta) && abs(requested) >= abs(scrollDelta) {
		consumed = scrollDelta
	}

	if len(visibleLines) == 0 {
		return measureResult{
			layoutWidth:         p.constraints.MinWidth,
			layoutHeight:        p.constraints.MinHeight,
			viewportStartOffset: -p.beforeContentPadding,
			viewportEndOffset:   maxOffset + p.afterContentPadding,
			totalItemsCount:     p.itemCount,
		}
	}

	visibleLinesScrollOffset := -currentFirstLineScrollOffset
	firstLine := visibleLines[0]

	// Lines fully inside the before padding do not count for the scroll
	// position.
	if p.beforeContentPadding > 0 || p.spaceBetweenLines < 0 {
		for i, line := range visibleLines {
			size := line.MainAxisSizeWithSpacings
			if currentFirstLineScrollOffset == 0 || size > currentFirstLineScrollOffset || i == len(visibleLines)-1 {
				break
			}
			currentFirstLineScrollOffset -= size
			firstLine = visibleLines[i+1]
		}
	}

	// Phase 5: retained lines and pinned items outside the window.
	extraBefore := extraLinesBefore(p, visibleLines[0].Index)
	extraAfter := extraLinesAfter(p, visibleLines[len(visibleLines)-1].Index)
	firstRealized := visibleLines[0].Items[0].Index
	if len(extraBefore) > 0 {
		firstRealized = extraBefore[0].Items[0].Index
	}
	lastRealized := visibleLines[len(visibleLines)-1].lastItemIndex()
	if len(extraAfter) > 0 {
		lastRealized = extraAfter[len(extraAfter)-1].lastItemIndex()
	}
	pinnedBefore, pinnedAfter := pinnedItems(p, firstRealized, lastRealized)

	layoutWidth := p.constraints.MaxWidth
	layoutHeight := p.constraints.ConstrainHeight(currentMainAxisOffset)
	if p.orientation == layout.Horizontal {
		layoutWidth = p.constraints.ConstrainWidth(currentMainAxisOffset)
		layoutHeight = p.constraints.MaxHeight
	}

	items := calculateItemsOffsets(offsetParams{
		lines:               visibleLines,
		linesBefore:         extraBefore,
		linesAfter:          extraAfter,
		itemsBefore:         pinnedBefore,
		itemsAfter:          pinnedAfter,
		layoutWidth:         layoutWidth,
		layoutHeight:        layoutHeight,
		finalMainAxisOffset: currentMainAxisOffset,
		maxOffset:           maxOffset,
		firstLineOffset:     visibleLinesScrollOffset,
		orientation:         p.orientation,
		arrangement:         p.mainArrangement,
		reverseLayout:       p.reverseLayout,
	})

	lastVisible := visibleLines[len(visibleLines)-1]
	return measureResult{
		firstVisibleLine:             firstLine,
		firstVisibleLineScrollOffset: currentFirstLineScrollOffset,
		canScrollForward:             lastVisible.lastItemIndex() < p.itemCount-1 || currentMainAxisOffset > maxOffset,
		consumedScroll:               -consumed,
		layoutWidth:                  layoutWidth,
		layoutHeight:                 layoutHeight,
		visibleLines:                 visibleLines,
		extraLinesBefore:             extraBefore,
		extraLinesAfter:              extraAfter,
		items:                        items,
		viewportStartOffset:          -p.beforeContentPadding,
		viewportEndOffset:            maxOffset + p.afterContentPadding,
		totalItemsCount:              p.itemCount,
	}
}

// extraLinesBefore measures up to beyondBoundsLineCount lines before the
// first realized line.
func extraLinesBefore(p measureParams, firstLine int) []*MeasuredLine {
	n := min(p.beyondBoundsLineCount, firstLine)
	if n <= 0 {
		return nil
	}
	lines := make([]*MeasuredLine, 0, n)
	for i := firstLine - n; i < firstLine; i++ {
		lines = append(lines, p.lines.line(i))
	}
	return retain(lines)
}

// extraLinesAfter measures up to beyondBoundsLineCount lines after the last
// realized line, stopping at the end of the content.
func extraLinesAfter(p measureParams, lastLine int) []*MeasuredLine {
	if p.beyondBoundsLineCount <= 0 {
		return nil
	}
	var lines []*MeasuredLine
	for i := lastLine + 1; i <= lastLine+p.beyondBoundsLineCount; i++ {
		line := p.lines.line(i)
		if line.IsEmpty() {
			break
		}
		lines = append(lines, line)
	}
	return retain(lines)
}

func retain(lines []*MeasuredLine) []*MeasuredLine {
	for _, l := range lines {
		for _, it := range l.Items {
			it.retained = true
		}
	}
	return lines
}

// pinnedItems measures pinned items outside [first, last], split by side and
// sorted by index.
func pinnedItems(p measureParams, first, last int) (before, after []*MeasuredItem) {
	for _, index := range p.pinnedItems {
		if index < 0 || index >= p.itemCount || (index >= first && index <= last) {
			continue
		}
		c := p.lines.itemConstraints(index)
		it := p.items.item(index, c, 0, p.lines.spans.SpanOf(index), p.spaceBetweenLines)
		it.retained = true
		if index < first {
			before = append(before, it)
		} else {
			after = append(after, it)
		}
	}
	return before, after
}

type offsetParams struct {
	lines                     []*MeasuredLine
	linesBefore, linesAfter   []*MeasuredLine
	itemsBefore, itemsAfter   []*MeasuredItem
	layoutWidth, layoutHeight int
	finalMainAxisOffset       int
	maxOffset                 int
	firstLineOffset           int
	orientation               layout.Orientation
	arrangement               layout.Arrangement
	reverseLayout             bool
}

// calculateItemsOffsets positions every realized item. When the content is
// shorter than the viewport the arrangement distributes the lines; otherwise
// lines follow each other from the first line offset.
func calculateItemsOffsets(p offsetParams) []*MeasuredItem {
	mainAxisLayoutSize := p.layoutHeight
	if p.orientation == layout.Horizontal {
		mainAxisLayoutSize = p.layoutWidth
	}
	hasSpareSpace := p.finalMainAxisOffset < min(mainAxisLayoutSize, p.maxOffset) &&
		len(p.linesBefore) == 0 && len(p.linesAfter) == 0 &&
		len(p.itemsBefore) == 0 && len(p.itemsAfter) == 0

	count := len(p.itemsBefore) + len(p.itemsAfter)
	for _, group := range [][]*MeasuredLine{p.linesBefore, p.lines, p.linesAfter} {
		for _, l := range group {
			count += len(l.Items)
		}
	}
	positioned := make([]*MeasuredItem, 0, count)

	if hasSpareSpace {
		n := len(p.lines)
		reverseAware := func(i int) int {
			if p.reverseLayout {
				return n - i - 1
			}
			return i
		}
		sizes := make([]int, n)
		for i := range sizes {
			sizes[i] = p.lines[reverseAware(i)].MainAxisSize
		}
		offsets := make([]int, n)
		p.arrangement.Arrange(mainAxisLayoutSize, sizes, offsets)

		for k := range offsets {
			i := k
			if p.reverseLayout {
				i = n - k - 1
			}
			line := p.lines[reverseAware(i)]
			offset := offsets[i]
			if p.reverseLayout {
				// Back into scroll-direction coordinates.
				offset = mainAxisLayoutSize - offset - line.MainAxisSize
			}
			positioned = append(positioned, line.position(offset, p.layoutWidth, p.layoutHeight)...)
		}
		return positioned
	}

	// Items before the window stack upward from the first line.
	current := p.firstLineOffset
	for i := len(p.linesBefore) - 1; i >= 0; i-- {
		current -= p.linesBefore[i].MainAxisSizeWithSpacings
		p.linesBefore[i].position(current, p.layoutWidth, p.layoutHeight)
	}
	for i := len(p.itemsBefore) - 1; i >= 0; i-- {
		it := p.itemsBefore[i]
		current -= it.mainAxisSizeWithSpacings
		it.position(current, 0, p.layoutWidth, p.layoutHeight, -1, -1)
	}
	positioned = append(positioned, p.itemsBefore...)
	for _, l := range p.linesBefore {
		positioned = append(positioned, l.Items...)
	}

	current = p.firstLineOffset
	for _, l := range p.lines {
		positioned = append(positioned, l.position(current, p.layoutWidth, p.layoutHeight)...)
		current += l.MainAxisSizeWithSpacings
	}
	for _, l := range p.linesAfter {
		positioned = append(positioned, l.position(current, p.layoutWidth, p.layoutHeight)...)
		current += l.MainAxisSizeWithSpacings
	}
	for _, it := range p.itemsAfter {
		it.position(current, 0, p.layoutWidth, p.layoutHeight, -1, -1)
		positioned = append(positioned, it)
		current += it.mainAxisSizeWithSpacings
	}
	return positioned
}

func prepend(lines []*MeasuredLine, line *MeasuredLine) []*MeasuredLine {
	lines = append(lines, nil)
	copy(lines[1:], lines)
	lines[0] = line
	return lines
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
