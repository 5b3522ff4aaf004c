package span

import "sort"

// BucketSize is the number of lines between two cached line starts.
const BucketSize = 100

// Func returns the declared span of the item at index. It must be stable
// for the lifetime of the cache; call [Provider.Invalidate] when it changes.
type Func func(index int) int

// Line lists the items assigned to one line.
type Line struct {
	// FirstItemIndex is the index of the first item on the line.
	FirstItemIndex int
	// Spans holds the current-line span of each item, in slot order.
	Spans []int
}

// ItemCount returns the number of items on the line.
func (l Line) ItemCount() int {
	return len(l.Spans)
}

// LastItemIndex returns the index of the last item, or FirstItemIndex-1
// for an empty line.
func (l Line) LastItemIndex() int {
	return l.FirstItemIndex + len(l.Spans) - 1
}

// IsEmpty reports whether the line holds no items.
func (l Line) IsEmpty() bool {
	return len(l.Spans) == 0
}

// Provider maps item indices to lines for one grid.
//
// Provider is not safe for concurrent use; the grid owns it and only touches
// it from the layout pass. [Provider.Peek] is the read-only variant used for
// speculative queries.
type Provider struct {
	slotsPerLine int
	count        int
	spanOf       Func
	custom       bool

	// buckets[k] is the first item index of line k*BucketSize. buckets[0]
	// is always 0 and later entries are appended as lines are walked.
	buckets []int

	// Start of the most recently resolved line.
	lastLine      int
	lastLineStart int

	// Line starts of a whole bucket, recorded when a walk starts at the
	// bucket boundary. Serves backward queries inside the same bucket.
	cachedBucket int
	cachedStarts []int
}

// NewProvider creates an empty provider. Items and slots are supplied with
// [Provider.SetItems] and [Provider.SetSlotsPerLine].
func NewProvider() *Provider {
	p := &Provider{}
	p.reset()
	return p
}

// SetSlotsPerLine updates the number of slots per line, dropping the cache
// when it changes.
func (p *Provider) SetSlotsPerLine(n int) {
	n = max(0, n)
	if n != p.slotsPerLine {
		p.slotsPerLine = n
		p.reset()
	}
}

// SlotsPerLine returns the number of slots per line.
func (p *Provider) SlotsPerLine() int {
	return p.slotsPerLine
}

// SetItems updates the item count and span function. When custom is false
// every item is assumed to span one slot and lookups are O(1). The cache is
// dropped when the count or the custom flag changes.
func (p *Provider) SetItems(count int, spanOf Func, custom bool) {
	count = max(0, count)
	if count != p.count || custom != p.custom {
		p.count = count
		p.custom = custom
		p.reset()
	}
	p.spanOf = spanOf
	if p.spanOf == nil {
		p.custom = false
	}
}

// ItemCount returns the number of items.
func (p *Provider) ItemCount() int {
	return p.count
}

// Invalidate drops every cached line start. Call it when item spans change
// without the item count changing.
func (p *Provider) Invalidate() {
	p.reset()
}

func (p *Provider) reset() {
	p.buckets = append(p.buckets[:0], 0)
	p.lastLine = 0
	p.lastLineStart = 0
	p.cachedBucket = -1
	p.cachedStarts = p.cachedStarts[:0]
}

// SpanOf returns the clamped span of the item at index.
func (p *Provider) SpanOf(index int) int {
	if p.slotsPerLine <= 0 {
		return 0
	}
	if !p.custom {
		return 1
	}
	return clampSpan(p.spanOf(index), p.slotsPerLine)
}

func clampSpan(span, slotsPerLine int) int {
	if span < 1 {
		return 1
	}
	if span > slotsPerLine {
		return slotsPerLine
	}
	return span
}

// LineConfiguration returns the items assigned to lineIndex. Lines past the
// end are empty and start at the item count.
func (p *Provider) LineConfiguration(lineIndex int) Line {
	return p.configuration(lineIndex, true)
}

// Peek is LineConfiguration without touching the cache. It is safe to call
// speculatively; results for the same inputs are identical.
func (p *Provider) Peek(lineIndex int) Line {
	return p.configuration(lineIndex, false)
}

func (p *Provider) configuration(lineIndex int, record bool) Line {
	if p.slotsPerLine <= 0 || p.count <= 0 || lineIndex < 0 {
		return Line{}
	}

	if !p.custom {
		// Quick path when all spans are 1: positions are arithmetic.
		first := lineIndex * p.slotsPerLine
		n := min(max(0, p.count-first), p.slotsPerLine)
		spans := make([]int, n)
		for i := range spans {
			spans[i] = 1
		}
		return Line{FirstItemIndex: min(first, p.count), Spans: spans}
	}

	start := p.lineStart(lineIndex, record)
	line := Line{FirstItemIndex: start}
	_, line.Spans = p.fill(start, nil)
	return line
}

// lineStart walks from the nearest known line start to lineIndex and
// returns the first item index of that line.
func (p *Provider) lineStart(lineIndex int, record bool) int {
	bucket := min(lineIndex/BucketSize, len(p.buckets)-1)
	currentLine := bucket * BucketSize
	current := p.buckets[bucket]

	switch {
	case currentLine <= p.lastLine && p.lastLine <= lineIndex:
		// The last resolved line sits between the bucket start and the target.
		currentLine = p.lastLine
		current = p.lastLineStart
	case bucket == p.cachedBucket && lineIndex-currentLine < len(p.cachedStarts):
		current = p.cachedStarts[lineIndex-currentLine]
		currentLine = lineIndex
	}

	cacheBucket := record && currentLine%BucketSize == 0 && lineIndex-currentLine >= 2 && lineIndex-currentLine < BucketSize
	if cacheBucket {
		p.cachedBucket = currentLine / BucketSize
		p.cachedStarts = p.cachedStarts[:0]
	}

	for currentLine < lineIndex && current < p.count {
		if cacheBucket {
			p.cachedStarts = append(p.cachedStarts, current)
		}
		current, _ = p.fill(current, nil)
		currentLine++
		if record && currentLine%BucketSize == 0 && current < p.count && len(p.buckets) == currentLine/BucketSize {
			p.buckets = append(p.buckets, current)
		}
	}

	if currentLine < lineIndex {
		// Ran out of items before reaching the line.
		current = p.count
	}

	if record {
		p.lastLine = lineIndex
		p.lastLineStart = current
	}
	return current
}

// fill packs items into one line starting at start. It returns the first
// item index of the next line and, when spans is non-nil or empty, the spans
// appended for this line.
func (p *Provider) fill(start int, spans []int) (int, []int) {
	used := 0
	i := start
	for used < p.slotsPerLine && i < p.count {
		s := clampSpan(p.spanOf(i), p.slotsPerLine)
		if used+s > p.slotsPerLine {
			break
		}
		spans = append(spans, s)
		used += s
		i++
	}
	return i, spans
}

// LineIndexOf returns the line holding the item at itemIndex. Indices past
// the end resolve to the last line.
func (p *Provider) LineIndexOf(itemIndex int) int {
	if p.count <= 0 || p.slotsPerLine <= 0 {
		return 0
	}
	itemIndex = min(max(0, itemIndex), p.count-1)
	if !p.custom {
		return itemIndex / p.slotsPerLine
	}

	// Largest bucket whose first item is at or before itemIndex.
	bucket := sort.Search(len(p.buckets), func(i int) bool {
		return p.buckets[i] > itemIndex
	}) - 1
	currentLine := bucket * BucketSize
	start := p.buckets[bucket]
	if p.lastLine >= currentLine && p.lastLineStart <= itemIndex && p.lastLineStart < p.count {
		currentLine = p.lastLine
		start = p.lastLineStart
	}

	for {
		next, _ := p.fill(start, nil)
		if itemIndex < next {
			return currentLine
		}
		start = next
		currentLine++
		if currentLine%BucketSize == 0 && len(p.buckets) == currentLine/BucketSize {
			p.buckets = append(p.buckets, start)
		}
	}
}

// LineCount returns the number of lines needed for every item.
func (p *Provider) LineCount() int {
	if p.count <= 0 || p.slotsPerLine <= 0 {
		return 0
	}
	if !p.custom {
		return (p.count + p.slotsPerLine - 1) / p.slotsPerLine
	}
	return p.LineIndexOf(p.count-1) + 1
}
