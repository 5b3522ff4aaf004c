package lazygrid

// contentSizeTracker keeps the sizes of lines measured so far, by line
// index, to report the total content size.
type contentSizeTracker struct {
	sizes map[int]int
	sum   int

	// real is the exact total, valid once every line has been measured.
	real      int
	realValid bool
}

func newContentSizeTracker() *contentSizeTracker {
	return &contentSizeTracker{sizes: make(map[int]int)}
}

func (t *contentSizeTracker) record(line, size int) {
	if old, ok := t.sizes[line]; ok {
		if old == size {
			return
		}
		t.sum -= old
	}
	t.sizes[line] = size
	t.sum += size
	t.realValid = false
}

// invalidate drops the cached exact total so it is recomputed.
func (t *contentSizeTracker) invalidate() {
	t.realValid = false
}

// reset forgets all sizes. Line indices are meaningless after item count or
// slot changes.
func (t *contentSizeTracker) reset() {
	clear(t.sizes)
	t.sum = 0
	t.realValid = false
}

// average returns the mean known line size, or 0 when none is known.
func (t *contentSizeTracker) average() int {
	if len(t.sizes) == 0 {
		return 0
	}
	return t.sum / len(t.sizes)
}

// total returns the size of lineCount lines. estimated is true when some
// lines were never measured. Sizes are reset whenever the line count
// changes, so every recorded line is below lineCount.
func (t *contentSizeTracker) total(lineCount int) (size int, estimated bool) {
	if lineCount <= 0 {
		return 0, false
	}
	if t.realValid {
		return t.real, false
	}
	if len(t.sizes) >= lineCount {
		t.real, t.realValid = t.sum, true
		return t.real, false
	}
	return t.average() * lineCount, true
}
