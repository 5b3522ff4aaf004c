package lazygrid

// keySearchWindow is how far around its last index an anchor key is looked
// for when the item at that index changed.
const keySearchWindow = 128

// ScrollPosition is the committed anchor of a grid.
type ScrollPosition struct {
	// FirstVisibleItemIndex is the first item of the first visible line.
	// It is what survives item-count and span changes.
	FirstVisibleItemIndex int
	FirstVisibleLineIndex int
	// FirstVisibleLineScrollOffset is how far the first visible line is
	// scrolled past the viewport start, 0 <= offset < its size.
	FirstVisibleLineScrollOffset int
	// EstimatedOffset is the offset from the start of the content, using the
	// average line size for lines that were never measured.
	EstimatedOffset int
}

// scrollState is the mutable anchor and pending input of a grid.
type scrollState struct {
	index     int
	offset    int
	lineIndex int

	key    Key
	hasKey bool

	pending  int
	dragging bool
}

// resolve returns the anchor item index for the current source, following
// the anchor key when items moved and clamping past the end.
func (s *scrollState) resolve(source ItemSource, count int) (index, offset int, reanchored bool) {
	index, offset = s.index, s.offset
	if s.hasKey && count > 0 {
		index = findIndexByKey(source, count, s.key, index)
	}
	if count > 0 && index >= count {
		index, offset = count-1, 0
		reanchored = true
	}
	return max(0, index), max(0, offset), reanchored
}

// commit stores the anchor produced by a pass.
func (s *scrollState) commit(line *MeasuredLine, offset int) {
	if line == nil || line.IsEmpty() {
		s.index, s.offset, s.lineIndex = 0, 0, 0
		s.key, s.hasKey = nil, false
		return
	}
	s.index = line.Items[0].Index
	s.key, s.hasKey = line.Items[0].Key, true
	s.offset = offset
	s.lineIndex = line.Index
}

// scrollTo moves the anchor to index, dropping any pending delta.
func (s *scrollState) scrollTo(index, offset int) {
	s.index = max(0, index)
	s.offset = max(0, offset)
	s.key, s.hasKey = nil, false
	s.pending = 0
}

// findIndexByKey returns the index of key, looking at last first and then
// outward from it. last is returned when the key is not found nearby.
func findIndexByKey(source ItemSource, count int, key Key, last int) int {
	if last >= 0 && last < count && keyOf(source, last) == key {
		return last
	}
	for d := 1; d <= keySearchWindow; d++ {
		if i := last - d; i >= 0 && i < count && keyOf(source, i) == key {
			return i
		}
		if i := last + d; i >= 0 && i < count && keyOf(source, i) == key {
			return i
		}
	}
	return last
}
