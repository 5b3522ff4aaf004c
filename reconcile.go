package lazygrid

// LineGrowth records a line measured larger than its cached size.
type LineGrowth struct {
	LineIndex int
	Key       Key
	From, To  int
}

// reconciler collects line growth during a pass and decides whether the pass
// must be retried without consuming the pending scroll.
type reconciler struct {
	cache   *lineSizeCache
	sizes   *contentSizeTracker
	growth  []LineGrowth
	retried bool
}

// observe is installed as the line provider's observer.
func (r *reconciler) observe(line *MeasuredLine) {
	size := line.MainAxisSizeWithSpacings
	r.sizes.record(line.Index, size)
	previous, known := r.cache.observe(line.FirstKey(), size)
	if known && size > previous {
		r.growth = append(r.growth, LineGrowth{
			LineIndex: line.Index,
			Key:       line.FirstKey(),
			From:      previous,
			To:        size,
		})
	}
}

// take returns the growth of the last pass and starts a new record.
func (r *reconciler) take() []LineGrowth {
	g := r.growth
	r.growth = nil
	return g
}

// startExpansion sums the growth of lines before anchorLine.
func startExpansion(growth []LineGrowth, anchorLine int) int {
	total := 0
	for _, g := range growth {
		if g.LineIndex < anchorLine {
			total += g.To - g.From
		}
	}
	return total
}

// shouldRetry reports whether growth invalidates a pass that consumed
// scroll. The retry consumes nothing, so growth it observes on either side
// of the anchor is reflected in place and one retry per Layout call is
// enough.
func (r *reconciler) shouldRetry(growth []LineGrowth, consumed int) bool {
	if len(growth) == 0 || consumed == 0 || r.retried {
		return false
	}
	r.retried = true
	return true
}
