package lazygrid

import (
	"sync"

	"github.com/grindlemire/lazygrid/internal/layout"
	"github.com/grindlemire/lazygrid/internal/span"
)

// PrefetchRequest is an item expected to become visible soon, with the
// constraints it will be measured with.
type PrefetchRequest struct {
	LineIndex   int
	ItemIndex   int
	Key         Key
	Constraints layout.Constraints
}

// PrefetchCandidates returns the items of lineIndex with their constraints,
// using the slots and spans of the last committed pass. It does not measure
// anything or touch any cache. Nil is returned before the first pass or for
// lines past the end.
func (g *Grid) PrefetchCandidates(lineIndex int) []PrefetchRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	return planPrefetch(g.spans, g.lastSlots, g.orientation, g.source, lineIndex)
}

func planPrefetch(spans *span.Provider, slots Slots, o layout.Orientation, source ItemSource, lineIndex int) []PrefetchRequest {
	if slots.Len() == 0 || lineIndex < 0 {
		return nil
	}
	cfg := spans.Peek(lineIndex)
	if cfg.IsEmpty() {
		return nil
	}
	reqs := make([]PrefetchRequest, 0, cfg.ItemCount())
	lane := 0
	for i, s := range cfg.Spans {
		index := cfg.FirstItemIndex + i
		reqs = append(reqs, PrefetchRequest{
			LineIndex:   lineIndex,
			ItemIndex:   index,
			Key:         keyOf(source, index),
			Constraints: crossConstraints(o, slots.CrossSize(lane, s)),
		})
		lane += s
	}
	return reqs
}

// PrefetchQueue holds prefetch requests scheduled by Layout until the host
// drains them between frames.
type PrefetchQueue struct {
	mu      sync.Mutex
	pending []PrefetchRequest
	queued  map[int]bool

	// Soon-visible lines; requests outside are stale.
	first, last int
	source      ItemSource
	count       int
}

func newPrefetchQueue(source ItemSource) *PrefetchQueue {
	return &PrefetchQueue{queued: make(map[int]bool), source: source}
}

// schedule sets the soon-visible window, drops requests that left it and
// appends reqs unless their line is already queued.
func (q *PrefetchQueue) schedule(first, last, count int, reqs []PrefetchRequest) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.first, q.last, q.count = first, last, count
	kept := q.pending[:0]
	for _, r := range q.pending {
		if r.LineIndex >= first && r.LineIndex <= last {
			kept = append(kept, r)
		} else {
			delete(q.queued, r.LineIndex)
		}
	}
	q.pending = kept

	if len(reqs) == 0 || q.queued[reqs[0].LineIndex] {
		return
	}
	q.queued[reqs[0].LineIndex] = true
	q.pending = append(q.pending, reqs...)
}

// Len returns the number of pending requests.
func (q *PrefetchQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Drain hands up to budget valid requests to measure, in scheduling order,
// and returns how many were handed out. Requests whose key no longer matches
// the item at their index, or whose line left the soon-visible window, are
// discarded without counting against the budget. Results are expected to
// flow back through the host's own measurement cache.
//
// Drain reads item keys from the source, so it must run where the source
// may be read, normally the goroutine that calls Layout.
func (q *PrefetchQueue) Drain(budget int, measure func(PrefetchRequest)) int {
	done := 0
	for done < budget {
		r, ok := q.next()
		if !ok {
			break
		}
		if !q.valid(r) {
			continue
		}
		measure(r)
		done++
	}
	return done
}

func (q *PrefetchQueue) next() (PrefetchRequest, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return PrefetchRequest{}, false
	}
	r := q.pending[0]
	q.pending = q.pending[1:]
	if len(q.pending) == 0 || q.pending[0].LineIndex != r.LineIndex {
		delete(q.queued, r.LineIndex)
	}
	return r, true
}

func (q *PrefetchQueue) valid(r PrefetchRequest) bool {
	q.mu.Lock()
	first, last, count := q.first, q.last, q.count
	q.mu.Unlock()
	if r.LineIndex < first || r.LineIndex > last || r.ItemIndex >= count {
		return false
	}
	return keyOf(q.source, r.ItemIndex) == r.Key
}
