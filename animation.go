package lazygrid

import (
	"sync"

	"github.com/grindlemire/lazygrid/internal/layout"
)

const defaultPlacementQueueSize = 1024

// PlacementDelta describes an item whose placement changed between two
// committed layouts for a reason other than scrolling. From is the previous
// placement moved by the scroll consumed since, so an animator can
// interpolate from From to To directly.
type PlacementDelta struct {
	Key      Key
	Index    int
	From, To layout.Rect

	// Appeared is set for items with no previous placement, Disappeared
	// for items no longer placed. The missing side is the zero Rect.
	Appeared, Disappeared bool
}

// PlacementQueue buffers placement deltas between a layout pass and the
// animator. Deltas for the same key coalesce: the first From is kept and
// the latest To wins.
type PlacementQueue struct {
	mu      sync.Mutex
	deltas  []PlacementDelta
	byKey   map[Key]int
	limit   int
	dropped int
}

// NewPlacementQueue returns a queue holding at most limit deltas. When full,
// the oldest delta is dropped.
func NewPlacementQueue(limit int) *PlacementQueue {
	return &PlacementQueue{byKey: make(map[Key]int), limit: max(1, limit)}
}

func (q *PlacementQueue) push(d PlacementDelta) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if i, ok := q.byKey[d.Key]; ok {
		prev := &q.deltas[i]
		prev.Index = d.Index
		prev.To = d.To
		// An item that disappeared and came back is a plain move.
		prev.Disappeared = d.Disappeared
		return
	}
	if len(q.deltas) >= q.limit {
		delete(q.byKey, q.deltas[0].Key)
		q.deltas = q.deltas[1:]
		for k, i := range q.byKey {
			q.byKey[k] = i - 1
		}
		q.dropped++
	}
	q.byKey[d.Key] = len(q.deltas)
	q.deltas = append(q.deltas, d)
}

// Drain returns and clears the pending deltas in the order they were first
// recorded.
func (q *PlacementQueue) Drain() []PlacementDelta {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := q.deltas
	q.deltas = nil
	clear(q.byKey)
	return out
}

// Len returns the number of pending deltas.
func (q *PlacementQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.deltas)
}

// Dropped returns how many deltas were discarded because the queue was full.
func (q *PlacementQueue) Dropped() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}

// diffPlacements enqueues the changes from prev to next. shift is how far
// content moved on screen because of scrolling between the two layouts.
func diffPlacements(q *PlacementQueue, prev, next []Placement, shift layout.Point) {
	before := make(map[Key]Placement, len(prev))
	for _, p := range prev {
		before[p.Key] = p
	}
	for _, p := range next {
		old, ok := before[p.Key]
		if !ok {
			q.push(PlacementDelta{Key: p.Key, Index: p.Index, To: p.Rect, Appeared: true})
			continue
		}
		delete(before, p.Key)
		from := old.Rect.Translate(shift.X, shift.Y)
		if from != p.Rect {
			q.push(PlacementDelta{Key: p.Key, Index: p.Index, From: from, To: p.Rect})
		}
	}
	for _, p := range prev {
		if _, gone := before[p.Key]; gone {
			q.push(PlacementDelta{Key: p.Key, Index: p.Index, From: p.Rect.Translate(shift.X, shift.Y), Disappeared: true})
		}
	}
}
