package lazygrid

import "slices"

// PinHandle keeps an item measured while it is scrolled out of view. The
// handle follows the item's key when items before it move.
type PinHandle struct {
	grid     *Grid
	key      Key
	released bool
}

type pinEntry struct {
	index int
	refs  int
}

// Pin keeps the item at index measured until the returned handle is
// released. Pinning the same item twice needs two releases.
func (g *Grid) Pin(index int) *PinHandle {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := keyOf(g.source, index)
	e, ok := g.pins[key]
	if !ok {
		e = &pinEntry{index: index}
		g.pins[key] = e
	}
	e.refs++
	return &PinHandle{grid: g, key: key}
}

// Release drops the pin. Releasing twice is a no-op.
func (h *PinHandle) Release() {
	g := h.grid
	g.mu.Lock()
	defer g.mu.Unlock()

	if h.released {
		return
	}
	h.released = true
	if e, ok := g.pins[h.key]; ok {
		e.refs--
		if e.refs <= 0 {
			delete(g.pins, h.key)
		}
	}
}

// SetPinned replaces the host-supplied set of pinned indices.
func (g *Grid) SetPinned(indices ...int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pinned = slices.Clone(indices)
}

// pinnedIndices returns the sorted, deduplicated pinned items for a pass.
// Pin handles whose key moved are updated to the new index.
func (g *Grid) pinnedIndices(count int) []int {
	if len(g.pinned) == 0 && len(g.pins) == 0 {
		return nil
	}
	out := make([]int, 0, len(g.pinned)+len(g.pins))
	for _, i := range g.pinned {
		if i >= 0 && i < count {
			out = append(out, i)
		}
	}
	for key, e := range g.pins {
		e.index = findIndexByKey(g.source, count, key, e.index)
		if e.index >= 0 && e.index < count && keyOf(g.source, e.index) == key {
			out = append(out, e.index)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
