// Package lazygrid is a virtualized grid layout engine.
//
// A Grid turns a flat item sequence with per-item spans into placed
// rectangles for one orientation, scroll position and set of constraints.
// Only the lines intersecting the viewport, plus pinned and beyond-bounds
// ones, are measured on a pass, so the work per frame does not depend on the
// item count.
//
//	g, err := lazygrid.New(source, lazygrid.WithSlots(lazygrid.Adaptive(120)))
//	g.ScrollBy(delta)
//	res, err := g.Layout(layout.Tight(width, height))
//	res.Place(sink)
//
// The engine is headless: measuring, painting and animating items are up to
// the host, through ItemSource, PlacementSink and the placement and prefetch
// queues.
package lazygrid
