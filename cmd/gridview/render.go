package main

import (
	"fmt"
	"strings"

	"github.com/grindlemire/lazygrid"
	"github.com/grindlemire/lazygrid/internal/layout"
)

// canvas is a fixed-size rune grid that placements are drawn into.
type canvas struct {
	bounds layout.Rect
	cells  [][]rune
}

func newCanvas(width, height int) *canvas {
	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = []rune(strings.Repeat(" ", width))
	}
	return &canvas{bounds: layout.NewRect(0, 0, width, height), cells: cells}
}

func (c *canvas) set(x, y int, r rune) {
	if !(layout.Point{X: x, Y: y}).In(c.bounds) {
		return
	}
	c.cells[y][x] = r
}

// Place implements lazygrid.PlacementSink. Items are drawn as boxes labelled
// with their index; retained items are drawn dotted. Items outside the
// canvas, such as retained lines, are skipped.
func (c *canvas) Place(p lazygrid.Placement) {
	r := p.Rect
	if !r.Intersects(c.bounds) {
		return
	}
	h, v, corner := '─', '│', '┼'
	if p.Retained {
		h, v, corner = '┄', '┆', '·'
	}
	visible := r.Intersect(c.bounds)
	for x := visible.X; x < visible.Right(); x++ {
		c.set(x, r.Y, h)
		c.set(x, r.Bottom()-1, h)
	}
	for y := visible.Y; y < visible.Bottom(); y++ {
		c.set(r.X, y, v)
		c.set(r.Right()-1, y, v)
	}
	c.set(r.X, r.Y, corner)
	c.set(r.Right()-1, r.Y, corner)
	c.set(r.X, r.Bottom()-1, corner)
	c.set(r.Right()-1, r.Bottom()-1, corner)

	label := fmt.Sprint(p.Index)
	inner := r.Inset(layout.EdgeAll(1))
	if inner.IsEmpty() || len(label) > inner.Width {
		label = ""
	}
	for i, ch := range label {
		c.set(inner.X+i, r.Y+r.Height/2, ch)
	}
}

func (c *canvas) String() string {
	var b strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.TrimRight(string(row), " "))
	}
	return b.String()
}

func renderLayout(res *lazygrid.RealizedLayout, width, height int) string {
	c := newCanvas(width, height)
	res.Place(c)
	return c.String()
}

// status summarizes a pass on one line.
func status(res *lazygrid.RealizedLayout) string {
	size := fmt.Sprint(res.TotalMainAxisSize)
	if res.TotalSizeEstimated {
		size = "~" + size
	}
	s := fmt.Sprintf("line %d +%d  item %d  consumed %d  pending %d  total %s",
		res.FirstVisibleLineIndex, res.FirstVisibleLineScrollOffset, res.FirstVisibleItemIndex,
		res.ConsumedScroll, res.PendingScroll, size)
	if res.StartExpansion != 0 {
		s += fmt.Sprintf("  expanded %d", res.StartExpansion)
	}
	if res.Retried {
		s += "  retried"
	}
	if res.Reanchored {
		s += "  reanchored"
	}
	return s
}
