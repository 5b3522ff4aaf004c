package lazygrid

import "github.com/grindlemire/lazygrid/internal/layout"

// MeasuredItem is an item measured during one layout pass.
type MeasuredItem struct {
	Index       int
	Key         Key
	ContentType any
	Placeable   Placeable
	Constraints layout.Constraints

	// Lane is the first slot the item occupies and Span the number of slots.
	Lane int
	Span int

	// Row and Column are set when the item is positioned; both are -1 for
	// items placed outside a line.
	Row, Column int

	geometry                 *itemGeometry
	mainAxisSize             int
	crossAxisSize            int
	mainAxisSizeWithSpacings int

	// offset is relative to the content area, before reverse layout and
	// the visual offset are applied.
	offset             layout.Point
	mainAxisLayoutSize int
	retained           bool
}

// itemGeometry is shared by every item created in one pass.
type itemGeometry struct {
	orientation   layout.Orientation
	reverseLayout bool
	direction     layout.LayoutDirection
	beforePadding int
	afterPadding  int
	visualOffset  layout.Point
}

// itemFactory wraps a measured placeable into a MeasuredItem.
type itemFactory func(index int, key Key, contentType any, p Placeable, c layout.Constraints, lane, span, mainAxisSpacing int) *MeasuredItem

func newItemFactory(g *itemGeometry) itemFactory {
	return func(index int, key Key, contentType any, p Placeable, c layout.Constraints, lane, span, mainAxisSpacing int) *MeasuredItem {
		mainSize := g.orientation.Main(p.Size)
		return &MeasuredItem{
			Index:                    index,
			Key:                      key,
			ContentType:              contentType,
			Placeable:                p,
			Constraints:              c,
			Lane:                     lane,
			Span:                     span,
			Row:                      -1,
			Column:                   -1,
			geometry:                 g,
			mainAxisSize:             mainSize,
			crossAxisSize:            g.orientation.Cross(p.Size),
			mainAxisSizeWithSpacings: max(0, mainSize+mainAxisSpacing),
		}
	}
}

// MainAxisSize returns the measured main-axis size.
func (it *MeasuredItem) MainAxisSize() int {
	return it.mainAxisSize
}

// position sets the item's offset within the content area. RTL mirrors the
// cross axis of a vertical grid here; horizontal grids mirror at placement.
func (it *MeasuredItem) position(mainAxisOffset, crossAxisOffset, layoutWidth, layoutHeight, row, column int) {
	g := it.geometry
	it.Row, it.Column = row, column
	crossAxisLayoutSize := layoutWidth
	it.mainAxisLayoutSize = layoutHeight
	if g.orientation == layout.Horizontal {
		crossAxisLayoutSize = layoutHeight
		it.mainAxisLayoutSize = layoutWidth
	}

	cross := crossAxisOffset
	if g.orientation == layout.Vertical && g.direction == layout.RTL {
		cross = crossAxisLayoutSize - crossAxisOffset - it.crossAxisSize
	}
	it.offset = g.orientation.Point(mainAxisOffset, cross)
}

// rect returns the placed rectangle in container coordinates.
func (it *MeasuredItem) rect(containerWidth int) layout.Rect {
	g := it.geometry
	main := g.orientation.MainOf(it.offset)
	cross := g.orientation.CrossOf(it.offset)
	if g.reverseLayout {
		main = it.mainAxisLayoutSize - main - it.mainAxisSize
	}

	r := layout.RectAt(g.orientation.Point(main, cross).Add(g.visualOffset), it.Placeable.Size)
	if g.orientation == layout.Horizontal && g.direction == layout.RTL {
		r.X = containerWidth - r.X - r.Width
	}
	return r
}

// itemProvider measures items through the source and wraps them with the
// pass's factory.
type itemProvider struct {
	source  ItemSource
	newItem itemFactory
}

func (p *itemProvider) item(index int, c layout.Constraints, lane, span, mainAxisSpacing int) *MeasuredItem {
	placeable := p.source.Measure(index, c)
	return p.newItem(index, keyOf(p.source, index), p.source.ContentType(index), placeable, c, lane, span, mainAxisSpacing)
}

// keyOf returns the item's key, substituting an index-derived key for nil.
func keyOf(source ItemSource, index int) Key {
	if k := source.Key(index); k != nil {
		return k
	}
	return defaultKey{index: index}
}
