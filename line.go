package lazygrid

import (
	"github.com/grindlemire/lazygrid/internal/layout"
	"github.com/grindlemire/lazygrid/internal/span"
)

// MeasuredLine is one measured line of a layout pass. Its items share the
// same main-axis start.
type MeasuredLine struct {
	Index int
	Items []*MeasuredItem

	// MainAxisSize is the largest item main-axis size.
	MainAxisSize int
	// MainAxisSizeWithSpacings adds the spacing to the next line. The last
	// line of the grid carries no spacing.
	MainAxisSizeWithSpacings int

	slots       Slots
	orientation layout.Orientation
}

// IsEmpty reports whether the line holds no items.
func (l *MeasuredLine) IsEmpty() bool {
	return len(l.Items) == 0
}

// FirstKey returns the key of the first item, or nil for an empty line.
func (l *MeasuredLine) FirstKey() Key {
	if l.IsEmpty() {
		return nil
	}
	return l.Items[0].Key
}

func (l *MeasuredLine) lastItemIndex() int {
	if l.IsEmpty() {
		return -1
	}
	return l.Items[len(l.Items)-1].Index
}

// position places every item at offset on the main axis and at its slot on
// the cross axis.
func (l *MeasuredLine) position(offset, layoutWidth, layoutHeight int) []*MeasuredItem {
	for _, it := range l.Items {
		row, column := l.Index, it.Lane
		if l.orientation == layout.Horizontal {
			row, column = it.Lane, l.Index
		}
		it.position(offset, l.slots.Positions[it.Lane], layoutWidth, layoutHeight, row, column)
	}
	return l.Items
}

type lineFactory func(index int, items []*MeasuredItem, mainAxisSpacing int) *MeasuredLine

func newLineFactory(o layout.Orientation, slots Slots) lineFactory {
	return func(index int, items []*MeasuredItem, mainAxisSpacing int) *MeasuredLine {
		size := 0
		for _, it := range items {
			size = max(size, it.mainAxisSize)
		}
		return &MeasuredLine{
			Index:                    index,
			Items:                    items,
			MainAxisSize:             size,
			MainAxisSizeWithSpacings: max(0, size+mainAxisSpacing),
			slots:                    slots,
			orientation:              o,
		}
	}
}

// lineProvider builds measured lines from the span assignment.
type lineProvider struct {
	orientation       layout.Orientation
	slots             Slots
	itemCount         int
	spaceBetweenLines int
	items             *itemProvider
	spans             *span.Provider
	newLine           lineFactory

	// observe is called with every non-empty line right after it is built.
	observe func(*MeasuredLine)
}

// childConstraints fixes the cross axis to the slots covered and leaves the
// main axis unbounded.
func (p *lineProvider) childConstraints(startSlot, span int) layout.Constraints {
	return crossConstraints(p.orientation, p.slots.CrossSize(startSlot, span))
}

func crossConstraints(o layout.Orientation, cross int) layout.Constraints {
	if o == layout.Horizontal {
		return layout.FixedHeight(cross)
	}
	return layout.FixedWidth(cross)
}

// itemConstraints returns the constraints of an item measured outside a
// line, as if it started at the first slot.
func (p *lineProvider) itemConstraints(itemIndex int) layout.Constraints {
	return p.childConstraints(0, p.spans.SpanOf(itemIndex))
}

func (p *lineProvider) line(lineIndex int) *MeasuredLine {
	cfg := p.spans.LineConfiguration(lineIndex)
	n := cfg.ItemCount()

	spacing := p.spaceBetweenLines
	if n == 0 || cfg.FirstItemIndex+n == p.itemCount {
		spacing = 0
	}

	items := make([]*MeasuredItem, n)
	lane := 0
	for i, s := range cfg.Spans {
		items[i] = p.items.item(cfg.FirstItemIndex+i, p.childConstraints(lane, s), lane, s, spacing)
		lane += s
	}

	l := p.newLine(lineIndex, items, spacing)
	if p.observe != nil && !l.IsEmpty() {
		p.observe(l)
	}
	return l
}
