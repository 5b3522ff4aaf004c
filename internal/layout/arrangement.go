package layout

// Justify specifies how lines are distributed along the main axis when they
// do not fill the viewport.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center lines
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each line
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Arrangement pairs a distribution mode with a fixed spacing inserted
// between consecutive entries. The spacing also applies while scrolling;
// the mode only matters when there is spare space.
type Arrangement struct {
	Justify Justify
	Spacing int
}

// SpacedBy returns a start-packed arrangement with the given spacing.
func SpacedBy(spacing int) Arrangement {
	return Arrangement{Justify: JustifyStart, Spacing: spacing}
}

// Arrange writes into offsets the start position of each entry of sizes
// within total. offsets must be at least as long as sizes.
func (a Arrangement) Arrange(total int, sizes []int, offsets []int) {
	n := len(sizes)
	if n == 0 {
		return
	}

	used := a.Spacing * (n - 1)
	for _, s := range sizes {
		used += s
	}
	freeSpace := total - used

	pos := justifyOffset(a.Justify, freeSpace, n)
	between := a.Spacing + justifySpacing(a.Justify, freeSpace, n)
	for i, s := range sizes {
		offsets[i] = pos
		pos += s + between
	}
}

// justifyOffset returns the initial offset for the first entry
// based on the justify mode and available free space.
func justifyOffset(justify Justify, freeSpace, count int) int {
	if freeSpace <= 0 || count == 0 {
		return 0
	}

	switch justify {
	case JustifyEnd:
		return freeSpace
	case JustifyCenter:
		return freeSpace / 2
	case JustifySpaceAround:
		return freeSpace / (count * 2)
	case JustifySpaceEvenly:
		return freeSpace / (count + 1)
	default: // JustifyStart, JustifySpaceBetween
		return 0
	}
}

// justifySpacing returns the extra spacing between entries
// based on the justify mode and available free space.
func justifySpacing(justify Justify, freeSpace, count int) int {
	if freeSpace <= 0 || count <= 1 {
		return 0
	}

	switch justify {
	case JustifySpaceBetween:
		return freeSpace / (count - 1)
	case JustifySpaceAround:
		return freeSpace / count
	case JustifySpaceEvenly:
		return freeSpace / (count + 1)
	default: // JustifyStart, JustifyEnd, JustifyCenter
		return 0
	}
}
