package layout

import "fmt"

// Infinity marks an unbounded maximum in Constraints.
const Infinity = 1<<31 - 1

// Constraints bounds the size a measured child may take.
// A child must report a size within [Min, Max] on both axes.
type Constraints struct {
	MinWidth, MaxWidth   int
	MinHeight, MaxHeight int
}

// Loose returns constraints allowing any size up to width x height.
func Loose(width, height int) Constraints {
	return Constraints{MaxWidth: width, MaxHeight: height}
}

// Tight returns constraints that only allow exactly width x height.
func Tight(width, height int) Constraints {
	return Constraints{MinWidth: width, MaxWidth: width, MinHeight: height, MaxHeight: height}
}

// FixedWidth returns constraints with an exact width and an unbounded height.
func FixedWidth(width int) Constraints {
	width = max(0, width)
	return Constraints{MinWidth: width, MaxWidth: width, MaxHeight: Infinity}
}

// FixedHeight returns constraints with an exact height and an unbounded width.
func FixedHeight(height int) Constraints {
	height = max(0, height)
	return Constraints{MaxWidth: Infinity, MinHeight: height, MaxHeight: height}
}

// HasBoundedWidth reports whether MaxWidth is finite.
func (c Constraints) HasBoundedWidth() bool {
	return c.MaxWidth != Infinity
}

// HasBoundedHeight reports whether MaxHeight is finite.
func (c Constraints) HasBoundedHeight() bool {
	return c.MaxHeight != Infinity
}

// Offset shrinks (negative) or grows (positive) the constraints by the given
// amounts. Infinite maximums stay infinite and nothing drops below zero.
func (c Constraints) Offset(dx, dy int) Constraints {
	return Constraints{
		MinWidth:  max(0, c.MinWidth+dx),
		MaxWidth:  addMaxSize(c.MaxWidth, dx),
		MinHeight: max(0, c.MinHeight+dy),
		MaxHeight: addMaxSize(c.MaxHeight, dy),
	}
}

// ConstrainWidth clamps width into [MinWidth, MaxWidth].
func (c Constraints) ConstrainWidth(width int) int {
	return clamp(width, c.MinWidth, c.MaxWidth)
}

// ConstrainHeight clamps height into [MinHeight, MaxHeight].
func (c Constraints) ConstrainHeight(height int) int {
	return clamp(height, c.MinHeight, c.MaxHeight)
}

// Constrain clamps both dimensions of s.
func (c Constraints) Constrain(s Size) Size {
	return Size{Width: c.ConstrainWidth(s.Width), Height: c.ConstrainHeight(s.Height)}
}

func (c Constraints) String() string {
	return fmt.Sprintf("Constraints(w=%s, h=%s)", rangeString(c.MinWidth, c.MaxWidth), rangeString(c.MinHeight, c.MaxHeight))
}

func rangeString(lo, hi int) string {
	if hi == Infinity {
		return fmt.Sprintf("%d..inf", lo)
	}
	if lo == hi {
		return fmt.Sprintf("%d", lo)
	}
	return fmt.Sprintf("%d..%d", lo, hi)
}

func addMaxSize(v, delta int) int {
	if v == Infinity {
		return Infinity
	}
	return max(0, v+delta)
}

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins (matches CSS behavior).
func clamp(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}
