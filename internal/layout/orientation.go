package layout

// Orientation is the scroll direction of a grid. The main axis runs along
// it and lines are stacked on it; the cross axis is divided into slots.
type Orientation uint8

const (
	Vertical   Orientation = iota // Lines are rows, scrolling top-to-bottom
	Horizontal                    // Lines are columns, scrolling left-to-right
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Main returns the main-axis component of s.
func (o Orientation) Main(s Size) int {
	if o == Horizontal {
		return s.Width
	}
	return s.Height
}

// Cross returns the cross-axis component of s.
func (o Orientation) Cross(s Size) int {
	if o == Horizontal {
		return s.Height
	}
	return s.Width
}

// Point builds a Point from main and cross coordinates.
func (o Orientation) Point(main, cross int) Point {
	if o == Horizontal {
		return Point{X: main, Y: cross}
	}
	return Point{X: cross, Y: main}
}

// MainOf returns the main-axis coordinate of p.
func (o Orientation) MainOf(p Point) int {
	if o == Horizontal {
		return p.X
	}
	return p.Y
}

// CrossOf returns the cross-axis coordinate of p.
func (o Orientation) CrossOf(p Point) int {
	if o == Horizontal {
		return p.Y
	}
	return p.X
}

// LayoutDirection controls the reading direction of horizontal runs.
type LayoutDirection uint8

const (
	LTR LayoutDirection = iota // Left to right
	RTL                        // Right to left
)
