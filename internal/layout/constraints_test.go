package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstraints_Offset(t *testing.T) {
	type tc struct {
		in       Constraints
		dx, dy   int
		expected Constraints
	}

	tests := map[string]tc{
		"shrink bounded": {
			in:       Constraints{MinWidth: 10, MaxWidth: 100, MinHeight: 0, MaxHeight: 50},
			dx:       -20,
			dy:       -10,
			expected: Constraints{MinWidth: 0, MaxWidth: 80, MinHeight: 0, MaxHeight: 40},
		},
		"infinite stays infinite": {
			in:       FixedWidth(100),
			dx:       -10,
			dy:       -10,
			expected: Constraints{MinWidth: 90, MaxWidth: 90, MinHeight: 0, MaxHeight: Infinity},
		},
		"never negative": {
			in:       Loose(10, 10),
			dx:       -30,
			dy:       -30,
			expected: Constraints{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.in.Offset(tt.dx, tt.dy))
		})
	}
}

func TestConstraints_Constrain(t *testing.T) {
	c := Constraints{MinWidth: 10, MaxWidth: 100, MinHeight: 5, MaxHeight: Infinity}

	assert.Equal(t, 10, c.ConstrainWidth(3))
	assert.Equal(t, 100, c.ConstrainWidth(300))
	assert.Equal(t, 5000, c.ConstrainHeight(5000))
	assert.Equal(t, Size{Width: 50, Height: 5}, c.Constrain(Size{Width: 50, Height: 0}))
	assert.True(t, c.HasBoundedWidth())
	assert.False(t, c.HasBoundedHeight())
}

func TestConstraints_Fixed(t *testing.T) {
	assert.Equal(t, Constraints{MinWidth: 40, MaxWidth: 40, MaxHeight: Infinity}, FixedWidth(40))
	assert.Equal(t, Constraints{MaxWidth: Infinity, MinHeight: 7, MaxHeight: 7}, FixedHeight(7))
	assert.Equal(t, FixedWidth(0), FixedWidth(-3))
	assert.Equal(t, "Constraints(w=40, h=0..inf)", FixedWidth(40).String())
}

func TestOrientation_Axes(t *testing.T) {
	s := Size{Width: 30, Height: 70}

	assert.Equal(t, 70, Vertical.Main(s))
	assert.Equal(t, 30, Vertical.Cross(s))
	assert.Equal(t, 30, Horizontal.Main(s))
	assert.Equal(t, 70, Horizontal.Cross(s))

	assert.Equal(t, Point{X: 2, Y: 9}, Vertical.Point(9, 2))
	assert.Equal(t, Point{X: 9, Y: 2}, Horizontal.Point(9, 2))
	assert.Equal(t, 9, Vertical.MainOf(Vertical.Point(9, 2)))
	assert.Equal(t, 2, Horizontal.CrossOf(Horizontal.Point(9, 2)))
}
