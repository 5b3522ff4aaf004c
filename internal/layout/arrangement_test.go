package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArrangement_Arrange(t *testing.T) {
	type tc struct {
		arrangement Arrangement
		total       int
		sizes       []int
		expected    []int
	}

	tests := map[string]tc{
		"start with spacing": {
			arrangement: SpacedBy(5),
			total:       100,
			sizes:       []int{10, 20, 30},
			expected:    []int{0, 15, 40},
		},
		"end": {
			arrangement: Arrangement{Justify: JustifyEnd},
			total:       100,
			sizes:       []int{10, 20},
			expected:    []int{70, 80},
		},
		"center": {
			arrangement: Arrangement{Justify: JustifyCenter, Spacing: 10},
			total:       100,
			sizes:       []int{20, 20},
			expected:    []int{25, 55},
		},
		"space between": {
			arrangement: Arrangement{Justify: JustifySpaceBetween},
			total:       100,
			sizes:       []int{10, 10, 10},
			expected:    []int{0, 45, 90},
		},
		"space evenly": {
			arrangement: Arrangement{Justify: JustifySpaceEvenly},
			total:       100,
			sizes:       []int{20, 20, 20},
			expected:    []int{10, 40, 70},
		},
		"space around": {
			arrangement: Arrangement{Justify: JustifySpaceAround},
			total:       100,
			sizes:       []int{30, 30},
			expected:    []int{10, 60},
		},
		"overflow packs at start": {
			arrangement: Arrangement{Justify: JustifyCenter},
			total:       10,
			sizes:       []int{20, 20},
			expected:    []int{0, 20},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			offsets := make([]int, len(tt.sizes))
			tt.arrangement.Arrange(tt.total, tt.sizes, offsets)
			assert.Equal(t, tt.expected, offsets)
		})
	}
}

func TestArrangement_Empty(t *testing.T) {
	assert.NotPanics(t, func() {
		SpacedBy(4).Arrange(100, nil, nil)
	})
}
