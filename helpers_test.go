package lazygrid

import (
	"fmt"
	"testing"

	"github.com/grindlemire/lazygrid/internal/layout"
	"github.com/stretchr/testify/require"
)

// fakeSource measures every item to a fixed main-axis size unless
// overridden and fills the cross axis it is given.
type fakeSource struct {
	count       int
	mainSize    int
	sizes       map[int]int
	spans       map[int]int
	keys        []Key
	orientation layout.Orientation
	spanVersion uint64
	measured    []int
}

func newFakeSource(count, mainSize int) *fakeSource {
	return &fakeSource{count: count, mainSize: mainSize, sizes: map[int]int{}, spans: map[int]int{}}
}

func (s *fakeSource) Count() int {
	if s.keys != nil {
		return len(s.keys)
	}
	return s.count
}

func (s *fakeSource) Key(index int) Key {
	if s.keys != nil {
		return s.keys[index]
	}
	return index
}

func (s *fakeSource) ContentType(int) any {
	return nil
}

func (s *fakeSource) Span(index int) int {
	if sp, ok := s.spans[index]; ok {
		return sp
	}
	return 1
}

func (s *fakeSource) SpanVersion() uint64 {
	return s.spanVersion
}

func (s *fakeSource) HasCustomSpans() bool {
	return len(s.spans) > 0
}

func (s *fakeSource) Measure(index int, c layout.Constraints) Placeable {
	s.measured = append(s.measured, index)
	main := s.mainSize
	if m, ok := s.sizes[index]; ok {
		main = m
	}
	if s.orientation == layout.Horizontal {
		return Placeable{Size: layout.Size{Width: main, Height: c.MaxHeight}}
	}
	return Placeable{Size: layout.Size{Width: c.MaxWidth, Height: main}}
}

func newTestGrid(t *testing.T, src ItemSource, opts ...Option) *Grid {
	t.Helper()
	g, err := New(src, opts...)
	require.NoError(t, err)
	return g
}

func mustLayout(t *testing.T, g *Grid, c layout.Constraints) *RealizedLayout {
	t.Helper()
	res, err := g.Layout(c)
	require.NoError(t, err)
	return res
}

// rectsByIndex maps item index to placed rectangle.
func rectsByIndex(res *RealizedLayout) map[int]layout.Rect {
	out := make(map[int]layout.Rect, len(res.Placements))
	for _, p := range res.Placements {
		out[p.Index] = p.Rect
	}
	return out
}

func indices(ps []Placement) []int {
	out := make([]int, len(ps))
	for i, p := range ps {
		out[i] = p.Index
	}
	return out
}

func lineIndices(res *RealizedLayout) []int {
	out := make([]int, len(res.Lines))
	for i, l := range res.Lines {
		out[i] = l.Index
	}
	return out
}

func keysOf(prefix string, n int) []Key {
	out := make([]Key, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return out
}
