package lazygrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindIndexByKey(t *testing.T) {
	type tc struct {
		keys []Key
		key  Key
		last int
		want int
	}

	tests := map[string]tc{
		"key still at last index": {
			keys: keysOf("k", 10),
			key:  "k4",
			last: 4,
			want: 4,
		},
		"moved forward": {
			keys: append(keysOf("new", 3), keysOf("k", 10)...),
			key:  "k4",
			last: 4,
			want: 7,
		},
		"moved backward": {
			keys: keysOf("k", 10)[2:],
			key:  "k4",
			last: 4,
			want: 2,
		},
		"not found keeps last": {
			keys: keysOf("x", 10),
			key:  "k4",
			last: 4,
			want: 4,
		},
		"last past the end": {
			keys: keysOf("k", 5),
			key:  "k1",
			last: 9,
			want: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			src := &fakeSource{keys: tt.keys}
			assert.Equal(t, tt.want, findIndexByKey(src, src.Count(), tt.key, tt.last))
		})
	}
}

func TestFindIndexByKey_OutsideWindow(t *testing.T) {
	keys := append(keysOf("new", keySearchWindow+1), keysOf("k", 10)...)
	src := &fakeSource{keys: keys}
	assert.Equal(t, 0, findIndexByKey(src, src.Count(), "k0", 0))
}

func TestScrollState_Resolve(t *testing.T) {
	type tc struct {
		state          scrollState
		count          int
		wantIndex      int
		wantOffset     int
		wantReanchored bool
	}

	tests := map[string]tc{
		"unchanged": {
			state:     scrollState{index: 6, offset: 3},
			count:     20,
			wantIndex: 6, wantOffset: 3,
		},
		"past the end": {
			state:     scrollState{index: 30, offset: 7},
			count:     20,
			wantIndex: 19, wantOffset: 0, wantReanchored: true,
		},
		"empty source": {
			state:     scrollState{index: 4, offset: 2},
			count:     0,
			wantIndex: 4, wantOffset: 2,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			src := newFakeSource(tt.count, 10)
			index, offset, reanchored := tt.state.resolve(src, tt.count)
			assert.Equal(t, tt.wantIndex, index)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantReanchored, reanchored)
		})
	}
}

func TestContentSizeTracker(t *testing.T) {
	tr := newContentSizeTracker()

	size, estimated := tr.total(4)
	assert.Equal(t, 0, size)
	assert.True(t, estimated)

	tr.record(0, 10)
	tr.record(1, 20)
	size, estimated = tr.total(4)
	assert.Equal(t, 60, size)
	assert.True(t, estimated)

	tr.record(2, 30)
	tr.record(3, 40)
	size, estimated = tr.total(4)
	assert.Equal(t, 100, size)
	assert.False(t, estimated)

	tr.record(1, 25)
	size, _ = tr.total(4)
	assert.Equal(t, 105, size)

	tr.reset()
	assert.Equal(t, 0, tr.average())
}

func TestReconciler(t *testing.T) {
	cache := newLineSizeCache(DefaultLineCachePruneAfter)
	rec := &reconciler{cache: cache, sizes: newContentSizeTracker()}
	line := func(index, size int) *MeasuredLine {
		return &MeasuredLine{
			Index:                    index,
			Items:                    []*MeasuredItem{{Index: index, Key: index}},
			MainAxisSizeWithSpacings: size,
		}
	}

	// First observations are not growth.
	rec.observe(line(0, 10))
	rec.observe(line(1, 10))
	assert.Empty(t, rec.take())

	rec.observe(line(0, 15))
	rec.observe(line(1, 8))
	rec.observe(line(2, 10))
	growth := rec.take()
	assert.Equal(t, []LineGrowth{{LineIndex: 0, Key: 0, From: 10, To: 15}}, growth)

	assert.Equal(t, 5, startExpansion(growth, 1))
	assert.Equal(t, 0, startExpansion(growth, 0))

	assert.False(t, rec.shouldRetry(nil, 4), "no growth")
	assert.False(t, rec.shouldRetry(growth, 0), "no scroll consumed")
	assert.True(t, rec.shouldRetry(growth, 4))
	assert.False(t, rec.shouldRetry([]LineGrowth{{LineIndex: 3}}, 4), "already retried")
}
