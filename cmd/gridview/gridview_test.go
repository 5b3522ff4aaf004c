package main

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grindlemire/lazygrid"
	"github.com/grindlemire/lazygrid/internal/config"
	"github.com/grindlemire/lazygrid/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScene(t *testing.T) *scene {
	t.Helper()
	cfg := config.Default()
	cfg.Slots = config.SlotsConfig{Policy: "count", Count: 2}
	cfg.Items = []config.ItemsConfig{{Count: 6, Span: 1, Size: 3}}
	cfg.Viewport = config.ViewportConfig{Width: 10, Height: 6}
	s, err := newScene(cfg)
	require.NoError(t, err)
	return s
}

func TestParseDumpArgs(t *testing.T) {
	type tc struct {
		args    []string
		want    dumpOptions
		wantErr string
	}

	tests := map[string]tc{
		"path only": {
			args: []string{"grid.toml"},
			want: dumpOptions{path: "grid.toml", steps: 3},
		},
		"steps and delta": {
			args: []string{"-steps", "5", "grid.toml", "-delta", "-2"},
			want: dumpOptions{path: "grid.toml", steps: 5, delta: -2, hasDelta: true},
		},
		"missing path": {
			args:    []string{"-steps", "1"},
			wantErr: "needs a scenario file",
		},
		"missing value": {
			args:    []string{"grid.toml", "-delta"},
			wantErr: "-delta needs a value",
		},
		"bad number": {
			args:    []string{"grid.toml", "-steps", "many"},
			wantErr: `invalid -steps value "many"`,
		},
		"negative steps": {
			args:    []string{"grid.toml", "-steps", "-1"},
			wantErr: "steps must not be negative",
		},
		"two paths": {
			args:    []string{"a.toml", "b.toml"},
			wantErr: `unexpected argument "b.toml"`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := parseDumpArgs(tt.args)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDump(t *testing.T) {
	s := testScene(t)
	var buf bytes.Buffer
	require.NoError(t, dump(&buf, s, dumpOptions{steps: 1, delta: 3, hasDelta: true}))

	out := buf.String()
	assert.Contains(t, out, "step 0: line 0 +0 item 0")
	assert.Contains(t, out, "  item 3 row 1 col 1 at (5,3) 5x3\n")
	assert.Contains(t, out, "step 1: line 1 +0 item 2")
	assert.Contains(t, out, "  item 4 row 2 col 0 at (0,3) 5x3\n")
}

func TestCanvas(t *testing.T) {
	c := newCanvas(8, 3)
	c.Place(lazygrid.Placement{Index: 7, Rect: layout.Rect{X: 0, Y: 0, Width: 5, Height: 3}})
	c.Place(lazygrid.Placement{Index: 8, Rect: layout.Rect{X: 6, Y: 1, Width: 4, Height: 4}, Retained: true})

	want := "┼───┼\n│7  │ ·┄\n┼───┼ ┆"
	assert.Equal(t, want, c.String())
}

func TestViewModel(t *testing.T) {
	type tc struct {
		keys      []string
		wantItem  int
		wantPins  int
		wantDrag  bool
	}

	tests := map[string]tc{
		"scroll a line down": {
			keys:     []string{"j", "j", "j"},
			wantItem: 2,
		},
		"page down and back": {
			keys:     []string{"J", "K"},
			wantItem: 0,
		},
		"pin and release": {
			keys:     []string{"p", "p", "P"},
			wantPins: 1,
		},
		"toggle dragging": {
			keys:     []string{"d"},
			wantDrag: true,
		},
		"unknown key is ignored": {
			keys: []string{"x"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := newViewModel("test", testScene(t))
			for _, k := range tt.keys {
				_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
				assert.Nil(t, cmd)
			}
			require.NoError(t, m.err)
			assert.Equal(t, tt.wantItem, m.scene.res.FirstVisibleItemIndex)
			assert.Len(t, m.pins, tt.wantPins)
			assert.Equal(t, tt.wantDrag, m.dragging)
			assert.Contains(t, m.View(), "gridview test")
		})
	}
}

func TestViewModel_Grow(t *testing.T) {
	m := newViewModel("test", testScene(t))
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	require.NoError(t, m.err)

	rects := map[int]layout.Rect{}
	for _, p := range m.scene.res.Placements {
		rects[p.Index] = p.Rect
	}
	assert.Equal(t, 4, rects[0].Height)
	assert.Equal(t, 4, rects[1].Height)
	assert.Equal(t, 4, rects[2].Y)
}

func TestViewModel_ToggleSpan(t *testing.T) {
	m := newViewModel("test", testScene(t))
	key := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}

	m.Update(key)
	require.NoError(t, m.err)
	require.NotEmpty(t, m.scene.res.Lines)
	assert.Equal(t, 1, m.scene.res.Lines[0].ItemCount)
	assert.Equal(t, 10, m.scene.res.Placements[0].Rect.Width)

	m.Update(key)
	require.NoError(t, m.err)
	assert.Equal(t, 2, m.scene.res.Lines[0].ItemCount)
}

func TestCanvas_SkipsOffscreen(t *testing.T) {
	c := newCanvas(6, 2)
	c.Place(lazygrid.Placement{Index: 1, Rect: layout.Rect{X: 0, Y: -9, Width: 6, Height: 4}, Retained: true})
	c.Place(lazygrid.Placement{Index: 2, Rect: layout.Rect{X: 0, Y: 2, Width: 6, Height: 4}, Retained: true})
	assert.Equal(t, "\n", c.String())

	c.Place(lazygrid.Placement{Index: 3, Rect: layout.Rect{X: -2, Y: -1, Width: 5, Height: 2}})
	assert.Equal(t, "──┼\n", c.String())
}

func TestViewModel_Quit(t *testing.T) {
	m := newViewModel("test", testScene(t))
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
