package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/grindlemire/lazygrid"
	"github.com/grindlemire/lazygrid/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	type tc struct {
		input   string
		want    func(c *Config)
		wantErr string
	}

	tests := map[string]tc{
		"empty file keeps defaults": {
			input: ``,
			want:  func(c *Config) {},
		},
		"full scenario": {
			input: `
orientation = "horizontal"
reverse_layout = true
rtl = true
beyond_bounds_lines = 2
line_cache_prune_after = 30

[slots]
policy = "weights"
weights = [1.0, 2.0]

[spacing]
main = 1
cross = 2

[padding]
top = 1
bottom = 2

[arrangement]
main = "space_between"

[[items]]
count = 5
size = 4

[[items]]
count = 2
span = 2
content_type = "header"

[viewport]
width = 30
height = 10
`,
			want: func(c *Config) {
				c.Orientation = "horizontal"
				c.ReverseLayout = true
				c.RTL = true
				c.BeyondBoundsLines = 2
				c.LineCachePruneAfter = 30
				c.Slots = SlotsConfig{Policy: "weights", Count: 3, Weights: []float64{1, 2}}
				c.Spacing = SpacingConfig{Main: 1, Cross: 2}
				c.Padding = PaddingConfig{Top: 1, Bottom: 2}
				c.Arrangement.Main = "space_between"
				c.Items = []ItemsConfig{
					{Count: 5, Span: 1, Size: 4},
					{Count: 2, Span: 2, Size: 3, ContentType: "header"},
				}
				c.Viewport = ViewportConfig{Width: 30, Height: 10}
			},
		},
		"unknown orientation": {
			input:   `orientation = "diagonal"`,
			wantErr: `unknown orientation "diagonal"`,
		},
		"unknown slot policy": {
			input:   "[slots]\npolicy = \"golden\"",
			wantErr: `unknown slot policy "golden"`,
		},
		"weights without weights": {
			input:   "[slots]\npolicy = \"weights\"",
			wantErr: "needs weights",
		},
		"unknown arrangement": {
			input:   "[arrangement]\nmain = \"middle\"",
			wantErr: `unknown arrangement "middle"`,
		},
		"negative item count": {
			input:   "[[items]]\ncount = -1",
			wantErr: "items[0]: count must not be negative",
		},
		"zero viewport": {
			input:   "[viewport]\nwidth = 0\nheight = 5",
			wantErr: "viewport must be positive",
		},
		"malformed toml": {
			input:   `orientation = `,
			wantErr: "failed to parse scenario.toml",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Parse("scenario.toml", []byte(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)

			want := Default()
			tt.want(&want)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.toml")
	require.NoError(t, os.WriteFile(path, []byte("[slots]\ncount = 4\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Slots.Count)
	assert.Equal(t, "count", cfg.Slots.Policy)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestConfig_DrivesGrid(t *testing.T) {
	cfg, err := Parse("grid.toml", []byte(`
[slots]
count = 2

[spacing]
main = 1

[[items]]
count = 3
size = 4

[[items]]
count = 1
span = 2
size = 2
content_type = "footer"

[viewport]
width = 20
height = 30
`))
	require.NoError(t, err)

	src := cfg.Source()
	require.Equal(t, 4, src.Count())

	g, err := lazygrid.New(src, cfg.Options()...)
	require.NoError(t, err)
	res, err := g.Layout(cfg.Constraints())
	require.NoError(t, err)

	got := map[int]layout.Rect{}
	for _, p := range res.Placements {
		got[p.Index] = p.Rect
	}
	want := map[int]layout.Rect{
		0: {X: 0, Y: 0, Width: 10, Height: 4},
		1: {X: 10, Y: 0, Width: 10, Height: 4},
		2: {X: 0, Y: 5, Width: 10, Height: 4},
		3: {X: 0, Y: 10, Width: 20, Height: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "footer", res.Placements[3].ContentType)
	assert.Equal(t, ItemLabel{Index: 3, ContentType: "footer"}, res.Placements[3].Handle)
}

func TestScenario_Grow(t *testing.T) {
	cfg := Default()
	cfg.Items = []ItemsConfig{{Count: 6, Span: 1, Size: 3}}
	src := cfg.Source()

	before := src.Measure(1, layout.FixedWidth(10))
	src.Grow(1, 2)
	after := src.Measure(1, layout.FixedWidth(10))

	assert.Equal(t, 3, before.Size.Height)
	assert.Equal(t, 5, after.Size.Height)
	assert.Equal(t, 10, after.Size.Width)
}

func TestScenario_SetSpan(t *testing.T) {
	cfg := Default()
	cfg.Slots = SlotsConfig{Policy: "count", Count: 3}
	cfg.Items = []ItemsConfig{{Count: 6, Span: 1, Size: 3}}
	cfg.Viewport = ViewportConfig{Width: 30, Height: 20}
	src := cfg.Source()

	g, err := lazygrid.New(src, cfg.Options()...)
	require.NoError(t, err)
	res, err := g.Layout(cfg.Constraints())
	require.NoError(t, err)
	require.Len(t, res.Lines, 2)

	src.SetSpan(1, 3)
	assert.Equal(t, 3, src.Span(1))
	assert.Equal(t, uint64(1), src.SpanVersion())

	res, err = g.Layout(cfg.Constraints())
	require.NoError(t, err)
	got := make([]int, len(res.Lines))
	for i, l := range res.Lines {
		got[i] = l.FirstItemIndex
	}
	assert.Equal(t, []int{0, 1, 2, 5}, got)
}
