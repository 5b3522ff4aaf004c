// Package config loads grid scenarios from TOML files. A scenario describes
// the grid options, the items and the viewport the grid is laid out in.
package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/grindlemire/lazygrid"
	"github.com/grindlemire/lazygrid/internal/layout"
	"github.com/pelletier/go-toml/v2"
)

// Config is the contents of a scenario file.
type Config struct {
	Orientation         string `toml:"orientation"`
	ReverseLayout       bool   `toml:"reverse_layout"`
	RTL                 bool   `toml:"rtl"`
	BeyondBoundsLines   int    `toml:"beyond_bounds_lines"`
	LineCachePruneAfter int    `toml:"line_cache_prune_after"`

	Slots       SlotsConfig       `toml:"slots"`
	Spacing     SpacingConfig     `toml:"spacing"`
	Padding     PaddingConfig     `toml:"padding"`
	Arrangement ArrangementConfig `toml:"arrangement"`
	Items       []ItemsConfig     `toml:"items"`
	Viewport    ViewportConfig    `toml:"viewport"`
}

type SlotsConfig struct {
	// count, adaptive, fixed or weights
	Policy  string    `toml:"policy"`
	Count   int       `toml:"count"`
	MinSize int       `toml:"min_size"`
	Size    int       `toml:"size"`
	Weights []float64 `toml:"weights"`
}

type SpacingConfig struct {
	Main  int `toml:"main"`
	Cross int `toml:"cross"`
}

type PaddingConfig struct {
	Top    int `toml:"top"`
	Right  int `toml:"right"`
	Bottom int `toml:"bottom"`
	Left   int `toml:"left"`
}

type ArrangementConfig struct {
	Main string `toml:"main"`
}

// ItemsConfig is a run of identical items.
type ItemsConfig struct {
	Count       int    `toml:"count"`
	Span        int    `toml:"span"`
	Size        int    `toml:"size"`
	ContentType string `toml:"content_type"`
}

type ViewportConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Default returns the scenario used when a file leaves values out.
func Default() Config {
	return Config{
		Orientation:         "vertical",
		LineCachePruneAfter: lazygrid.DefaultLineCachePruneAfter,
		Slots:               SlotsConfig{Policy: "count", Count: 3},
		Arrangement:         ArrangementConfig{Main: "start"},
		Items:               []ItemsConfig{{Count: 100, Span: 1, Size: 3}},
		Viewport:            ViewportConfig{Width: 60, Height: 20},
	}
}

// Load reads the scenario at path. Values missing from the file keep their
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes a scenario. name is only used in errors.
func Parse(name string, data []byte) (Config, error) {
	cfg := Default()
	defaults := cfg.Items
	cfg.Items = nil

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse %s: %w", name, err)
	}

	// Fill in required fields that were left empty
	if cfg.Orientation == "" {
		cfg.Orientation = "vertical"
	}
	if cfg.LineCachePruneAfter == 0 {
		cfg.LineCachePruneAfter = lazygrid.DefaultLineCachePruneAfter
	}
	if cfg.Slots.Policy == "" {
		cfg.Slots.Policy = "count"
	}
	if cfg.Arrangement.Main == "" {
		cfg.Arrangement.Main = "start"
	}
	if len(cfg.Items) == 0 {
		cfg.Items = defaults
	}
	for i := range cfg.Items {
		if cfg.Items[i].Size == 0 {
			cfg.Items[i].Size = defaults[0].Size
		}
		if cfg.Items[i].Span == 0 {
			cfg.Items[i].Span = 1
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid %s: %w", name, err)
	}
	return cfg, nil
}

// Validate reports the first value that cannot be turned into grid options.
func (c Config) Validate() error {
	if _, err := c.orientation(); err != nil {
		return err
	}
	if _, err := c.slotPolicy(); err != nil {
		return err
	}
	if _, err := justify(c.Arrangement.Main); err != nil {
		return err
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("viewport must be positive, got %dx%d", c.Viewport.Width, c.Viewport.Height)
	}
	for i, it := range c.Items {
		if it.Count < 0 {
			return fmt.Errorf("items[%d]: count must not be negative, got %d", i, it.Count)
		}
		if it.Size < 0 {
			return fmt.Errorf("items[%d]: size must not be negative, got %d", i, it.Size)
		}
	}
	return nil
}

func (c Config) orientation() (layout.Orientation, error) {
	switch c.Orientation {
	case "vertical":
		return layout.Vertical, nil
	case "horizontal":
		return layout.Horizontal, nil
	default:
		return layout.Vertical, fmt.Errorf("unknown orientation %q", c.Orientation)
	}
}

func (c Config) slotPolicy() (lazygrid.SlotPolicy, error) {
	s := c.Slots
	switch s.Policy {
	case "count":
		return lazygrid.Count(s.Count), nil
	case "adaptive":
		return lazygrid.Adaptive(s.MinSize), nil
	case "fixed":
		return lazygrid.FixedSize(s.Size), nil
	case "weights":
		if len(s.Weights) == 0 {
			return nil, fmt.Errorf("slot policy %q needs weights", s.Policy)
		}
		return lazygrid.Weights(s.Weights...), nil
	default:
		return nil, fmt.Errorf("unknown slot policy %q", s.Policy)
	}
}

func justify(name string) (layout.Justify, error) {
	switch name {
	case "start":
		return layout.JustifyStart, nil
	case "end":
		return layout.JustifyEnd, nil
	case "center":
		return layout.JustifyCenter, nil
	case "space_between":
		return layout.JustifySpaceBetween, nil
	case "space_around":
		return layout.JustifySpaceAround, nil
	case "space_evenly":
		return layout.JustifySpaceEvenly, nil
	default:
		return layout.JustifyStart, fmt.Errorf("unknown arrangement %q", name)
	}
}

// Options converts the scenario into grid options. The config must be valid.
func (c Config) Options() []lazygrid.Option {
	o, _ := c.orientation()
	policy, _ := c.slotPolicy()
	j, _ := justify(c.Arrangement.Main)
	dir := layout.LTR
	if c.RTL {
		dir = layout.RTL
	}

	return []lazygrid.Option{
		lazygrid.WithOrientation(o),
		lazygrid.WithSlots(policy),
		lazygrid.WithMainAxisArrangement(layout.Arrangement{Justify: j, Spacing: c.Spacing.Main}),
		lazygrid.WithCrossAxisArrangement(layout.SpacedBy(c.Spacing.Cross)),
		lazygrid.WithContentPadding(layout.EdgeTRBL(c.Padding.Top, c.Padding.Right, c.Padding.Bottom, c.Padding.Left)),
		lazygrid.WithReverseLayout(c.ReverseLayout),
		lazygrid.WithLayoutDirection(dir),
		lazygrid.WithBeyondBoundsLineCount(c.BeyondBoundsLines),
		lazygrid.WithLineCachePruneAfter(c.LineCachePruneAfter),
	}
}

// Constraints returns the viewport as tight constraints.
func (c Config) Constraints() layout.Constraints {
	return layout.Tight(c.Viewport.Width, c.Viewport.Height)
}

// Source builds the scenario's items.
func (c Config) Source() *Scenario {
	o, _ := c.orientation()
	s := &Scenario{Content: lazygrid.NewContent(), orientation: o, grown: map[int]int{}, spans: map[int]int{}}

	start := 0
	for _, run := range c.Items {
		base := start
		spec := lazygrid.ItemsSpec{
			Measure: func(i int, cs layout.Constraints) lazygrid.Placeable {
				return s.measure(base+i, run, cs)
			},
			Span: func(i int) int {
				return s.span(base+i, run.Span)
			},
		}
		if run.ContentType != "" {
			spec.ContentType = func(int) any { return run.ContentType }
		}
		s.Content.Items(run.Count, spec)
		start += max(0, run.Count)
	}
	return s
}

// Scenario is the item source described by a config. Item sizes and spans
// can be changed after the fact to exercise size reconciliation and line
// reassignment.
type Scenario struct {
	*lazygrid.Content

	orientation layout.Orientation

	mu    sync.Mutex
	grown map[int]int
	spans map[int]int
}

// SetSpan overrides the span of the item at index.
func (s *Scenario) SetSpan(index, span int) {
	s.mu.Lock()
	s.spans[index] = span
	s.mu.Unlock()
	s.Content.SpansChanged()
}

func (s *Scenario) span(index, fallback int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if span, ok := s.spans[index]; ok {
		return span
	}
	return fallback
}

// Grow adds by to the main-axis size of the item at index.
func (s *Scenario) Grow(index, by int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grown[index] += by
}

// ItemLabel is the handle attached to every placeable of a scenario.
type ItemLabel struct {
	Index       int
	ContentType string
}

func (s *Scenario) measure(index int, run ItemsConfig, cs layout.Constraints) lazygrid.Placeable {
	s.mu.Lock()
	main := max(0, run.Size+s.grown[index])
	s.mu.Unlock()

	size := layout.Size{Width: cs.MaxWidth, Height: main}
	if s.orientation == layout.Horizontal {
		size = layout.Size{Width: main, Height: cs.MaxHeight}
	}
	return lazygrid.Placeable{Size: size, Handle: ItemLabel{Index: index, ContentType: run.ContentType}}
}
