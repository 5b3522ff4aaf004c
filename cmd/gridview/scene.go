package main

import (
	"fmt"

	"github.com/grindlemire/lazygrid"
	"github.com/grindlemire/lazygrid/internal/config"
	"github.com/grindlemire/lazygrid/internal/debug"
)

// scene is a loaded scenario and the grid laid out over it.
type scene struct {
	cfg  config.Config
	src  *config.Scenario
	grid *lazygrid.Grid
	res  *lazygrid.RealizedLayout

	deltas     int
	prefetched int
}

func loadScene(path string) (*scene, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return newScene(cfg)
}

func newScene(cfg config.Config) (*scene, error) {
	src := cfg.Source()
	opts := append(cfg.Options(), lazygrid.WithLogger(debug.Logger()))
	g, err := lazygrid.New(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating grid: %w", err)
	}
	s := &scene{cfg: cfg, src: src, grid: g}
	if err := s.layout(); err != nil {
		return nil, err
	}
	return s, nil
}

// layout runs a pass and drains the queues the way a host would after
// painting.
func (s *scene) layout() error {
	res, err := s.grid.Layout(s.cfg.Constraints())
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	s.res = res
	s.deltas = len(s.grid.Placements().Drain())
	s.prefetched = s.grid.Prefetch().Drain(8, func(r lazygrid.PrefetchRequest) {
		s.src.Measure(r.ItemIndex, r.Constraints)
	})
	return nil
}

// viewportMain is the main-axis size of the viewport.
func (s *scene) viewportMain() int {
	if s.cfg.Orientation == "horizontal" {
		return s.cfg.Viewport.Width
	}
	return s.cfg.Viewport.Height
}

// firstLine returns the first visible line of the last pass.
func (s *scene) firstLine() (lazygrid.LineInfo, bool) {
	for _, l := range s.res.Lines {
		if l.Index == s.res.FirstVisibleLineIndex {
			return l, true
		}
	}
	return lazygrid.LineInfo{}, false
}

// toggleWideFirstItem makes the first visible item fill its line, or puts
// it back to a single slot.
func (s *scene) toggleWideFirstItem() {
	index := s.res.FirstVisibleItemIndex
	if s.src.Span(index) > 1 {
		s.src.SetSpan(index, 1)
		return
	}
	s.src.SetSpan(index, max(1, s.res.SlotsPerLine))
}

// growFirstLine grows every item of the first visible line by one cell.
func (s *scene) growFirstLine() {
	l, ok := s.firstLine()
	if !ok {
		return
	}
	for i := l.FirstItemIndex; i < l.FirstItemIndex+l.ItemCount; i++ {
		s.src.Grow(i, 1)
	}
}
