package lazygrid

import (
	"fmt"

	"github.com/grindlemire/lazygrid/internal/layout"
	"go.uber.org/zap"
)

// Option is a functional option for configuring a Grid.
type Option func(*Grid) error

// WithOrientation sets the scroll direction. Default is layout.Vertical.
func WithOrientation(o layout.Orientation) Option {
	return func(g *Grid) error {
		if o != layout.Vertical && o != layout.Horizontal {
			return fmt.Errorf("unknown orientation %d", o)
		}
		g.orientation = o
		return nil
	}
}

// WithSlots sets how the cross axis is split into slots. Default is Count(1).
func WithSlots(policy SlotPolicy) Option {
	return func(g *Grid) error {
		if policy == nil {
			return fmt.Errorf("slot policy must not be nil")
		}
		g.slotPolicy = policy
		return nil
	}
}

// WithMainAxisArrangement sets the spacing between lines and how lines are
// distributed when the content is shorter than the viewport.
func WithMainAxisArrangement(a layout.Arrangement) Option {
	return func(g *Grid) error {
		g.mainArrangement = a
		return nil
	}
}

// WithCrossAxisArrangement sets the spacing between slots and how slots are
// distributed when they do not fill the cross axis.
func WithCrossAxisArrangement(a layout.Arrangement) Option {
	return func(g *Grid) error {
		if a.Spacing < 0 {
			return fmt.Errorf("cross-axis spacing must not be negative, got %d", a.Spacing)
		}
		g.crossArrangement = a
		return nil
	}
}

// WithSpacing is shorthand for start-packed arrangements with the given line
// and slot spacing.
func WithSpacing(mainAxis, crossAxis int) Option {
	return func(g *Grid) error {
		if err := WithMainAxisArrangement(layout.SpacedBy(mainAxis))(g); err != nil {
			return err
		}
		return WithCrossAxisArrangement(layout.SpacedBy(crossAxis))(g)
	}
}

// WithContentPadding sets padding around the content. Content scrolls
// through the main-axis padding.
func WithContentPadding(e layout.Edges) Option {
	return func(g *Grid) error {
		if e.Top < 0 || e.Right < 0 || e.Bottom < 0 || e.Left < 0 {
			return fmt.Errorf("content padding must not be negative, got %+v", e)
		}
		g.padding = e
		return nil
	}
}

// WithReverseLayout lays lines out from the end of the main axis.
func WithReverseLayout(reverse bool) Option {
	return func(g *Grid) error {
		g.reverseLayout = reverse
		return nil
	}
}

// WithLayoutDirection sets the reading direction. RTL mirrors slots of a
// vertical grid and lines of a horizontal one.
func WithLayoutDirection(d layout.LayoutDirection) Option {
	return func(g *Grid) error {
		g.direction = d
		return nil
	}
}

// WithBeyondBoundsLineCount keeps n lines measured on each side of the
// viewport. Default is 0.
func WithBeyondBoundsLineCount(n int) Option {
	return func(g *Grid) error {
		if n < 0 {
			return fmt.Errorf("beyond-bounds line count must not be negative, got %d", n)
		}
		g.beyondBoundsLineCount = n
		return nil
	}
}

// WithLineCachePruneAfter sets how many passes a cached line size survives
// without being observed. Default is DefaultLineCachePruneAfter.
func WithLineCachePruneAfter(passes int) Option {
	return func(g *Grid) error {
		if passes < 1 {
			return fmt.Errorf("line cache prune interval must be at least 1 pass")
		}
		g.lineCache = newLineSizeCache(passes)
		return nil
	}
}

// WithLogger sets the logger for this grid. Default is Logger().
func WithLogger(l *zap.Logger) Option {
	return func(g *Grid) error {
		if l == nil {
			return fmt.Errorf("logger must not be nil")
		}
		g.log = l
		return nil
	}
}

// WithStartExpandHook registers fn to be called with the number of pixels
// lines above the first visible line grew by, whenever growth is absorbed
// without moving the viewport.
func WithStartExpandHook(fn func(expansion int)) Option {
	return func(g *Grid) error {
		g.onStartExpand = fn
		return nil
	}
}

// WithPlacementQueueSize bounds the number of pending placement deltas.
// Default is 1024.
func WithPlacementQueueSize(n int) Option {
	return func(g *Grid) error {
		if n < 1 {
			return fmt.Errorf("placement queue size must be at least 1")
		}
		g.placements = NewPlacementQueue(n)
		return nil
	}
}

// WithoutPrefetch stops Layout from scheduling prefetch requests.
func WithoutPrefetch() Option {
	return func(g *Grid) error {
		g.prefetchEnabled = false
		return nil
	}
}
