package lazygrid

import "errors"

var (
	// ErrNilSource is returned by New when no item source is given.
	ErrNilSource = errors.New("lazygrid: nil item source")

	// ErrInfiniteMainAxis is returned by Layout when the container does not
	// bound the scrolling axis. Wrap a grid in something with a finite size.
	ErrInfiniteMainAxis = errors.New("lazygrid: infinite main-axis constraint")

	// ErrInfiniteCrossAxis is returned by Layout when the container does not
	// bound the axis slots are resolved against.
	ErrInfiniteCrossAxis = errors.New("lazygrid: infinite cross-axis constraint")
)
