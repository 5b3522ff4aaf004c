package lazygrid

import "github.com/grindlemire/lazygrid/internal/layout"

// Slots is the cross-axis partition lines are laid out into. Sizes and
// Positions have one entry per slot. With a start-packed arrangement
// Positions[i] is the sum of the sizes before i plus spacing*i.
type Slots struct {
	Sizes     []int
	Positions []int
}

// Len returns the number of slots per line.
func (s Slots) Len() int {
	return len(s.Sizes)
}

// CrossSize returns the cross-axis size covered by span slots starting at
// start, including the spacing between them.
func (s Slots) CrossSize(start, span int) int {
	if span <= 0 || start < 0 || start >= len(s.Sizes) {
		return 0
	}
	if span == 1 {
		return s.Sizes[start]
	}
	end := min(start+span, len(s.Sizes)) - 1
	return max(0, s.Positions[end]+s.Sizes[end]-s.Positions[start])
}

// SlotPolicy decides how many slots a line has and how wide they are.
type SlotPolicy interface {
	// SlotSizes splits available cross-axis space, minus spacing between
	// slots, into slot sizes. It returns nil when nothing fits.
	SlotSizes(available, spacing int) []int
}

// ResolveSlots applies policy to the available cross-axis size and positions
// the slots with arrangement. Non-positive available space yields no slots.
func ResolveSlots(policy SlotPolicy, available int, arrangement layout.Arrangement) Slots {
	if policy == nil || available <= 0 {
		return Slots{}
	}
	sizes := policy.SlotSizes(available, arrangement.Spacing)
	if len(sizes) == 0 {
		return Slots{}
	}
	positions := make([]int, len(sizes))
	arrangement.Arrange(available, sizes, positions)
	return Slots{Sizes: sizes, Positions: positions}
}

// Count splits the cross axis into n equal slots. Leftover pixels go one
// each to the leading slots.
func Count(n int) SlotPolicy {
	return countPolicy(n)
}

type countPolicy int

func (p countPolicy) SlotSizes(available, spacing int) []int {
	return equalSlots(int(p), available, spacing)
}

func equalSlots(n, available, spacing int) []int {
	if n <= 0 || available <= 0 {
		return nil
	}
	usable := max(0, available-spacing*(n-1))
	size := usable / n
	remainder := usable % n
	sizes := make([]int, n)
	for i := range sizes {
		sizes[i] = size
		if i < remainder {
			sizes[i]++
		}
	}
	return sizes
}

// Adaptive fits as many slots as possible that are at least minSize wide,
// always at least one, and splits the space equally between them.
func Adaptive(minSize int) SlotPolicy {
	return adaptivePolicy(minSize)
}

type adaptivePolicy int

func (p adaptivePolicy) SlotSizes(available, spacing int) []int {
	minSize := max(1, int(p))
	n := max(1, (available+spacing)/(minSize+spacing))
	return equalSlots(n, available, spacing)
}

// FixedSize fits as many slots of exactly size as possible. When not even one
// fits, a single slot takes all available space.
func FixedSize(size int) SlotPolicy {
	return fixedSizePolicy(size)
}

type fixedSizePolicy int

func (p fixedSizePolicy) SlotSizes(available, spacing int) []int {
	size := int(p)
	if size <= 0 || available <= 0 {
		return nil
	}
	if size+spacing >= available+spacing {
		return []int{available}
	}
	n := (available + spacing) / (size + spacing)
	sizes := make([]int, n)
	for i := range sizes {
		sizes[i] = size
	}
	return sizes
}

// Weights creates one slot per weight, sized proportionally. Non-positive
// weights produce zero-sized slots; all-zero weights fall back to equal slots.
func Weights(weights ...float64) SlotPolicy {
	return weightsPolicy(append([]float64(nil), weights...))
}

type weightsPolicy []float64

func (p weightsPolicy) SlotSizes(available, spacing int) []int {
	n := len(p)
	if n == 0 || available <= 0 {
		return nil
	}
	total := 0.0
	for _, w := range p {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return equalSlots(n, available, spacing)
	}

	usable := max(0, available-spacing*(n-1))
	sizes := make([]int, n)
	assigned := 0
	for i, w := range p {
		if w > 0 {
			sizes[i] = int(float64(usable) * w / total)
			assigned += sizes[i]
		}
	}
	// Rounding leftovers go to the leading weighted slots.
	for i := 0; assigned < usable; i = (i + 1) % n {
		if p[i] > 0 {
			sizes[i]++
			assigned++
		}
	}
	return sizes
}
