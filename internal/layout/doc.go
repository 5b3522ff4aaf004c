// Package layout holds the integer geometry shared by the grid engine.
//
// Everything is measured in whole pixels (or terminal cells). Sizes along the
// scroll direction are "main axis" values and sizes across it are "cross axis"
// values; [Orientation] converts between the two views of a [Size] or [Point].
// [Constraints] carries the min/max bounds handed to a measurement callback and
// [Arrangement] distributes lines when content is shorter than the viewport.
package layout
