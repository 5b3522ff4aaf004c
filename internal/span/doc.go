// Package span assigns grid items to lines.
//
// Items fill the slots of a line strictly in index order. An item whose span
// does not fit into the slots left on the current line starts the next line,
// so a line only has unfilled slots when the following item is too wide for
// them. Spans are clamped into 1..slotsPerLine and are never discarded.
//
// Resolving the line of an item far into a large list requires walking every
// line before it. [Provider] keeps a forward-filled prefix cache of line
// starts, one entry every [BucketSize] lines, so repeated lookups around the
// viewport stay cheap no matter how far the list has been scrolled.
package span
