package region

import (
	"cmp"
	"fmt"
	"slices"
)

// yEvent is one horizontal edge seen by the inner sweep: +1 where an
// active rectangle starts covering, -1 where it stops.
type yEvent struct {
	y     int32
	delta int
}

// unionArea returns the area of the union of rects by sweeping a vertical
// line across the compressed set of left and right edges. Between two
// consecutive edges the covered height of the active rectangles is constant,
// so each slab contributes cutLength * Δx. rects is not modified.
//
// The active set is a plain slice, so the sweep is O(n²) in the number of
// rectangles.
func unionArea(rects []Rectangle) int64 {
	if len(rects) == 0 {
		return 0
	}

	// Degenerate rectangles cover nothing and would never leave the
	// active set, so they are skipped.
	sorted := slices.DeleteFunc(slices.Clone(rects), func(r Rectangle) bool {
		return !r.IsValid()
	})
	slices.SortFunc(sorted, func(a, b Rectangle) int {
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		return a.Compare(b)
	})

	xs := make([]int32, 0, len(sorted)*2)
	for _, r := range sorted {
		xs = append(xs, r.X, r.X+r.Width)
	}
	slices.Sort(xs)
	xs = slices.Compact(xs)

	var stats sweepStats
	stats.events = len(xs)

	var (
		area   int64
		active = make([]Rectangle, 0, len(sorted))
		ys     = make([]yEvent, 0, len(sorted)*2)
		next   int
	)
	for i, x := range xs {
		// Leave rectangles whose right edge is this event.
		active = slices.DeleteFunc(active, func(r Rectangle) bool {
			return r.X+r.Width == x
		})
		// Enter rectangles whose left edge is this event.
		for next < len(sorted) && sorted[next].X == x {
			active = append(active, sorted[next])
			next++
		}
		stats.maxActive = max(stats.maxActive, len(active))

		if i+1 == len(xs) || len(active) == 0 {
			continue
		}
		dx := int64(xs[i+1]) - int64(x)
		var cut int64
		cut, ys = cutLength(active, ys[:0])
		area += cut * dx
		stats.slabs++
	}

	if debug {
		debugLogSweep(stats)
	}
	return area
}

// cutLength returns the total length of the y-axis covered by at least one
// of the active rectangles. buf is scratch space for the edge events and is
// returned for reuse.
func cutLength(active []Rectangle, buf []yEvent) (int64, []yEvent) {
	for _, r := range active {
		buf = append(buf, yEvent{y: r.Y, delta: 1}, yEvent{y: r.Y + r.Height, delta: -1})
	}
	// Entries sort before exits at the same y so the counter never dips
	// below zero.
	slices.SortFunc(buf, func(a, b yEvent) int {
		if c := cmp.Compare(a.y, b.y); c != 0 {
			return c
		}
		return cmp.Compare(b.delta, a.delta)
	})

	var (
		length int64
		count  int
		prev   int32
	)
	for _, e := range buf {
		if count > 0 {
			length += int64(e.y) - int64(prev)
		}
		count += e.delta
		if count < 0 {
			panic(fmt.Sprintf("region: negative overlap count at y=%d", e.y))
		}
		prev = e.y
	}
	return length, buf
}
