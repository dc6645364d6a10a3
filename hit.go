package region

import "math"

// --- Built-in HitShape types ---

// HitShape is anything that can answer a point query in world coordinates.
// Editors use it to hit-test collision data alongside sprite bounds.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area in world coordinates.
// Unlike Rectangle it is edge-inclusive, matching sprite hit areas.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitRegion adapts a Region to HitShape. World coordinates are shifted by
// the offset and floored to the pixel that contains them.
type HitRegion struct {
	Region           *Region
	OffsetX, OffsetY float64
}

// Contains reports whether the pixel under (x, y) is covered by the region.
func (h HitRegion) Contains(x, y float64) bool {
	if h.Region == nil {
		return false
	}
	px, ok := toPixel(x - h.OffsetX)
	if !ok {
		return false
	}
	py, ok := toPixel(y - h.OffsetY)
	if !ok {
		return false
	}
	return h.Region.ContainsPoint(px, py)
}

// toPixel floors v to an int32 pixel coordinate. It reports false for NaN
// and values outside the int32 range.
func toPixel(v float64) (int32, bool) {
	f := math.Floor(v)
	if math.IsNaN(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}
	return int32(f), true
}

// hitTest returns the index of the topmost shape containing (x, y), or -1.
// Later shapes are on top.
func hitTest(shapes []HitShape, x, y float64) int {
	for i := len(shapes) - 1; i >= 0; i-- {
		if shapes[i] != nil && shapes[i].Contains(x, y) {
			return i
		}
	}
	return -1
}
