package region

import (
	"cmp"
	"fmt"
)

// Rectangle is an axis-aligned integer rectangle. The coordinate system has
// its origin at the top-left, with Y increasing downward. A Rectangle covers
// the half-open box [X, X+Width) x [Y, Y+Height).
type Rectangle struct {
	X, Y, Width, Height int32
}

// NewRectangle returns the rectangle at (x, y) with the given size.
func NewRectangle(x, y, width, height int32) Rectangle {
	return Rectangle{X: x, Y: y, Width: width, Height: height}
}

// IsValid reports whether the rectangle has a positive width and height.
// Degenerate rectangles are never stored in a Region.
func (r Rectangle) IsValid() bool {
	return r.Width > 0 && r.Height > 0
}

// Coords returns the top-left corner and the exclusive bottom-right corner.
func (r Rectangle) Coords() (x1, y1, x2, y2 int32) {
	return r.X, r.Y, r.X + r.Width, r.Y + r.Height
}

// Move translates the rectangle in place. No bounds checking is done, so the
// result may have negative coordinates.
func (r *Rectangle) Move(dx, dy int32) {
	r.X += dx
	r.Y += dy
}

// Set replaces all four fields.
func (r *Rectangle) Set(x, y, width, height int32) {
	r.X, r.Y, r.Width, r.Height = x, y, width, height
}

// ContainsPoint reports whether (px, py) lies inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rectangle) ContainsPoint(px, py int32) bool {
	return px >= r.X && px < r.X+r.Width &&
		py >= r.Y && py < r.Y+r.Height
}

// Contains reports whether both the top-left corner and the exclusive
// bottom-right corner of other pass ContainsPoint. Because the far corner is
// exclusive, a rectangle sharing r's right or bottom edge is not contained,
// and neither is r itself.
func (r Rectangle) Contains(other Rectangle) bool {
	return r.ContainsPoint(other.X, other.Y) &&
		r.ContainsPoint(other.X+other.Width, other.Y+other.Height)
}

// Intersects returns the overlap of r and other. Rectangles that only share
// an edge do not overlap; in that case the zero Rectangle and false are
// returned.
func (r Rectangle) Intersects(other Rectangle) (Rectangle, bool) {
	x1, y1, x2, y2 := r.Coords()
	ox1, oy1, ox2, oy2 := other.Coords()

	left := max(x1, ox1)
	top := max(y1, oy1)
	right := min(x2, ox2)
	bottom := min(y2, oy2)
	if left >= right || top >= bottom {
		return Rectangle{}, false
	}
	return Rectangle{X: left, Y: top, Width: right - left, Height: bottom - top}, true
}

// overlaps is Intersects without building the overlap rectangle.
func (r Rectangle) overlaps(other Rectangle) bool {
	return max(r.X, other.X) < min(r.X+r.Width, other.X+other.Width) &&
		max(r.Y, other.Y) < min(r.Y+r.Height, other.Y+other.Height)
}

// Area returns Width*Height widened to 64 bits.
func (r Rectangle) Area() int64 {
	return int64(r.Width) * int64(r.Height)
}

// Compare orders rectangles lexicographically on (X, Y, Width, Height).
// It returns -1, 0 or +1. The order is only used to deduplicate; it is not
// a spatial ordering.
func (r Rectangle) Compare(other Rectangle) int {
	switch {
	case r.X != other.X:
		return cmp.Compare(r.X, other.X)
	case r.Y != other.Y:
		return cmp.Compare(r.Y, other.Y)
	case r.Width != other.Width:
		return cmp.Compare(r.Width, other.Width)
	default:
		return cmp.Compare(r.Height, other.Height)
	}
}

// Less reports whether r sorts before other.
func (r Rectangle) Less(other Rectangle) bool {
	return r.Compare(other) < 0
}

func (r Rectangle) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}
