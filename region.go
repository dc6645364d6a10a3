package region

import "slices"

// Region is a set of axis-aligned rectangles whose union defines a 2D area.
// Members may overlap, but no member is ever fully covered by another one
// added after it: Add drops the members the new rectangle covers.
//
// The zero value is an empty region ready to use. A Region owns its member
// list; copy it with Clone rather than by assignment.
//
// Region is not safe for concurrent use.
type Region struct {
	rects  []Rectangle
	tracer Tracer
}

// NewRegion creates a region from an explicit list of rectangles, typically
// read back from a map file. The list is copied as-is: no pruning is done and
// validity is the caller's responsibility (checked only in debug mode).
func NewRegion(rects []Rectangle) *Region {
	if debug {
		for _, r := range rects {
			debugCheckRect(r, "NewRegion")
		}
	}
	return &Region{rects: slices.Clone(rects)}
}

// SetTracer installs a hook that is called after every mutating operation.
// Passing nil restores the default, which prints to stderr only when debug
// mode is enabled.
func (reg *Region) SetTracer(t Tracer) {
	reg.tracer = t
}

// Data returns the current members in implementation-defined order. The
// returned slice must not be modified; it is valid until the next mutation.
func (reg *Region) Data() []Rectangle {
	return reg.rects
}

// Size returns the number of members.
func (reg *Region) Size() int {
	return len(reg.rects)
}

// Clear removes all members.
func (reg *Region) Clear() {
	reg.rects = reg.rects[:0]
	reg.trace("clear", Rectangle{})
}

// Clone returns a deep copy of the region. The tracer is shared.
func (reg *Region) Clone() *Region {
	return &Region{rects: slices.Clone(reg.rects), tracer: reg.tracer}
}

// Add unions r into the region. If the region already covers r nothing
// changes. Otherwise every member that r contains is removed and r is
// appended.
func (reg *Region) Add(r Rectangle) {
	if debug {
		debugCheckRect(r, "Add")
	}
	if reg.insert(r) {
		reg.trace("add", r)
	}
}

// insert is Add without tracing. It reports whether the region changed.
func (reg *Region) insert(r Rectangle) bool {
	if reg.Contains(r) {
		return false
	}
	reg.rects = slices.DeleteFunc(reg.rects, func(m Rectangle) bool {
		return r.Contains(m)
	})
	reg.rects = append(reg.rects, r)
	if debug {
		debugCheckMemberCount(reg)
	}
	return true
}

// ContainsPoint reports whether any member contains (x, y).
func (reg *Region) ContainsPoint(x, y int32) bool {
	for _, m := range reg.rects {
		if m.ContainsPoint(x, y) {
			return true
		}
	}
	return false
}

// Contains reports whether r is fully covered by the union of the members.
func (reg *Region) Contains(r Rectangle) bool {
	var pieces []Rectangle
	for _, m := range reg.rects {
		if o, ok := r.Intersects(m); ok {
			pieces = append(pieces, o)
		}
	}
	if len(pieces) == 0 {
		return false
	}

	// Identical overlaps collapse to one piece.
	slices.SortFunc(pieces, Rectangle.Compare)
	pieces = slices.Compact(pieces)

	// The plain sum can only over-count overlaps, so falling short of the
	// target proves a gap.
	want := r.Area()
	var sum int64
	for _, p := range pieces {
		sum += p.Area()
	}
	if sum < want {
		return false
	}
	return unionArea(pieces) == want
}

// Intersects reports whether any member overlaps r.
func (reg *Region) Intersects(r Rectangle) bool {
	for _, m := range reg.rects {
		if m.overlaps(r) {
			return true
		}
	}
	return false
}

// Area returns the exact area of the union of all members.
func (reg *Region) Area() int64 {
	return unionArea(reg.rects)
}

// Subtract removes r from the region. Each overlapped member is replaced by
// up to four strips around the overlap; the strips may overlap each other at
// the corners.
func (reg *Region) Subtract(r Rectangle) {
	out := &Region{rects: make([]Rectangle, 0, len(reg.rects))}
	var buf [4]Rectangle
	for _, m := range reg.rects {
		o, ok := m.Intersects(r)
		if !ok {
			out.rects = append(out.rects, m)
			continue
		}
		for _, p := range difference(buf[:0], m, o) {
			out.insert(p)
		}
	}
	reg.rects = out.rects
	reg.trace("subtract", r)
}

// Xor replaces the region by its symmetric difference with r, member by
// member: each overlapped member m contributes m minus the overlap and r
// minus the overlap. Members are not re-tiled against each other. When r
// overlaps no member it is added whole.
func (reg *Region) Xor(r Rectangle) {
	out := &Region{rects: make([]Rectangle, 0, len(reg.rects)+1)}
	var buf [8]Rectangle
	hit := false
	for _, m := range reg.rects {
		o, ok := m.Intersects(r)
		if !ok {
			out.rects = append(out.rects, m)
			continue
		}
		hit = true
		pieces := difference(buf[:0], m, o)
		pieces = difference(pieces, r, o)
		for _, p := range pieces {
			out.insert(p)
		}
	}
	if !hit && r.IsValid() {
		out.insert(r)
	}
	reg.rects = out.rects
	reg.trace("xor", r)
}

// Intersect clips the region to r. Members outside r are dropped.
func (reg *Region) Intersect(r Rectangle) {
	out := &Region{rects: make([]Rectangle, 0, len(reg.rects))}
	for _, m := range reg.rects {
		if o, ok := m.Intersects(r); ok {
			out.insert(o)
		}
	}
	reg.rects = out.rects
	reg.trace("intersect", r)
}

// Move translates every member by (dx, dy).
func (reg *Region) Move(dx, dy int32) {
	for i := range reg.rects {
		reg.rects[i].Move(dx, dy)
	}
	reg.trace("move", Rectangle{X: dx, Y: dy})
}

// Bounds returns the smallest rectangle enclosing every member, or the zero
// Rectangle for an empty region.
func (reg *Region) Bounds() Rectangle {
	if len(reg.rects) == 0 {
		return Rectangle{}
	}
	x1, y1, x2, y2 := reg.rects[0].Coords()
	for _, m := range reg.rects[1:] {
		mx1, my1, mx2, my2 := m.Coords()
		x1 = min(x1, mx1)
		y1 = min(y1, my1)
		x2 = max(x2, mx2)
		y2 = max(y2, my2)
	}
	return Rectangle{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// difference appends the valid strips of m outside o to dst. o must lie
// inside m. The strips are, in order: top, left, right and bottom.
func difference(dst []Rectangle, m, o Rectangle) []Rectangle {
	mx1, my1, mx2, my2 := m.Coords()
	ox1, oy1, ox2, oy2 := o.Coords()

	strips := [4]Rectangle{
		{X: mx1, Y: my1, Width: m.Width, Height: oy1 - my1},
		{X: mx1, Y: my1, Width: ox1 - mx1, Height: m.Height},
		{X: ox2, Y: my1, Width: mx2 - ox2, Height: m.Height},
		{X: mx1, Y: oy2, Width: m.Width, Height: my2 - oy2},
	}
	for _, s := range strips {
		if s.IsValid() {
			dst = append(dst, s)
		}
	}
	return dst
}
