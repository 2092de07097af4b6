package graphics

// Rect is an axis-aligned rectangle. W and H are never negative.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect returns the rectangle at origin with size s, clamping negative
// dimensions to zero.
func NewRect(origin Coord, s Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, W: max(s.W, 0), H: max(s.H, 0)}
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p Coord) bool {
	return r.X <= p.X && p.X < r.X+r.W &&
		r.Y <= p.Y && p.Y < r.Y+r.H
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersect returns the largest rectangle contained by both r and s.
func (r Rect) Intersect(s Rect) Rect {
	x0, y0 := max(r.X, s.X), max(r.Y, s.Y)
	x1, y1 := min(r.X+r.W, s.X+s.W), min(r.Y+r.H, s.Y+s.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
