package geom

import "fmt"

// Point is an ordered pair of 32-bit signed integer coordinates.
type Point struct {
	X, Y int32
}

// String renders p as a short, unambiguous form safe to print in logs
// and test failures.
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Less gives the lexicographic ordering on (X, Y). It exists only for
// container keying and deterministic iteration — it carries no geometric
// meaning.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Segment is an unordered pair of distinct points.
type Segment struct {
	A, B Point
}

// NewSegment builds a Segment. It panics if a == b: a segment must have
// two distinct endpoints, and callers in this module never construct one
// from a degenerate pair.
func NewSegment(a, b Point) Segment {
	if a == b {
		panic(fmt.Sprintf("geom: degenerate segment at %s", a))
	}
	return Segment{A: a, B: b}
}
