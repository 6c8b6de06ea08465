package geom

import "testing"

func TestTrianglesOverlap(t *testing.T) {
	a1, a2, a3 := Point{0, 0}, Point{10, 0}, Point{0, 10}
	// Disjoint triangle, far away.
	b1, b2, b3 := Point{100, 100}, Point{110, 100}, Point{100, 110}
	if TrianglesOverlap(a1, a2, a3, b1, b2, b3) {
		t.Error("disjoint triangles must not overlap")
	}

	// Overlapping triangle sharing interior region.
	c1, c2, c3 := Point{2, 2}, Point{12, 2}, Point{2, 12}
	if !TrianglesOverlap(a1, a2, a3, c1, c2, c3) {
		t.Error("expected overlapping triangles to report overlap")
	}

	// Adjacent triangles sharing only an edge: no edge properly crosses.
	d1, d2, d3 := Point{10, 0}, Point{0, 10}, Point{10, 10}
	if TrianglesOverlap(a1, a2, a3, d1, d2, d3) {
		t.Error("triangles sharing only an edge must not report a proper crossing")
	}
}
