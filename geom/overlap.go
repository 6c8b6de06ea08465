package geom

// TrianglesOverlap reports whether any edge of the triangle (a1,a2,a3)
// properly crosses any edge of the triangle (b1,b2,b3). It takes raw
// vertices rather than a shared Triangle type so the geometry kernel has
// no dependency on the mesh package that owns the DAG's triangle nodes.
func TrianglesOverlap(a1, a2, a3, b1, b2, b3 Point) bool {
	as := [3]Segment{
		NewSegment(a1, a2),
		NewSegment(a3, a2),
		NewSegment(a1, a3),
	}
	bs := [3]Segment{
		NewSegment(b1, b2),
		NewSegment(b3, b2),
		NewSegment(b1, b3),
	}
	for _, s := range as {
		for _, r := range bs {
			if CrossesProperly(s, r) {
				return true
			}
		}
	}
	return false
}
