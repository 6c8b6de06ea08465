package triangulate

import (
	"github.com/katalvlaran/kirklocate/geom"
	"github.com/katalvlaran/kirklocate/mesh"
	"github.com/katalvlaran/kirklocate/planargraph"
)

// BuildOuterPoints computes a right triangle guaranteed to strictly
// contain every point in points, with at least 10 units of margin on
// every side:
//
//	O0 = (xMin-10, yMin-10)
//	O1 = (c-yMin, yMin-10)   where c = max(x+y) + 10
//	O2 = (xMin-10, c-xMin)
func BuildOuterPoints(points []geom.Point) [3]geom.Point {
	xMin, yMin := points[0].X, points[0].Y
	c := int64(points[0].X) + int64(points[0].Y)
	for _, p := range points {
		if p.X < xMin {
			xMin = p.X
		}
		if p.Y < yMin {
			yMin = p.Y
		}
		if s := int64(p.X) + int64(p.Y); s > c {
			c = s
		}
	}
	xMin -= 10
	yMin -= 10
	c += 10

	o0 := geom.Point{X: xMin, Y: yMin}
	o1 := geom.Point{X: int32(c - int64(yMin)), Y: yMin}
	o2 := geom.Point{X: xMin, Y: int32(c - int64(xMin))}
	return [3]geom.Point{o0, o1, o2}
}

// isVisible reports whether hull[i] is visible from outer[j] along the
// hull edge (i-1, i) — i.e. whether outer[j] sees hull[i] past hull[i-1].
// Callers only ever pass i in [1, len(hull)-1], so no wraparound is
// needed for the i-1 index.
func isVisible(hull []geom.Point, i int, outer [3]geom.Point, j int) bool {
	return geom.IsRightTurn(outer[j], hull[i-1], hull[i])
}

// TriangulateWithOuterTriangle fills the region between the CCW convex
// hull (hull[0] leftmost) and the CCW outer bounding triangle outer,
// connecting each hull vertex to the outer vertex or vertices that see it.
func TriangulateWithOuterTriangle(hull []geom.Point, outer [3]geom.Point, g *planargraph.Graph, idx *mesh.Index) {
	// hull[0] is leftmost, so it sees both outer[0] and outer[2].
	AddTriangle(g, idx, hull[0], outer[2], outer[0], true, false)

	lastSeen := 0
	for i := 1; i < len(hull); i++ {
		if isVisible(hull, i, outer, lastSeen) {
			AddTriangle(g, idx, hull[i-1], outer[lastSeen], hull[i], true, false)
		}
		if lastSeen == 2 {
			continue
		}
		if isVisible(hull, i, outer, lastSeen+1) {
			AddTriangle(g, idx, outer[lastSeen], outer[lastSeen+1], hull[i], true, false)
			lastSeen++
		}
	}
}
