package triangulate

import (
	"github.com/katalvlaran/kirklocate/geom"
	"github.com/katalvlaran/kirklocate/internal/xlog"
	"github.com/katalvlaran/kirklocate/mesh"
	"github.com/katalvlaran/kirklocate/planargraph"
)

// IsCCW reports whether polygon is wound counter-clockwise. It finds the
// vertex with minimum X (ties broken by minimum Y) and compares the Y
// coordinates of its neighbors: the polygon is CCW iff the previous
// vertex sits higher than the next one.
func IsCCW(polygon []geom.Point) bool {
	n := len(polygon)
	leftmost := 0
	for i := 1; i < n; i++ {
		if polygon[i].X < polygon[leftmost].X ||
			(polygon[i].X == polygon[leftmost].X && polygon[i].Y < polygon[leftmost].Y) {
			leftmost = i
		}
	}
	next := (leftmost + 1) % n
	prev := (n + leftmost - 1) % n
	return polygon[prev].Y > polygon[next].Y
}

// AddTriangle constructs a triangle over p1, p2, p3, wires its three
// edges into g, records it in idx at all three vertices, and returns it.
// Every triangulation pass in this package routes every emitted triangle
// through this single function, so "produced a triangle" and "wired a
// triangle into the graph and index" can never drift apart.
func AddTriangle(g *planargraph.Graph, idx *mesh.Index, p1, p2, p3 geom.Point, isBase, isInside bool) *mesh.Triangle {
	g.AddEdge(p1, p2)
	g.AddEdge(p2, p3)
	g.AddEdge(p3, p1)
	t := mesh.New(p1, p2, p3, isBase, isInside)
	idx.Add(t)
	return t
}

// isEar reports whether (a, b, c) is an ear of the polygon points: a left
// turn (or collinear), with no other vertex of points lying strictly
// inside it. It deliberately scans every vertex of points rather than
// only the current remaining boundary — acceptable because every call
// site passes either a small local polygon (at most MAX_DEGREE+1 points
// during refinement) or the full polygon exactly once, during initial
// triangulation.
func isEar(a, b, c geom.Point, points []geom.Point) bool {
	if geom.IsRightTurn(a, b, c) {
		return false
	}
	for _, pt := range points {
		if pt == a || pt == b || pt == c {
			continue
		}
		if geom.InsideTriangle(a, b, c, pt) {
			return false
		}
	}
	return true
}

// TriangulatePolygon ear-clips the CCW simple polygon points, emitting
// triangles tagged isBase/isInside. Each emitted triangle is wired into g
// and idx via AddTriangle and appended to the returned slice.
func TriangulatePolygon(points []geom.Point, g *planargraph.Graph, idx *mesh.Index, isBase, isInside bool, log *xlog.Logger) []*mesh.Triangle {
	var generated []*mesh.Triangle
	var avail []geom.Point

	for _, pt := range points {
		for len(avail) > 1 {
			a, b := avail[len(avail)-2], avail[len(avail)-1]
			if !isEar(a, b, pt, points) {
				break
			}
			if log.Verbose() {
				log.Debugf("%s %s %s is an ear", a, b, pt)
			}
			generated = append(generated, AddTriangle(g, idx, a, b, pt, isBase, isInside))
			avail = avail[:len(avail)-1]
		}
		avail = append(avail, pt)
	}
	return generated
}
