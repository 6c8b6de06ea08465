package triangulate

import (
	"github.com/katalvlaran/kirklocate/geom"
	"github.com/katalvlaran/kirklocate/internal/xlog"
	"github.com/katalvlaran/kirklocate/mesh"
	"github.com/katalvlaran/kirklocate/planargraph"
)

// TriangulatePockets walks points starting at its leftmost vertex and
// builds the convex hull in one monotone-chain-like pass. Every time a
// vertex pops off the hull stack, the popped vertex together with its two
// hull neighbors forms a pocket triangle, emitted as base/non-interior.
// It returns the convex hull: CCW, starting at the leftmost vertex —
// exactly the stack's final contents. The walk ends back at the leftmost
// vertex, so the returned slice repeats it as its last element.
func TriangulatePockets(points []geom.Point, g *planargraph.Graph, idx *mesh.Index, log *xlog.Logger) []geom.Point {
	n := len(points)
	leftmost := 0
	for i := 1; i < n; i++ {
		if points[i].X < points[leftmost].X {
			leftmost = i
		}
	}
	if log.Verbose() {
		log.Debugf("%s is the leftmost", points[leftmost])
	}

	hull := []geom.Point{points[leftmost], points[(leftmost+1)%n]}
	for i := leftmost + 2; i-leftmost != n+1; i++ {
		pt := points[i%n]
		for len(hull) > 1 {
			a, b := hull[len(hull)-2], hull[len(hull)-1]
			if !geom.IsRightTurn(a, b, pt) {
				hull = append(hull, pt)
				break
			}
			if log.Verbose() {
				log.Debugf("%s %s %s is a pocket", pt, b, a)
			}
			AddTriangle(g, idx, pt, b, a, true, false)
			hull = hull[:len(hull)-1]
		}
	}
	return hull
}
