package mesh

import (
	"fmt"

	"github.com/katalvlaran/kirklocate/geom"
)

// Triangle is a node of the search DAG. P1, P2, P3 are CCW for every
// non-root triangle; the root "virtual" triangle over the three outer
// bounding points is exempt from that invariant (it is never tested for
// sidedness against itself the way real triangles are).
//
// IsInside is only meaningful when IsBase is true. Children is empty for
// base triangles and non-empty for every other node; the union of the
// children's regions equals this triangle's region at the moment it was
// built.
type Triangle struct {
	P1, P2, P3 geom.Point
	IsBase     bool
	IsInside   bool
	Children   []*Triangle
}

// New constructs a Triangle. It does not verify CCW-ness itself — callers
// (triangulate.TriangulatePolygon, triangulate.TriangulatePockets,
// triangulate.TriangulateWithOuterTriangle, and kirkpatrick's root
// construction) are responsible for only ever passing CCW vertex triples.
func New(p1, p2, p3 geom.Point, isBase, isInside bool) *Triangle {
	return &Triangle{P1: p1, P2: p2, P3: p3, IsBase: isBase, IsInside: isInside}
}

func (t *Triangle) String() string {
	return fmt.Sprintf("triangle(%s, %s, %s)", t.P1, t.P2, t.P3)
}

// Query answers whether pt lies inside this triangle's region: false
// immediately if pt is outside this node's own closed bounds (a point on
// one of its edges still descends); at a base leaf, IsInside; otherwise
// true iff any child answers true.
func (t *Triangle) Query(pt geom.Point) bool {
	if geom.Orient(pt, t.P2, t.P1) == geom.Left ||
		geom.Orient(pt, t.P3, t.P2) == geom.Left ||
		geom.Orient(pt, t.P1, t.P3) == geom.Left {
		return false
	}
	if t.IsBase {
		return t.IsInside
	}
	for _, c := range t.Children {
		if c.Query(pt) {
			return true
		}
	}
	return false
}

// Overlaps reports whether any edge of t properly crosses any edge of o.
func (t *Triangle) Overlaps(o *Triangle) bool {
	return geom.TrianglesOverlap(t.P1, t.P2, t.P3, o.P1, o.P2, o.P3)
}
