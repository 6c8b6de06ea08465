package kirkpatrick

import (
	"math"
	"sort"

	"github.com/katalvlaran/kirklocate/geom"
	"github.com/katalvlaran/kirklocate/internal/xlog"
	"github.com/katalvlaran/kirklocate/mesh"
	"github.com/katalvlaran/kirklocate/planargraph"
	"github.com/katalvlaran/kirklocate/triangulate"
)

// Options configures Build. The zero value is the default: non-verbose.
type Options struct {
	// Verbose enables build-time trace lines (see internal/xlog),
	// written to stderr instead of discarded.
	Verbose bool

	// OnPreRefineGraph, if set, is called once with the planar adjacency
	// graph exactly as it stands after the initial triangulation and
	// before the first refinement round removes anything. The graph is
	// build-scratch and discarded once Build returns, so this is the
	// only hook a caller (the kirklocate CLI's --dump-graph) has to
	// inspect it.
	OnPreRefineGraph func(*planargraph.Graph)
}

// Build preprocesses a simple polygon, supplied as a cyclic sequence of
// distinct points in either winding order, into a Locator that answers
// point-in-polygon queries in expected O(log n) time.
func Build(points []geom.Point) (*Locator, error) {
	return BuildWithOptions(points, Options{})
}

// BuildWithOptions is Build with explicit Options, chiefly for enabling
// verbose build-time tracing.
func BuildWithOptions(points []geom.Point, opts Options) (*Locator, error) {
	if len(points) < 3 {
		return nil, ErrTooFewVertices
	}
	log := xlog.New(opts.Verbose)

	g := planargraph.NewGraph()
	idx := mesh.NewIndex()

	for _, p := range points {
		g.AddVertex(p)
	}
	n := len(points)
	for i := 0; i < n; i++ {
		g.AddEdge(points[i], points[(i+1)%n])
	}

	outer := triangulate.BuildOuterPoints(points)
	for _, o := range outer {
		g.AddVertex(o)
	}
	g.SetSpecial(outer[:])

	ccw := points
	if !triangulate.IsCCW(points) {
		// Build a fresh reversed slice rather than reversing in place:
		// reversing into an unfilled, same-length destination is a
		// classic source of an off-by-one or half-reversed result.
		ccw = reversedPolygon(points)
	}

	initialTriangulation(ccw, outer, g, idx, log)

	if opts.OnPreRefineGraph != nil {
		opts.OnPreRefineGraph(g)
	}

	root, rounds := refine(g, idx, outer, log)

	return &Locator{
		root: root,
		stats: Stats{
			VertexCount:      n,
			RootChildCount:   len(root.Children),
			RefinementRounds: rounds,
		},
	}, nil
}

func reversedPolygon(points []geom.Point) []geom.Point {
	out := make([]geom.Point, len(points))
	for i, p := range points {
		out[len(points)-1-i] = p
	}
	return out
}

func initialTriangulation(points []geom.Point, outer [3]geom.Point, g *planargraph.Graph, idx *mesh.Index, log *xlog.Logger) {
	log.Debugf("Triangulating polygon")
	triangulate.TriangulatePolygon(points, g, idx, true, true, log)

	log.Debugf("Triangulating pockets")
	hull := triangulate.TriangulatePockets(points, g, idx, log)

	log.Debugf("Triangulating with outer triangle")
	triangulate.TriangulateWithOuterTriangle(hull, outer, g, idx)
}

// refine runs the removal/retriangulation loop until no independent set
// remains, then builds and returns the root triangle over outer, along
// with the number of rounds the loop ran.
func refine(g *planargraph.Graph, idx *mesh.Index, outer [3]geom.Point, log *xlog.Logger) (*mesh.Triangle, int) {
	rounds := 0
	for {
		iset := g.IndependentSet(MaxDegree)
		if log.Verbose() {
			log.Debugf("Found independent set of size %d", len(iset))
		}
		if len(iset) == 0 {
			break
		}
		rounds++

		for _, pt := range iset {
			poly := g.Neighbors(pt)
			sortByPolarAngle(pt, poly)
			retriangulate(poly, pt, g, idx, log)
		}
		g.Remove(iset)
		if log.Verbose() {
			log.Debugf("Removed independent set")
		}
	}

	root := mesh.New(outer[0], outer[1], outer[2], false, false)
	seen := make(map[*mesh.Triangle]struct{})
	for _, o := range outer {
		for _, t := range idx.At(o) {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			root.Children = append(root.Children, t)
		}
	}
	return root, rounds
}

// sortByPolarAngle orders poly by angle around center using math.Atan2.
// This is the module's one deliberate use of floating point, scoped to
// ordering only: every geometric predicate downstream of this sort stays
// exact-integer.
func sortByPolarAngle(center geom.Point, poly []geom.Point) {
	sort.Slice(poly, func(i, j int) bool {
		ai := math.Atan2(float64(poly[i].Y-center.Y), float64(poly[i].X-center.X))
		aj := math.Atan2(float64(poly[j].Y-center.Y), float64(poly[j].X-center.X))
		return ai < aj
	})
}

// retriangulate ear-clips pt's (already polar-sorted) neighbor polygon
// into a fresh set of non-base triangles, links every old triangle on
// file at pt that overlaps a new triangle as that new triangle's child,
// and removes the old triangles from idx — they are no longer part of
// the current triangulation.
func retriangulate(poly []geom.Point, pt geom.Point, g *planargraph.Graph, idx *mesh.Index, log *xlog.Logger) {
	oldTriangles := idx.At(pt)
	newTriangles := triangulate.TriangulatePolygon(poly, g, idx, false, false, log)

	for _, ot := range oldTriangles {
		for _, nt := range newTriangles {
			// Every old triangle has pt as a vertex, so a new triangle that
			// contains pt overlaps all of them even where no edges cross.
			if ot.Overlaps(nt) || geom.InsideTriangle(nt.P1, nt.P2, nt.P3, pt) {
				nt.Children = append(nt.Children, ot)
			}
		}
		idx.Remove(ot)
	}
}
