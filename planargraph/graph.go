package planargraph

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/kirklocate/geom"
)

// Graph is an undirected adjacency graph over geom.Point. Edges are held
// as a set of sets, so symmetry (q in adj[p] iff p in adj[q]) and the
// absence of parallel edges are structural invariants, not separately
// enforced ones.
type Graph struct {
	adj     map[geom.Point]map[geom.Point]struct{}
	special map[geom.Point]struct{}
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		adj:     make(map[geom.Point]map[geom.Point]struct{}),
		special: make(map[geom.Point]struct{}),
	}
}

// edgeNotVertexError reports which endpoint AddEdge rejected. It
// implements error, and unwraps to ErrUnknownVertex, so the panic it backs
// can still be matched with errors.Is in tests, even though it is raised
// as a programmer error rather than returned.
type edgeNotVertexError struct {
	point geom.Point
}

func (e *edgeNotVertexError) Error() string {
	return fmt.Sprintf("%v: %s", ErrUnknownVertex, e.point)
}

func (e *edgeNotVertexError) Unwrap() error {
	return ErrUnknownVertex
}

// AddVertex ensures p is present with an empty adjacency set. Adding an
// already-present vertex is a no-op: it never resets existing adjacency.
func (g *Graph) AddVertex(p geom.Point) {
	if _, ok := g.adj[p]; ok {
		return
	}
	g.adj[p] = make(map[geom.Point]struct{})
}

// AddEdge adds the undirected edge p-q. Both endpoints must already be
// vertices of the graph; this is an invariant kirkpatrick.Build's call
// discipline always upholds (every vertex is added before any edge that
// touches it), so a violation here is a programmer error, not a
// recoverable condition — AddEdge panics rather than returning an error.
func (g *Graph) AddEdge(p, q geom.Point) {
	if _, ok := g.adj[p]; !ok {
		panic(&edgeNotVertexError{point: p})
	}
	if _, ok := g.adj[q]; !ok {
		panic(&edgeNotVertexError{point: q})
	}
	g.adj[p][q] = struct{}{}
	g.adj[q][p] = struct{}{}
}

// Neighbors returns p's current neighbors in unspecified order. A p that
// is not a vertex of the graph yields an empty (nil) slice.
func (g *Graph) Neighbors(p geom.Point) []geom.Point {
	nbrs, ok := g.adj[p]
	if !ok {
		return nil
	}
	out := make([]geom.Point, 0, len(nbrs))
	for q := range nbrs {
		out = append(out, q)
	}
	return out
}

// Degree returns the number of neighbors p currently has.
func (g *Graph) Degree(p geom.Point) int {
	return len(g.adj[p])
}

// SetSpecial replaces the protected point set: IndependentSet never
// returns a point from this set.
func (g *Graph) SetSpecial(points []geom.Point) {
	g.special = make(map[geom.Point]struct{}, len(points))
	for _, p := range points {
		g.special[p] = struct{}{}
	}
}

// Remove deletes each vertex in pts together with its incident edges.
// Vertices not present in the graph are tolerated silently.
func (g *Graph) Remove(pts []geom.Point) {
	for _, p := range pts {
		for q := range g.adj[p] {
			delete(g.adj[q], p)
		}
		delete(g.adj, p)
	}
}

// Vertices returns every vertex currently in the graph, in deterministic
// key order (lexicographic on (X, Y)) so callers that need a stable sweep
// — IndependentSet chief among them — get one without sorting themselves.
func (g *Graph) Vertices() []geom.Point {
	out := make([]geom.Point, 0, len(g.adj))
	for p := range g.adj {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
