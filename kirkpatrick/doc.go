/*
Package kirkpatrick builds and queries a Kirkpatrick point-location
structure over a fixed simple polygon.

Algorithm outline:

 1. Bootstrap a planargraph.Graph with the polygon's vertices and edges,
    plus a bounding outer triangle (triangulate.BuildOuterPoints) whose
    three vertices are marked special — they are the only vertices that
    ever survive to the end of refinement.
 2. Run the three initial triangulation passes (triangulate package):
    ear-clip the polygon interior, fill the pockets between the polygon
    and its convex hull, then fill the gap between the hull and the
    outer triangle. Every emitted triangle is base, and is_inside only
    for the polygon-interior pass.
 3. Refine: while the graph still has an independent set of vertices of
    degree <= MaxDegree (excluding the outer triangle's vertices),
    remove one such set per round. For each removed vertex, ear-clip its
    neighbor polygon (sorted by polar angle) into new non-base triangles,
    and link every old triangle that geometrically overlaps a new one as
    that new triangle's child.
 4. The loop terminates once only the outer triangle's three vertices
    remain (MaxDegree bounds each removed vertex's retriangulation cost
    to a constant). Build the root triangle over the outer vertices,
    with every triangle still on file at those vertices as its child.

Time:   O(n²) build in the worst case (the initial ear-clipping pass tests
every candidate ear against every polygon vertex), O(log n) expected query.
Memory: O(n) for the retained DAG; the adjacency graph and triangle
index are build-scratch and released once Build returns.

# API

	func Build(points []geom.Point) (*Locator, error)
	func (l *Locator) Locate(pt geom.Point) bool

# Errors

	ErrTooFewVertices - fewer than 3 points supplied.

Any other malformed input (self-intersecting or non-simple polygon,
duplicate vertices, collinear edges) is out of scope; the behavior for
it is unspecified.
*/
package kirkpatrick
