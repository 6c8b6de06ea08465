// Package triangulate provides the three triangulation passes
// kirkpatrick.Build runs once during initial construction, and the one
// (TriangulatePolygon) it runs again, on small local polygons, once per
// removed vertex during refinement:
//
//   - TriangulatePolygon: ear-clipping over a CCW simple polygon.
//   - TriangulatePockets: fills the gap between the polygon and its
//     convex hull, computing the hull as a side effect.
//   - TriangulateWithOuterTriangle: fills the gap between the convex hull
//     and a bounding outer triangle known to enclose every input point.
//
// Every emitted triangle is added to the caller's planargraph.Graph (three
// edges) and mesh.Index (all three vertices) as it is produced — this
// package never hands back a bare triangle the caller must wire in
// itself, matching the original source's add_triangle helper, which always
// did both at once.
package triangulate
