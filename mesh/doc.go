// Package mesh holds the triangle DAG node type kirkpatrick.Build
// constructs and kirkpatrick.Locator.Locate descends, plus the
// point-to-triangle index that tracks which triangles are still incident
// to a given vertex during refinement.
//
// Triangle nodes use plain pointers for shared ownership (a triangle can
// be a child of several parents, and can sit in the index at all three of
// its vertices at once); acyclicity is guaranteed by construction — each
// refinement round only ever points new triangles at the old triangles
// they replace, never the reverse — so there is no cycle-detection logic
// here, matching the original source's own reasoning for using
// std::shared_ptr without a cycle collector.
package mesh
