// Package planargraph implements the undirected adjacency graph that
// kirkpatrick.Build mutates while triangulating and refining a polygon.
//
// Unlike a long-lived graph structure, a planargraph.Graph is build-scratch:
// it is created, mutated, and discarded entirely within a single call to
// Build, and is never exposed to concurrent access, so it carries none of
// the locking a long-lived graph would need.
//
// The graph tracks a "special" point set — in this module always the three
// outer bounding-triangle vertices — that IndependentSet never returns,
// guaranteeing the refinement loop in kirkpatrick terminates: those points
// are never removed, so once every other vertex is gone the independent
// set comes back empty.
package planargraph
