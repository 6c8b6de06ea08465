// Package geom provides the exact-integer 2-D geometry primitives that the
// rest of this module builds on: points, segments, and the orientation,
// containment, and crossing predicates Kirkpatrick's point-location
// structure needs.
//
// Every predicate here operates on int32 coordinates and accumulates into
// int64 to avoid overflow; none of it uses floating point. That is a
// deliberate invariant, not an oversight — structural decisions elsewhere
// in this module (triangulation, refinement, query) depend on these
// predicates being exact.
package geom
