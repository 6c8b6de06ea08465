package planargraph

import "errors"

// ErrUnknownVertex backs the panic AddEdge raises when an endpoint was
// never added to the graph. It is a programmer-error invariant violation,
// not a condition callers are expected to recover from — see AddEdge.
var ErrUnknownVertex = errors.New("planargraph: edge endpoint is not a vertex of the graph")

// ErrNotAClosedCycle is returned by IsClosedSimpleCycle when the supplied
// points do not form a single closed ring (every vertex degree 2, one
// connected component) under the edges implied by polygon order.
var ErrNotAClosedCycle = errors.New("planargraph: points do not form a closed simple cycle")
