package kirkpatrick

import (
	"github.com/katalvlaran/kirklocate/geom"
	"github.com/katalvlaran/kirklocate/mesh"
)

// MaxDegree bounds the degree of vertices IndependentSet selects each
// refinement round. It keeps each removed vertex's neighbor polygon, and so
// the ear-clipping that retriangulates it, to a constant size.
const MaxDegree = 8

// Stats reports a few counters from a completed Build, useful for the
// kirklocate CLI and for tests that want a cheap sanity check on the
// refinement loop's shape without walking the whole DAG.
type Stats struct {
	VertexCount      int
	RootChildCount   int
	RefinementRounds int
}

// Locator is the immutable result of Build: a rooted DAG of triangles
// that Locate descends. It holds no reference to the build-time
// planargraph.Graph or mesh.Index — both are released once Build returns.
type Locator struct {
	root  *mesh.Triangle
	stats Stats
}

// Locate reports whether pt lies inside the polygon Build was given. It
// is deterministic and safe to call concurrently from many goroutines:
// the DAG Locate descends is read-only after Build returns.
func (l *Locator) Locate(pt geom.Point) bool {
	return l.root.Query(pt)
}

// Root returns the locator's root triangle, for tests that inspect the
// DAG directly. It is the same virtual
// triangle over the three outer bounding points build constructed;
// callers must not mutate it.
func (l *Locator) Root() *mesh.Triangle {
	return l.root
}

// Stats returns the build-time counters recorded for this Locator.
func (l *Locator) Stats() Stats {
	return l.stats
}
