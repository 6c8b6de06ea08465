package mesh

import "github.com/katalvlaran/kirklocate/geom"

// Index maps a vertex still present in the current triangulation to
// exactly the set of triangles incident to it. It is maintained through
// every triangulation mutation during kirkpatrick.Build's refinement loop
// and discarded once Build returns.
type Index struct {
	byPoint map[geom.Point]map[*Triangle]struct{}
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{byPoint: make(map[geom.Point]map[*Triangle]struct{})}
}

// Add records t as incident to each of its three vertices.
func (idx *Index) Add(t *Triangle) {
	idx.addAt(t.P1, t)
	idx.addAt(t.P2, t)
	idx.addAt(t.P3, t)
}

func (idx *Index) addAt(p geom.Point, t *Triangle) {
	set, ok := idx.byPoint[p]
	if !ok {
		set = make(map[*Triangle]struct{})
		idx.byPoint[p] = set
	}
	set[t] = struct{}{}
}

// At returns the triangles currently on file for p, in unspecified order.
// A p with no entries yields an empty (nil) slice.
func (idx *Index) At(p geom.Point) []*Triangle {
	set, ok := idx.byPoint[p]
	if !ok {
		return nil
	}
	out := make([]*Triangle, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	return out
}

// Remove deletes t from every vertex entry it appears under. A triangle
// already absent from a given entry is tolerated as benign, not an error
// condition.
func (idx *Index) Remove(t *Triangle) {
	for p, set := range idx.byPoint {
		delete(set, t)
		if len(set) == 0 {
			delete(idx.byPoint, p)
		}
	}
}
