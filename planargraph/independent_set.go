package planargraph

import "github.com/katalvlaran/kirklocate/geom"

// IndependentSet returns a greedy independent set: vertices in
// deterministic key order, each with degree <= maxDegree, no two adjacent,
// none in the special (protected) set.
//
// This is a simple one-pass greedy sweep, not a maximum-cardinality
// independent set: Kirkpatrick's construction only needs *an* independent
// set bounded by constant degree each round, not the largest one.
func (g *Graph) IndependentSet(maxDegree int) []geom.Point {
	blocked := make(map[geom.Point]struct{}, len(g.special))
	for p := range g.special {
		blocked[p] = struct{}{}
	}

	var result []geom.Point
	for _, p := range g.Vertices() {
		if _, done := blocked[p]; done {
			continue
		}
		if g.Degree(p) > maxDegree {
			continue
		}
		result = append(result, p)
		blocked[p] = struct{}{}
		for q := range g.adj[p] {
			blocked[q] = struct{}{}
		}
	}
	return result
}
