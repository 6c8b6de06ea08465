package planargraph

import "github.com/katalvlaran/kirklocate/geom"

// Matrix is a dense V x V adjacency-matrix snapshot of a Graph. Planar
// adjacency here is unweighted, so entries are simply 0 or 1.
type Matrix struct {
	Points []geom.Point
	index  map[geom.Point]int
	rows   [][]uint8
}

// VertexCount returns the number of vertices captured in the matrix.
func (m *Matrix) VertexCount() int { return len(m.Points) }

// At reports whether p and q are adjacent in the snapshot. Either point
// missing from the snapshot reports false.
func (m *Matrix) At(p, q geom.Point) bool {
	i, ok := m.index[p]
	if !ok {
		return false
	}
	j, ok := m.index[q]
	if !ok {
		return false
	}
	return m.rows[i][j] == 1
}

// Dump snapshots the current edge set as a dense adjacency matrix, in
// the graph's deterministic vertex order. It is a debug/test aid (the
// kirklocate CLI's --dump-graph flag, and tests that want to assert
// symmetry structurally) — nothing in kirkpatrick.Build depends on it.
func (g *Graph) Dump() *Matrix {
	pts := g.Vertices()
	idx := make(map[geom.Point]int, len(pts))
	for i, p := range pts {
		idx[p] = i
	}
	rows := make([][]uint8, len(pts))
	for i, p := range pts {
		row := make([]uint8, len(pts))
		for q := range g.adj[p] {
			if j, ok := idx[q]; ok {
				row[j] = 1
			}
		}
		rows[i] = row
	}
	return &Matrix{Points: pts, index: idx, rows: rows}
}
