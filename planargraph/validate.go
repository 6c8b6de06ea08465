package planargraph

import "github.com/katalvlaran/kirklocate/geom"

// IsClosedSimpleCycle reports whether points, read as a cyclic boundary
// (consecutive points joined by an edge, last joined back to first), form
// a single closed ring: every vertex has degree exactly 2, and a
// breadth-first walk from the first point reaches every vertex.
//
// This is a cheap sanity check, not a full simple-polygon validator — it
// does not detect self-intersection or collinear runs. It exists to turn
// an obviously malformed boundary (an open chain, a figure-eight,
// disconnected fragments) into ErrNotAClosedCycle instead of a confusing
// failure deep inside triangulation.
func IsClosedSimpleCycle(points []geom.Point) error {
	n := len(points)
	if n < 3 {
		return ErrNotAClosedCycle
	}

	boundary := NewGraph()
	for _, p := range points {
		boundary.AddVertex(p)
	}
	for i := 0; i < n; i++ {
		p, q := points[i], points[(i+1)%n]
		if p == q {
			return ErrNotAClosedCycle
		}
		boundary.AddEdge(p, q)
	}

	for _, p := range points {
		if boundary.Degree(p) != 2 {
			return ErrNotAClosedCycle
		}
	}

	visited := make(map[geom.Point]struct{}, n)
	queue := []geom.Point{points[0]}
	visited[points[0]] = struct{}{}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range boundary.Neighbors(cur) {
			if _, seen := visited[nb]; seen {
				continue
			}
			visited[nb] = struct{}{}
			queue = append(queue, nb)
		}
	}
	if len(visited) != n {
		return ErrNotAClosedCycle
	}
	return nil
}
