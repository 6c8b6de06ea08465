package triangulate

import (
	"testing"

	"github.com/katalvlaran/kirklocate/geom"
	"github.com/katalvlaran/kirklocate/internal/xlog"
	"github.com/katalvlaran/kirklocate/mesh"
	"github.com/katalvlaran/kirklocate/planargraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCCW(t *testing.T) {
	ccw := []geom.Point{{0, 0}, {100, 0}, {100, 100}, {0, 100}}
	assert.True(t, IsCCW(ccw))

	cw := []geom.Point{{0, 0}, {0, 100}, {100, 100}, {100, 0}}
	assert.False(t, IsCCW(cw))
}

func totalArea(tris []*mesh.Triangle) int64 {
	var sum int64
	for _, t := range tris {
		// Shoelace formula, doubled area, absolute value.
		a := (int64(t.P2.X)-int64(t.P1.X))*(int64(t.P3.Y)-int64(t.P1.Y)) -
			(int64(t.P3.X)-int64(t.P1.X))*(int64(t.P2.Y)-int64(t.P1.Y))
		if a < 0 {
			a = -a
		}
		sum += a
	}
	return sum
}

func TestTriangulatePolygonSquareCoversArea(t *testing.T) {
	square := []geom.Point{{0, 0}, {100, 0}, {100, 100}, {0, 100}}
	g := planargraph.NewGraph()
	for _, p := range square {
		g.AddVertex(p)
	}
	idx := mesh.NewIndex()
	log := xlog.New(false)

	tris := TriangulatePolygon(square, g, idx, true, true, log)
	require.NotEmpty(t, tris)
	for _, tr := range tris {
		assert.True(t, tr.IsBase)
		assert.True(t, tr.IsInside)
		assert.NotEqual(t, geom.Orient(tr.P1, tr.P2, tr.P3), geom.Right, "every emitted triangle must be CCW")
	}
	// Doubled area of the 100x100 square is 100*100*2; ear clipping must
	// partition it exactly, with no gap or overlap.
	assert.Equal(t, int64(100*100*2), totalArea(tris))
}

func TestTriangulatePolygonNonConvexL(t *testing.T) {
	l := []geom.Point{{0, 0}, {100, 0}, {100, 40}, {40, 40}, {40, 100}, {0, 100}}
	g := planargraph.NewGraph()
	for _, p := range l {
		g.AddVertex(p)
	}
	idx := mesh.NewIndex()
	log := xlog.New(false)

	tris := TriangulatePolygon(l, g, idx, true, true, log)
	require.NotEmpty(t, tris)
	for _, tr := range tris {
		assert.NotEqual(t, geom.Right, geom.Orient(tr.P1, tr.P2, tr.P3))
	}
}
