package mesh

import (
	"testing"

	"github.com/katalvlaran/kirklocate/geom"
	"github.com/stretchr/testify/assert"
)

func TestTriangleQueryBaseLeaf(t *testing.T) {
	in := New(geom.Point{0, 0}, geom.Point{100, 0}, geom.Point{0, 100}, true, true)
	out := New(geom.Point{0, 0}, geom.Point{100, 0}, geom.Point{0, 100}, true, false)

	assert.True(t, in.Query(geom.Point{10, 10}))
	assert.False(t, out.Query(geom.Point{10, 10}))
	assert.False(t, in.Query(geom.Point{200, 200}), "outside the triangle bounds entirely")
}

func TestTriangleQueryDescendsChildren(t *testing.T) {
	parent := New(geom.Point{0, 0}, geom.Point{100, 0}, geom.Point{0, 100}, false, false)
	leftLeaf := New(geom.Point{0, 0}, geom.Point{50, 0}, geom.Point{0, 100}, true, true)
	rightLeaf := New(geom.Point{50, 0}, geom.Point{100, 0}, geom.Point{0, 100}, true, false)
	parent.Children = []*Triangle{leftLeaf, rightLeaf}

	assert.True(t, parent.Query(geom.Point{10, 10}))
	assert.False(t, parent.Query(geom.Point{80, 5}))
}

func TestTriangleOverlaps(t *testing.T) {
	a := New(geom.Point{0, 0}, geom.Point{10, 0}, geom.Point{0, 10}, false, false)
	b := New(geom.Point{2, 2}, geom.Point{12, 2}, geom.Point{2, 12}, false, false)
	assert.True(t, a.Overlaps(b))
}

func TestIndexAddRemove(t *testing.T) {
	idx := NewIndex()
	p1, p2, p3 := geom.Point{0, 0}, geom.Point{1, 0}, geom.Point{0, 1}
	tri := New(p1, p2, p3, true, true)
	idx.Add(tri)

	assert.Len(t, idx.At(p1), 1)
	assert.Len(t, idx.At(p2), 1)
	assert.Len(t, idx.At(p3), 1)
	assert.Empty(t, idx.At(geom.Point{9, 9}))

	idx.Remove(tri)
	assert.Empty(t, idx.At(p1))

	// Removing an already-removed triangle is tolerated.
	assert.NotPanics(t, func() { idx.Remove(tri) })
}
