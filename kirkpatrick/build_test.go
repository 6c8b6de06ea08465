package kirkpatrick

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/kirklocate/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTooFewVertices(t *testing.T) {
	_, err := Build([]geom.Point{{0, 0}, {1, 1}})
	assert.ErrorIs(t, err, ErrTooFewVertices)
}

func TestUnitSquareCCW(t *testing.T) {
	square := []geom.Point{{0, 0}, {100, 0}, {100, 100}, {0, 100}}
	loc, err := Build(square)
	require.NoError(t, err)

	assert.True(t, loc.Locate(geom.Point{50, 50}))
	assert.False(t, loc.Locate(geom.Point{150, 50}))
	assert.False(t, loc.Locate(geom.Point{-1, 50}))
}

func TestUnitSquareCW(t *testing.T) {
	square := []geom.Point{{0, 0}, {0, 100}, {100, 100}, {100, 0}}
	loc, err := Build(square)
	require.NoError(t, err)
	assert.True(t, loc.Locate(geom.Point{50, 50}))
}

func TestConvexPentagon(t *testing.T) {
	pentagon := []geom.Point{{0, 0}, {100, 0}, {120, 60}, {50, 120}, {-20, 60}}
	loc, err := Build(pentagon)
	require.NoError(t, err)

	assert.True(t, loc.Locate(geom.Point{50, 40}))
	assert.False(t, loc.Locate(geom.Point{200, 200}))
}

func TestNonConvexL(t *testing.T) {
	l := []geom.Point{{0, 0}, {100, 0}, {100, 40}, {40, 40}, {40, 100}, {0, 100}}
	loc, err := Build(l)
	require.NoError(t, err)

	assert.True(t, loc.Locate(geom.Point{20, 20}))
	assert.False(t, loc.Locate(geom.Point{70, 70}))
	assert.True(t, loc.Locate(geom.Point{90, 30}))
}

func TestTriangle(t *testing.T) {
	tri := []geom.Point{{0, 0}, {100, 0}, {0, 100}}
	loc, err := Build(tri)
	require.NoError(t, err)

	assert.True(t, loc.Locate(geom.Point{10, 10}))
	assert.False(t, loc.Locate(geom.Point{60, 60}), "above the hypotenuse")
	assert.True(t, loc.Locate(geom.Point{30, 30}))
}

func TestReversalYieldsIdenticalAnswers(t *testing.T) {
	l := []geom.Point{{0, 0}, {100, 0}, {100, 40}, {40, 40}, {40, 100}, {0, 100}}
	reversed := make([]geom.Point, len(l))
	for i, p := range l {
		reversed[len(l)-1-i] = p
	}

	locFwd, err := Build(l)
	require.NoError(t, err)
	locRev, err := Build(reversed)
	require.NoError(t, err)

	queries := []geom.Point{{20, 20}, {70, 70}, {90, 30}, {-5, -5}, {50, 50}}
	for _, q := range queries {
		assert.Equal(t, locFwd.Locate(q), locRev.Locate(q), "query %v must agree regardless of input winding", q)
	}
}

func TestLocateIsDeterministic(t *testing.T) {
	square := []geom.Point{{0, 0}, {100, 0}, {100, 100}, {0, 100}}
	loc, err := Build(square)
	require.NoError(t, err)

	q := geom.Point{33, 67}
	first := loc.Locate(q)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, loc.Locate(q))
	}
}

// evenOddOracle is the textbook even-odd point-in-polygon test, used as
// a linear-scan ground truth to cross-check the locator on a large
// polygon where hand-picked expectations would be impractical.
func evenOddOracle(poly []geom.Point, q geom.Point) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := poly[i], poly[j]
		if (pi.Y > q.Y) != (pj.Y > q.Y) {
			xIntersect := float64(pj.X-pi.X)*float64(q.Y-pi.Y)/float64(pj.Y-pi.Y) + float64(pi.X)
			if float64(q.X) < xIntersect {
				inside = !inside
			}
		}
	}
	return inside
}

func TestLarge100GonAgainstOracle(t *testing.T) {
	const n = 100
	const radius = 1000.0
	poly := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		poly[i] = geom.Point{
			X: int32(math.Round(radius * math.Cos(theta))),
			Y: int32(math.Round(radius * math.Sin(theta))),
		}
	}

	loc, err := Build(poly)
	require.NoError(t, err)

	assert.True(t, loc.Locate(geom.Point{0, 0}))
	assert.False(t, loc.Locate(geom.Point{5000, 5000}))

	rng := rand.New(rand.NewSource(1))
	discrepancies := 0
	for i := 0; i < 10000; i++ {
		q := geom.Point{
			X: int32(rng.Intn(4000) - 2000),
			Y: int32(rng.Intn(4000) - 2000),
		}
		want := evenOddOracle(poly, q)
		got := loc.Locate(q)
		if want != got {
			discrepancies++
		}
	}
	assert.Equal(t, 0, discrepancies, "locator must agree with the linear oracle on every non-boundary sample")
}
