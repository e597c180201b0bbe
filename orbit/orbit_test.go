// SPDX-License-Identifier: MIT

package orbit_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cayley/algebra"
	"github.com/katalvlaran/cayley/isogonal"
	"github.com/katalvlaran/cayley/mobius"
	"github.com/katalvlaran/cayley/orbit"
)

// pmgXforms returns the edge transforms of the wallpaper group pmg on the
// unit square: mirrors on the left and right edges, half-turns about the
// midpoints of the top and bottom edges. Order: right, up, left, down.
func pmgXforms(t testing.TB) []isogonal.Isogonal {
	t.Helper()
	tx, err := mobius.Translation(1)
	require.NoError(t, err)
	top, err := mobius.Translation(0.5 + 1i)
	require.NoError(t, err)
	bottom, err := mobius.Translation(0.5)
	require.NoError(t, err)
	r180 := isogonal.FromMobius(mobius.PointReflection())

	left := isogonal.ReflectY()
	right := algebra.Sandwich(isogonal.FromMobius(tx), left)
	up := algebra.Sandwich(isogonal.FromMobius(top), r180)
	down := algebra.Sandwich(isogonal.FromMobius(bottom), r180)

	return []isogonal.Isogonal{right, up, left, down}
}

func pmgTile(t testing.TB) orbit.Tile[isogonal.Isogonal] {
	t.Helper()

	return orbit.NewTile(isogonal.Identity(), pmgXforms(t), 0.5+0.5i)
}

func TestNeighbor_Representatives(t *testing.T) {
	tile := pmgTile(t)
	want := []complex128{1.5 + 0.5i, 0.5 + 1.5i, -0.5 + 0.5i, 0.5 - 0.5i}

	got := tile.NeighborTiles()
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, mobius.Nearly(want[i], got[i].Representative()), "neighbor %d: %v", i, got[i].Representative())
	}
}

func TestNeighbor_TransformsFromIdentity(t *testing.T) {
	tile := pmgTile(t)
	xforms := pmgXforms(t)

	for i, n := range tile.NeighborTiles() {
		assert.True(t, n.Xform().Equal(xforms[i]), "neighbor %d", i)
	}
}

func TestNeighbor_ConjugatesNeighborList(t *testing.T) {
	tile := pmgTile(t)
	xforms := pmgXforms(t)

	for i, n := range tile.NeighborTiles() {
		list := n.Neighbors()
		require.Len(t, list, len(xforms))
		for j := range xforms {
			want := algebra.Sandwich(xforms[i], xforms[j])
			assert.True(t, list[j].Equal(want), "neighbor %d edge %d", i, j)
		}
		// the edge we crossed leads straight back
		assert.True(t, list[i].Equal(xforms[i]))
	}
}

func TestNeighbor_CrossingBackReturnsHome(t *testing.T) {
	tile := pmgTile(t)
	for i := 0; i < tile.Degree(); i++ {
		back := tile.Neighbor(i).Neighbor(i)
		assert.True(t, mobius.Nearly(tile.Representative(), back.Representative()))
		assert.True(t, back.Xform().Equal(isogonal.Identity()))
	}
}

func TestTile_NeighborsReturnsCopy(t *testing.T) {
	tile := pmgTile(t)
	list := tile.Neighbors()
	list[0] = isogonal.Identity()
	assert.False(t, tile.Neighbors()[0].Equal(isogonal.Identity()))
}

func TestWalk_ManhattanBall(t *testing.T) {
	o, err := orbit.New(pmgTile(t))
	require.NoError(t, err)

	for depth := 0; depth <= 5; depth++ {
		count := 0
		seen := map[complex128]bool{}
		for d, tile := range o.Walk(depth) {
			assert.LessOrEqual(t, d, depth)
			z := tile.Representative()
			key := complex(roundHalf(real(z)), roundHalf(imag(z)))
			assert.False(t, seen[key], "tile %v yielded twice", key)
			seen[key] = true
			count++
		}
		// squares within Manhattan distance d of a square: 2d² + 2d + 1
		assert.Equal(t, 2*depth*depth+2*depth+1, count, "depth %d", depth)
	}
}

func TestWalk_DepthIsShortestPath(t *testing.T) {
	o, err := orbit.New(pmgTile(t))
	require.NoError(t, err)

	perDepth := map[int]int{}
	last := 0
	for d, tile := range o.Walk(5) {
		assert.GreaterOrEqual(t, d, last, "depths must not decrease")
		last = d
		z := tile.Representative()
		manhattan := math.Abs(real(z)-0.5) + math.Abs(imag(z)-0.5)
		assert.Equal(t, d, int(math.Round(manhattan)), "tile %v", z)
		perDepth[d]++
	}
	assert.Equal(t, 1, perDepth[0])
	for d := 1; d <= 5; d++ {
		assert.Equal(t, 4*d, perDepth[d], "ring %d", d)
	}
}

func TestWalk_TileAtInfinity(t *testing.T) {
	tile := orbit.NewTile(mobius.Identity(), []mobius.Mobius{mobius.Inversion()}, 0)
	o, err := orbit.New(tile)
	require.NoError(t, err)

	var reps []complex128
	var depths []int
	for d, tl := range o.Walk(3) {
		depths = append(depths, d)
		reps = append(reps, tl.Representative())
	}
	require.Len(t, reps, 2, "0 and ∞, each once")
	assert.Equal(t, []int{0, 1}, depths)
	assert.Equal(t, complex128(0), reps[0])
	assert.True(t, cmplx.IsInf(reps[1]))
}

func TestWalk_FirstTileIsInitial(t *testing.T) {
	o, err := orbit.New(pmgTile(t))
	require.NoError(t, err)

	for d, tile := range o.Walk(4) {
		assert.Zero(t, d)
		assert.True(t, tile.Xform().Equal(isogonal.Identity()))
		break
	}
}

func TestWalk_NegativeDepthYieldsInitialOnly(t *testing.T) {
	o, err := orbit.New(pmgTile(t))
	require.NoError(t, err)

	n := 0
	for range o.Walk(-3) {
		n++
	}
	assert.Equal(t, 1, n)
}

func TestWalk_Restartable(t *testing.T) {
	o, err := orbit.New(pmgTile(t))
	require.NoError(t, err)

	collect := func() []complex128 {
		var out []complex128
		for _, tile := range o.Walk(2) {
			out = append(out, tile.Representative())
		}
		return out
	}
	assert.Equal(t, collect(), collect())
}

func TestWalk_TransformMapsInitialRepresentative(t *testing.T) {
	o, err := orbit.New(pmgTile(t))
	require.NoError(t, err)

	for _, tile := range o.Walk(3) {
		assert.True(t, mobius.Nearly(tile.Representative(), tile.Xform().Apply(0.5+0.5i)))
	}
}

type point complex128

func (p point) Transform(g isogonal.Isogonal) point {
	return point(g.Apply(complex128(p)))
}

func TestApply(t *testing.T) {
	o, err := orbit.New(pmgTile(t))
	require.NoError(t, err)

	got := orbit.Apply(o, point(0.25+0.25i), 1)
	require.Len(t, got, 5)
	assert.True(t, mobius.Nearly(0.25+0.25i, complex128(got[0])))
	// mirrored across x = 1
	assert.True(t, mobius.Nearly(1.75+0.25i, complex128(got[1])))
}

func TestNew_Errors(t *testing.T) {
	_, err := orbit.New(orbit.NewTile(isogonal.Identity(), nil, cmplx.Inf()))
	assert.ErrorIs(t, err, orbit.ErrNoRepresentative)

	_, err = orbit.New(pmgTile(t), orbit.WithQuantizeBits(-2))
	assert.ErrorIs(t, err, orbit.ErrOptionViolation)

	_, err = orbit.New(pmgTile(t), orbit.WithEpsilon(-1))
	assert.ErrorIs(t, err, orbit.ErrOptionViolation)
}

func TestDefaultOptions(t *testing.T) {
	assert.Equal(t, orbit.DefaultQuantizeBits, orbit.DefaultOptions().QuantizeBits)
}

func roundHalf(x float64) float64 {
	return math.Round(x*2) / 2
}
