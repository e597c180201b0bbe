// SPDX-License-Identifier: MIT

package lattice_test

import (
	"bytes"
	"fmt"
	"math"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cayley/lattice"
	"github.com/katalvlaran/cayley/mobius"
)

type point complex128

func (p point) Transform(m mobius.Mobius) point {
	return point(m.Apply(complex128(p)))
}

func translations(t *testing.T) (mobius.Mobius, mobius.Mobius) {
	t.Helper()
	tx, err := mobius.Translation(1)
	require.NoError(t, err)
	ty, err := mobius.Translation(1i)
	require.NoError(t, err)

	return tx, ty
}

func TestNew_Errors(t *testing.T) {
	_, err := lattice.New[mobius.Mobius]()
	assert.ErrorIs(t, err, lattice.ErrNoAxes)

	tx, _ := translations(t)
	_, err = lattice.New(lattice.Axis[mobius.Mobius]{Generator: tx, Start: 2, End: 2})
	assert.ErrorIs(t, err, lattice.ErrEmptyAxis)
}

func TestAll_CountIsProductOfAxes(t *testing.T) {
	tx, ty := translations(t)
	rot, err := mobius.Rotation(0.5)
	require.NoError(t, err)

	l, err := lattice.New(
		lattice.Axis[mobius.Mobius]{Generator: tx, Start: -2, End: 3},
		lattice.Axis[mobius.Mobius]{Generator: ty, Start: 0, End: 4},
		lattice.Axis[mobius.Mobius]{Generator: rot, Start: -1, End: 2},
	)
	require.NoError(t, err)

	n := 0
	for range l.All() {
		n++
	}
	assert.Equal(t, 5*4*3, n)
	assert.Equal(t, n, l.Size())
	assert.Equal(t, 3, l.Dimensions())
}

func TestAll_SingleAxis(t *testing.T) {
	tx, _ := translations(t)
	l, err := lattice.New(lattice.Axis[mobius.Mobius]{Generator: tx, Start: -1, End: 2})
	require.NoError(t, err)

	assert.Equal(t, []point{-1, 0, 1}, lattice.Apply(l, point(0)))
}

func TestAll_RippleCarryOrder(t *testing.T) {
	tx, ty := translations(t)
	l, err := lattice.New(
		lattice.Axis[mobius.Mobius]{Generator: tx, Start: -1, End: 1},
		lattice.Axis[mobius.Mobius]{Generator: ty, Start: 0, End: 3},
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	for idx, m := range l.All() {
		z := m.Apply(0)
		fmt.Fprintf(&buf, "%v %d %d\n", idx, int(math.Round(real(z))), int(math.Round(imag(z))))
	}

	gold := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	gold.Assert(t, "ripple_carry_2x3", buf.Bytes())
}

func TestAll_ProductPutsAxisZeroLeftmost(t *testing.T) {
	tx, _ := translations(t)
	half, err := mobius.Scale(0.5)
	require.NoError(t, err)

	l, err := lattice.New(
		lattice.Axis[mobius.Mobius]{Generator: half, Start: 1, End: 2},
		lattice.Axis[mobius.Mobius]{Generator: tx, Start: 1, End: 2},
	)
	require.NoError(t, err)

	for _, m := range l.All() {
		// half·tx: translate first, then scale
		assert.True(t, mobius.Nearly(0.5, m.Apply(0)))
	}
}

func TestAll_EarlyStop(t *testing.T) {
	tx, ty := translations(t)
	l, err := lattice.New(
		lattice.Axis[mobius.Mobius]{Generator: tx, Start: 0, End: 10},
		lattice.Axis[mobius.Mobius]{Generator: ty, Start: 0, End: 10},
	)
	require.NoError(t, err)

	n := 0
	for range l.All() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestConjugate_WarpsPattern(t *testing.T) {
	tx, ty := translations(t)
	l, err := lattice.New(
		lattice.Axis[mobius.Mobius]{Generator: tx, Start: -1, End: 2},
		lattice.Axis[mobius.Mobius]{Generator: ty, Start: -1, End: 2},
	)
	require.NoError(t, err)

	warp := mobius.Inversion()
	warped := l.Conjugate(warp)
	assert.Equal(t, l.Size(), warped.Size())

	seed := complex(0.25, 0.3)
	var plain, bent []complex128
	for _, m := range l.All() {
		plain = append(plain, m.Apply(seed))
	}
	for _, m := range warped.All() {
		bent = append(bent, m.Apply(warp.Apply(seed)))
	}
	require.Len(t, bent, len(plain))
	for i := range plain {
		assert.True(t, mobius.Nearly(warp.Apply(plain[i]), bent[i]), "point %d", i)
	}
}
