// SPDX-License-Identifier: MIT

package ifs_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cayley/address"
	"github.com/katalvlaran/cayley/ifs"
	"github.com/katalvlaran/cayley/isogonal"
	"github.com/katalvlaran/cayley/mobius"
)

// point is a minimal transformable shape.
type point complex128

func (p point) Transform(m mobius.Mobius) point {
	return point(m.Apply(complex128(p)))
}

// bag is a shape that composes by concatenation.
type bag []complex128

func (b bag) Compose(o bag) bag {
	return append(append(bag{}, b...), o...)
}

func (b bag) Transform(m mobius.Mobius) bag {
	out := make(bag, len(b))
	for i, z := range b {
		out[i] = m.Apply(z)
	}

	return out
}

func generators(t *testing.T, n int) []mobius.Mobius {
	t.Helper()
	gens := make([]mobius.Mobius, 0, n)
	for i := 0; i < n; i++ {
		m, err := mobius.New(1, 0, complex(float64(i+2), 1), 1)
		require.NoError(t, err)
		gens = append(gens, m)
	}

	return gens
}

func collectGroup(g *ifs.Group[mobius.Mobius], depth int) ([]address.Address, []mobius.Mobius) {
	var words []address.Address
	var values []mobius.Mobius
	for w, v := range g.Walk(depth) {
		words = append(words, w)
		values = append(values, v)
	}

	return words, values
}

func TestGroup_DepthZeroYieldsIdentity(t *testing.T) {
	g := ifs.NewGroup(generators(t, 3))
	words, values := collectGroup(g, 0)

	require.Len(t, words, 1)
	assert.Equal(t, 0, words[0].Len())
	assert.True(t, values[0].Equal(mobius.Identity()))
}

func TestGroup_DepthOneYieldsGeneratorsAndInverses(t *testing.T) {
	gens := generators(t, 3)
	g := ifs.NewGroup(gens)
	words, values := collectGroup(g, 1)

	require.Len(t, words, 1+2*len(gens))
	got := make([]string, 0, len(words))
	for _, w := range words {
		got = append(got, w.String())
	}
	assert.Equal(t, []string{"", "a", "b", "c", "A", "B", "C"}, got)
	for i, gen := range gens {
		assert.True(t, values[1+i].Equal(gen))
		assert.True(t, values[1+len(gens)+i].Equal(gen.Inverse()))
	}
}

func TestGroup_DepthTwoChildrenSkipInverse(t *testing.T) {
	g := ifs.NewGroup(generators(t, 3))
	words, _ := collectGroup(g, 2)

	var children []string
	for _, w := range words {
		s := w.String()
		if len(s) == 2 && s[0] == 'a' {
			children = append(children, s)
		}
	}
	assert.Equal(t, []string{"aB", "aC", "aa", "ab", "ac"}, children)
	assert.NotContains(t, children, "aA")
}

func TestGroup_NoCancellingPairs(t *testing.T) {
	const n, depth = 2, 4
	g := ifs.NewGroup(generators(t, n))
	words, _ := collectGroup(g, depth)

	// 1 + 2n·Σ (2n−1)^k for k < depth
	want, layer := 1, 2*n
	for k := 0; k < depth; k++ {
		want += layer
		layer *= 2*n - 1
	}
	assert.Len(t, words, want)

	seen := make(map[string]bool, len(words))
	for _, w := range words {
		syms := w.Symbols()
		for i := 1; i < len(syms); i++ {
			assert.False(t, address.IsInversePair(syms[i-1], syms[i]), "word %s backtracks", w)
		}
		assert.False(t, seen[w.String()], "word %s repeated", w)
		seen[w.String()] = true
	}
}

func TestGroup_ValueMatchesWord(t *testing.T) {
	g := ifs.NewGroup(generators(t, 2))
	words, values := collectGroup(g, 3)

	for k, w := range words {
		want := mobius.Identity()
		for _, s := range w.Symbols() {
			want = g.At(g.Index(s)).Compose(want)
		}
		assert.True(t, values[k].Equal(want), "word %s", w)
	}
}

func TestGroup_SuccessorsAndSymbols(t *testing.T) {
	g := ifs.NewGroup(generators(t, 2))

	assert.Equal(t, []int{0, 1, 2, 3}, g.Successors(address.Empty()))
	assert.Equal(t, []int{3, 0, 1}, g.Successors(address.New(address.Forward(0))))
	assert.Equal(t, []int{2, 3, 0}, g.Successors(address.New(address.Backward(1))))
	assert.Equal(t, address.Backward(1), g.Symbol(3))
	assert.Equal(t, 2, g.Index(address.Backward(0)))
	assert.Equal(t, 2, g.Len())
}

func TestGroup_EarlyStop(t *testing.T) {
	g := ifs.NewGroup(generators(t, 3))
	count := 0
	for range g.Walk(10) {
		count++
		if count == 7 {
			break
		}
	}
	assert.Equal(t, 7, count)
}

func TestGroup_NoGenerators(t *testing.T) {
	g := ifs.NewGroup([]mobius.Mobius{})
	words, _ := collectGroup(g, 3)
	assert.Len(t, words, 1)
}

func TestGroup_WorksWithIsogonal(t *testing.T) {
	tr, err := mobius.Translation(1)
	require.NoError(t, err)
	g := ifs.NewGroup([]isogonal.Isogonal{isogonal.FromMobius(tr), isogonal.ReflectY()})

	n := 0
	for _, v := range g.Walk(2) {
		_ = v.Apply(0.5)
		n++
	}
	assert.Equal(t, 1+4+4*3, n)
}

func TestApplyGroup_FiltersByMinDepth(t *testing.T) {
	tr, err := mobius.Translation(1)
	require.NoError(t, err)
	g := ifs.NewGroup([]mobius.Mobius{tr})

	got := ifs.ApplyGroup(g, point(0), 1, 3)
	// one generator: words a, aa, aaa, A, AA, AAA
	require.Len(t, got, 6)
	assert.ElementsMatch(t, []point{1, 2, 3, -1, -2, -3}, got)

	assert.Empty(t, ifs.ApplyGroup(g, point(0), 4, 3))
}

func TestFlatten(t *testing.T) {
	tr, err := mobius.Translation(1)
	require.NoError(t, err)
	g := ifs.NewGroup([]mobius.Mobius{tr})

	shapes := ifs.ApplyGroup(g, bag{0}, 0, 1)
	flat, err := ifs.Flatten(shapes)
	require.NoError(t, err)
	assert.Equal(t, bag{0, 1, -1}, flat)
}

func TestGroup_GoldenOrder(t *testing.T) {
	g := ifs.NewGroup(generators(t, 2))

	var buf bytes.Buffer
	for w := range g.Walk(2) {
		fmt.Fprintf(&buf, "%d [%s]\n", w.Len(), w)
	}

	gold := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	gold.Assert(t, "group_walk_n2_d2", buf.Bytes())
}

func TestMonoid_DepthOneYieldsIdentityAndGenerators(t *testing.T) {
	gens := generators(t, 4)
	m := ifs.NewMonoid(gens)

	var depths []int
	var values []mobius.Mobius
	for d, v := range m.Walk(1) {
		depths = append(depths, d)
		values = append(values, v)
	}
	assert.Equal(t, []int{0, 1, 1, 1, 1}, depths)
	assert.True(t, values[0].Equal(mobius.Identity()))
	for i, gen := range gens {
		assert.True(t, values[i+1].Equal(gen))
	}
	assert.Equal(t, 4, m.Len())
	assert.True(t, m.At(2).Equal(gens[2]))
}

func TestMonoid_CountAndPreOrder(t *testing.T) {
	m := ifs.NewMonoid(generators(t, 3))

	var depths []string
	for d := range m.Walk(3) {
		depths = append(depths, fmt.Sprint(d))
	}
	// 1 + 3 + 9 + 27
	assert.Len(t, depths, 40)
	assert.Equal(t, "0 1 2 3 3 3 2 3 3 3", strings.Join(depths[:10], " "))
}

func TestMonoid_NewGeneratorAppliedLast(t *testing.T) {
	half, err := mobius.Scale(0.5)
	require.NoError(t, err)
	shift, err := mobius.Translation(1)
	require.NoError(t, err)
	m := ifs.NewMonoid([]mobius.Mobius{half, shift})

	var got []complex128
	for d, v := range m.Walk(2) {
		if d == 2 {
			got = append(got, v.Apply(0))
		}
	}
	// order of application: h then h, h then s, s then h, s then s
	want := []complex128{0, 1, 0.5, 2}
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, mobius.Nearly(want[i], got[i]), "got %v want %v", got[i], want[i])
	}
}

func TestApplyMonoid_Sierpinski(t *testing.T) {
	var gens []mobius.Mobius
	for _, corner := range []complex128{0, 1, 0.5 + 1i} {
		// z ↦ (z + corner) / 2
		m, err := mobius.New(complex(1/1.4142135623730951, 0), corner/1.4142135623730951, 0, complex(1.4142135623730951, 0))
		require.NoError(t, err)
		gens = append(gens, m)
	}
	m := ifs.NewMonoid(gens)

	got := ifs.ApplyMonoid(m, point(0), 2, 2)
	assert.Len(t, got, 9)
	assert.Empty(t, ifs.ApplyMonoid(m, point(0), 1, 0))
}
