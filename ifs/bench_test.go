// SPDX-License-Identifier: MIT

package ifs_test

import (
	"testing"

	"github.com/katalvlaran/cayley/ifs"
	"github.com/katalvlaran/cayley/mobius"
)

func benchGenerators(b *testing.B, n int) []mobius.Mobius {
	b.Helper()
	gens := make([]mobius.Mobius, 0, n)
	for i := 0; i < n; i++ {
		m, err := mobius.New(1, 0, complex(float64(i+2), 1), 1)
		if err != nil {
			b.Fatal(err)
		}
		gens = append(gens, m)
	}

	return gens
}

// BenchmarkGroup_Walk_N2_D8 enumerates 1 + 4·(3⁸−1)/2 reduced words.
func BenchmarkGroup_Walk_N2_D8(b *testing.B) {
	g := ifs.NewGroup(benchGenerators(b, 2))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range g.Walk(8) {
		}
	}
}

// BenchmarkMonoid_Walk_N3_D8 enumerates (3⁹−1)/2 monoid elements.
func BenchmarkMonoid_Walk_N3_D8(b *testing.B) {
	m := ifs.NewMonoid(benchGenerators(b, 3))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range m.Walk(8) {
		}
	}
}
