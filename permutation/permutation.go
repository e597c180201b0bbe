// SPDX-License-Identifier: MIT

package permutation

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// New validates that values is a rearrangement of 0..len(values)−1.
func New(values ...int) (Permutation, error) {
	if len(values) == 0 {
		return Permutation{}, ErrEmpty
	}
	seen := make([]bool, len(values))
	for _, v := range values {
		if v < 0 || v >= len(values) {
			return Permutation{}, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, v, len(values))
		}
		if seen[v] {
			return Permutation{}, fmt.Errorf("%w: %d", ErrDuplicate, v)
		}
		seen[v] = true
	}

	return Permutation{values: slices.Clone(values)}, nil
}

// Identity returns the identity of the given degree.
func Identity(degree int) Permutation {
	values := make([]int, max(degree, 0))
	for i := range values {
		values[i] = i
	}

	return Permutation{values: values}
}

// All yields the n! permutations of degree n in lexicographic order.
func All(n int) iter.Seq[Permutation] {
	return func(yield func(Permutation) bool) {
		if n <= 0 {
			return
		}
		cur := Identity(n).values
		for {
			if !yield(Permutation{values: slices.Clone(cur)}) {
				return
			}
			// next lexicographic permutation
			i := n - 2
			for i >= 0 && cur[i] > cur[i+1] {
				i--
			}
			if i < 0 {
				return
			}
			j := n - 1
			for cur[j] < cur[i] {
				j--
			}
			cur[i], cur[j] = cur[j], cur[i]
			slices.Reverse(cur[i+1:])
		}
	}
}

// Degree returns n.
func (p Permutation) Degree() int {
	return len(p.values)
}

// Values returns a copy of the image slice.
func (p Permutation) Values() []int {
	return slices.Clone(p.values)
}

// Apply returns the image of i. Points beyond the degree are fixed.
func (p Permutation) Apply(i int) int {
	if i < 0 || i >= len(p.values) {
		return i
	}

	return p.values[i]
}

// Identity returns the identity of the same degree as p.
func (p Permutation) Identity() Permutation {
	return Identity(len(p.values))
}

// Compose returns p·q, "apply q, then p".
func (p Permutation) Compose(q Permutation) Permutation {
	n := max(len(p.values), len(q.values))
	out := make([]int, n)
	for i := range out {
		out[i] = p.Apply(q.Apply(i))
	}

	return Permutation{values: out}
}

// Product is Compose restricted to equal degrees.
func Product(p, q Permutation) (Permutation, error) {
	if len(p.values) != len(q.values) {
		return Permutation{}, fmt.Errorf("%w: %d and %d", ErrDegreeMismatch, len(p.values), len(q.values))
	}

	return p.Compose(q), nil
}

// Inverse returns p⁻¹.
func (p Permutation) Inverse() Permutation {
	out := make([]int, len(p.values))
	for i, v := range p.values {
		out[v] = i
	}

	return Permutation{values: out}
}

// Equal reports whether p and q move every point the same way.
func (p Permutation) Equal(q Permutation) bool {
	n := max(len(p.values), len(q.values))
	for i := 0; i < n; i++ {
		if p.Apply(i) != q.Apply(i) {
			return false
		}
	}

	return true
}

// IsIdentity reports whether p fixes every point.
func (p Permutation) IsIdentity() bool {
	for i, v := range p.values {
		if i != v {
			return false
		}
	}

	return true
}

// Key returns a string that is equal for equal permutations, for use as a
// map key. Trailing fixed points are dropped.
func (p Permutation) Key() string {
	n := len(p.values)
	for n > 0 && p.values[n-1] == n-1 {
		n--
	}
	var b strings.Builder
	for i, v := range p.values[:n] {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}

// Cycles returns the non-trivial disjoint cycles, each starting at its
// smallest point, ordered by that point.
func (p Permutation) Cycles() [][]int {
	seen := make([]bool, len(p.values))
	var cycles [][]int
	for start := range p.values {
		if seen[start] || p.values[start] == start {
			continue
		}
		var cycle []int
		for i := start; !seen[i]; i = p.values[i] {
			seen[i] = true
			cycle = append(cycle, i)
		}
		cycles = append(cycles, cycle)
	}

	return cycles
}

// Order returns the smallest k > 0 with pᵏ = I: the lcm of cycle lengths.
func (p Permutation) Order() int {
	order := 1
	for _, c := range p.Cycles() {
		order = lcm(order, len(c))
	}

	return order
}

// Sign returns +1 for even and −1 for odd permutations.
func (p Permutation) Sign() int {
	sign := 1
	for _, c := range p.Cycles() {
		if len(c)%2 == 0 {
			sign = -sign
		}
	}

	return sign
}

// String formats p in disjoint-cycle notation, "I" for the identity.
func (p Permutation) String() string {
	return FormatCycles(p.Cycles())
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
