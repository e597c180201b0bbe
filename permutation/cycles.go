// SPDX-License-Identifier: MIT

package permutation

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// FromCycles builds the permutation of the given degree from disjoint
// cycles. 1-cycles are allowed and change nothing.
func FromCycles(degree int, cycles [][]int) (Permutation, error) {
	if degree <= 0 {
		return Permutation{}, ErrEmpty
	}
	values := Identity(degree).values
	used := make([]bool, degree)
	for _, c := range cycles {
		for _, x := range c {
			if x < 0 || x >= degree {
				return Permutation{}, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, x, degree)
			}
			if used[x] {
				return Permutation{}, fmt.Errorf("%w: %d appears twice", ErrOverlappingCycles, x)
			}
			used[x] = true
		}
		for i, x := range c {
			values[x] = c[(i+1)%len(c)]
		}
	}

	return Permutation{values: values}, nil
}

// ParseCycles parses disjoint-cycle notation such as "(0 3)(1 2)" into a
// permutation of the given degree. Whitespace between and inside cycles is
// ignored. "I" and the empty string denote the identity.
func ParseCycles(s string, degree int) (Permutation, error) {
	if strings.TrimSpace(s) == "I" {
		return FromCycles(degree, nil)
	}
	bodies, err := splitCycles(s)
	if err != nil {
		return Permutation{}, err
	}
	cycles := make([][]int, 0, len(bodies))
	for _, body := range bodies {
		var cycle []int
		for _, field := range strings.Fields(body) {
			x, err := strconv.Atoi(field)
			if err != nil {
				return Permutation{}, fmt.Errorf("%w: %q: %w", ErrSyntax, s, err)
			}
			cycle = append(cycle, x)
		}
		cycles = append(cycles, cycle)
	}

	return FromCycles(degree, cycles)
}

// splitCycles returns the text inside each top-level pair of parentheses.
func splitCycles(s string) ([]string, error) {
	var bodies []string
	start, inside := 0, false
	for i, r := range s {
		switch {
		case r == '(' && inside:
			return nil, fmt.Errorf("%w: nested cycle in %q", ErrSyntax, s)
		case r == ')' && !inside:
			return nil, fmt.Errorf("%w: unmatched ')' in %q", ErrSyntax, s)
		case r == '(':
			start, inside = i+1, true
		case r == ')':
			bodies = append(bodies, s[start:i])
			inside = false
		case !inside && !unicode.IsSpace(r):
			return nil, fmt.Errorf("%w: %q outside parentheses in %q", ErrSyntax, r, s)
		}
	}
	if inside {
		return nil, fmt.Errorf("%w: unmatched '(' in %q", ErrSyntax, s)
	}

	return bodies, nil
}

// FormatCycles writes cycles as "(a b c)(d e)", skipping 1-cycles. No
// non-trivial cycle formats as "I".
func FormatCycles(cycles [][]int) string {
	var b strings.Builder
	for _, c := range cycles {
		if len(c) < 2 {
			continue
		}
		b.WriteByte('(')
		for i, x := range c {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(x))
		}
		b.WriteByte(')')
	}
	if b.Len() == 0 {
		return "I"
	}

	return b.String()
}
