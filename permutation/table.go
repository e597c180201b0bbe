// SPDX-License-Identifier: MIT

package permutation

import "fmt"

// CayleyTable returns table[i][j] = index of elems[i]·elems[j] in elems.
// It fails with ErrNotClosed when a product is missing from elems.
func CayleyTable(elems []Permutation) ([][]int, error) {
	index := make(map[string]int, len(elems))
	for i, e := range elems {
		index[e.Key()] = i
	}
	table := make([][]int, len(elems))
	for i, a := range elems {
		row := make([]int, len(elems))
		for j, b := range elems {
			k, ok := index[a.Compose(b).Key()]
			if !ok {
				return nil, fmt.Errorf("%w: %v·%v", ErrNotClosed, a, b)
			}
			row[j] = k
		}
		table[i] = row
	}

	return table, nil
}

// IsLatinSquare reports whether every row and column of a square table
// holds each of 0..n−1 exactly once, as the Cayley table of a group must.
func IsLatinSquare(table [][]int) bool {
	n := len(table)
	for _, row := range table {
		if len(row) != n {
			return false
		}
	}
	for i := 0; i < n; i++ {
		rowSeen := make([]bool, n)
		colSeen := make([]bool, n)
		for j := 0; j < n; j++ {
			r, c := table[i][j], table[j][i]
			if r < 0 || r >= n || c < 0 || c >= n || rowSeen[r] || colSeen[c] {
				return false
			}
			rowSeen[r], colSeen[c] = true, true
		}
	}

	return true
}
