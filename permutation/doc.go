// SPDX-License-Identifier: MIT

// Package permutation implements the symmetric group Sₙ as an algebra.Group,
// with disjoint-cycle notation and Cayley tables.
//
// A Permutation of degree n stores the image of every point 0..n−1.
// Compose follows function composition: a.Compose(b) applies b first, so
// (a·b)[i] = a[b[i]]. Permutations of different degree compose as if the
// shorter one fixed every extra point; Product is the strict variant that
// rejects mismatched degrees.
//
// Cycle notation:
//
//	"(0 1 2)(3 4)"  0→1→2→0 and 3↔4
//	"I" or ""       identity
//
// Fixed points are omitted when formatting.
//
// Errors:
//
//   - ErrEmpty, ErrDuplicate, ErrOutOfRange  invalid image slice.
//   - ErrDegreeMismatch                       Product of different degrees.
//   - ErrSyntax                               malformed cycle notation.
//   - ErrOverlappingCycles                    a point in two cycles.
//   - ErrNotClosed                            a Cayley table product outside the set.
package permutation
