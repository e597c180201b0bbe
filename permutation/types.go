// SPDX-License-Identifier: MIT

package permutation

import "errors"

// Sentinel errors for permutation construction and parsing.
var (
	ErrEmpty             = errors.New("permutation: values must not be empty")
	ErrDuplicate         = errors.New("permutation: values must not repeat")
	ErrOutOfRange        = errors.New("permutation: value out of range")
	ErrDegreeMismatch    = errors.New("permutation: degrees differ")
	ErrSyntax            = errors.New("permutation: invalid cycle notation")
	ErrOverlappingCycles = errors.New("permutation: cycles must be disjoint")
	ErrNotClosed         = errors.New("permutation: product not in element set")
)

// Permutation is a bijection of {0, …, n−1}. The zero value is the identity
// of degree 0, which acts as the identity of every degree under Compose.
type Permutation struct {
	values []int
}
