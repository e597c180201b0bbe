// SPDX-License-Identifier: MIT

package pointset

import (
	"math"
	"math/cmplx"
)

type cell [2]int

// Set is a tolerance-aware set of complex points. It is not safe for
// concurrent use.
type Set struct {
	grid  map[cell][]complex128
	bits  int
	eps   float64
	count int
}

// New returns an empty Set.
func New(opts ...Option) (*Set, error) {
	o, err := Resolve(opts...)
	if err != nil {
		return nil, err
	}

	return &Set{
		grid: make(map[cell][]complex128),
		bits: o.QuantizeBits,
		eps:  o.Epsilon,
	}, nil
}

// Quantize returns ⌊x·2^bits⌋.
func Quantize(x float64, bits int) int {
	return int(math.Floor(math.Ldexp(x, bits)))
}

func (s *Set) cellOf(z complex128) cell {
	return cell{Quantize(real(z), s.bits), Quantize(imag(z), s.bits)}
}

func (s *Set) cellContains(c cell, z complex128) bool {
	for _, p := range s.grid[c] {
		if cmplx.Abs(p-z) < s.eps {
			return true
		}
	}

	return false
}

// Contains reports whether a point within the tolerance of z was inserted.
// It probes at most 9 cells; O(k) for k points stored in them.
func (s *Set) Contains(z complex128) bool {
	if cmplx.IsInf(z) || cmplx.IsNaN(z) {
		return false
	}
	home := s.cellOf(z)
	if s.cellContains(home, z) {
		return true
	}
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if s.cellContains(cell{home[0] + dx, home[1] + dy}, z) {
				return true
			}
		}
	}

	return false
}

// Insert adds z and reports whether the set grew.
func (s *Set) Insert(z complex128) bool {
	if cmplx.IsInf(z) || cmplx.IsNaN(z) || s.Contains(z) {
		return false
	}
	c := s.cellOf(z)
	s.grid[c] = append(s.grid[c], z)
	s.count++

	return true
}

// Len returns the number of distinct points stored.
func (s *Set) Len() int {
	return s.count
}

// QuantizeBits returns the configured cell resolution.
func (s *Set) QuantizeBits() int {
	return s.bits
}
