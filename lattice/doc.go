// SPDX-License-Identifier: MIT

// Package lattice enumerates a finite grid of group-element powers, the
// building block of periodic (wallpaper-like) patterns.
//
// What:
//
//   - Each axis is described by (generator, start power, end power) and
//     covers the powers [start, end).
//   - Axes are normalized to (generator, generator^start, end − start) so the
//     iteration only ever counts upward, even for negative start powers.
//   - Iteration behaves like a ripple-carry counter: the last axis advances
//     fastest; on overflow it resets to its start element and carries into the
//     previous axis; the walk stops when axis 0 overflows.
//   - Every emitted element is the product of the axes' current values, axis 0
//     leftmost.
//   - Conjugate(t) sandwiches every generator and start element by t, warping
//     the whole pattern through t while keeping its combinatorics.
//
// Why:
//   - A wallpaper pattern is a finite window of a lattice of translations
//     (or any commuting generators); the grid gives every copy exactly once
//     without the duplicate words a Cayley walk would produce.
//
// Key Types:
//
//   - Axis[G]: Generator, Start, End
//   - Lattice[G]: normalized axes; All yields (indices, element)
//
// Complexity:
//
//   - Time:   O(∏ countᵢ · k) compositions for k axes.
//   - Memory: O(k).
//
// Errors:
//
//   - ErrNoAxes     no axis given.
//   - ErrEmptyAxis  an axis whose end power is not greater than its start.
package lattice
