// SPDX-License-Identifier: MIT

// Package pointset deduplicates complex points up to a tolerance without ever
// using a float as a map key.
//
// What:
//
//   - Each point is quantized to an integer cell (⌊x·2^bits⌋, ⌊y·2^bits⌋).
//   - Contains looks in the point's own cell and its 8 neighbors, so a point
//     pushed across a cell boundary by rounding is still found.
//   - Points within Epsilon of each other are the same point.
//   - Insert is a no-op when Contains already reports true.
//
// Why:
//   - Points computed along different words differ in their last bits, so
//     exact map keys miss; a linear scan is O(n) per lookup.
//
// Key Types:
//
//   - Set: the cell map with its bits and tolerance
//   - Options: QuantizeBits, Epsilon; Resolve validates them for callers
//     that build sets later (see orbit)
//
// Options:
//
//   - WithQuantizeBits(bits) cell size 2^-bits, default 8, must be in [0, 52].
//   - WithEpsilon(eps)       match tolerance, default 1e-9, must be positive.
//
// Complexity:
//
//   - Contains, Insert: O(k) for k points sharing the 3×3 cell block.
//   - Memory: O(n).
//
// Non-finite points are never stored and never contained.
package pointset
