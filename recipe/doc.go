// SPDX-License-Identifier: MIT

// Package recipe loads generator sets and traversal settings from YAML and
// turns them into validated isogonal generators.
//
// A recipe file looks like:
//
//	name: spiral
//	traversal: monoid      # group | monoid
//	min_depth: 2
//	max_depth: 5
//	generators:
//	  - kind: rotation
//	    angle: 90           # degrees
//	    center: [0.5, 0.5]  # optional fixed point
//	  - kind: scale
//	    factor: 0.5
//	    mirror: true        # follow with complex conjugation
//
// Generator kinds: identity, translation (offset), rotation (angle),
// scale (factor), inversion, point_reflection, reflect_y, conjugation,
// matrix (a, b, c, d as [re, im]).
//
// Unknown fields are rejected. Every coefficient error from the mobius
// package surfaces as mobius.ErrInvalidTransform wrapped with the generator
// index.
package recipe
