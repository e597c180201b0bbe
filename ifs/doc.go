// SPDX-License-Identifier: MIT

// Package ifs enumerates iterated function systems as bounded-depth,
// explicit-stack, pre-order depth-first walks of a word tree.
//
// What:
//
//   - Monoid: the free-monoid word tree over n generators. Every node has n
//     children (generator applied on the left); no pruning is possible because
//     there are no inverses. Yields (depth, element).
//   - Group: the Cayley-graph walk over n generators and their n inverses,
//     stored as the doubled list [g0…gn-1, g0⁻¹…gn-1⁻¹] so index i+n is the
//     inverse of index i. A node whose word ends in symbol s expands every
//     symbol except s⁻¹, visiting the 2n−1 children in cyclic order starting
//     just after s⁻¹. Yields (address, element); no yielded word contains an
//     adjacent cancelling pair.
//
// Each node is yielded before its children are pushed. Children are pushed in
// reverse so that popping restores their left-to-right order. The stack is
// owned by the iterator; ranging over the same sequence twice restarts the
// walk from the root.
//
// Why:
//   - A fractal or tiling is the image of a seed shape under every short word
//     in the generators. Walking words lazily lets the caller stop early and
//     keeps memory at one stack.
//   - Skipping s·s⁻¹ removes the trivially duplicated words, which would
//     otherwise make up most of the tree.
//
// Key Types:
//
//   - Monoid[S]: generators of a free monoid; Walk yields (depth, S)
//   - Group[G]: doubled generator list; Walk yields (address.Address, G)
//   - Successors(w): the indices allowed after word w
//
// Complexity:
//
//   - Monoid: Time O(n^D) nodes, Memory O(n·D) stack.
//   - Group:  Time O(2n·(2n−1)^(D−1)) nodes, Memory O(2n·D) stack.
//
// Apply functions transform a seed shape by every element whose depth lies in
// [minDepth, maxDepth]. Negative depths are treated as 0. Traversals never
// fail: generator validity is checked where the generators are built.
package ifs
