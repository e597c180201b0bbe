// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrStrategyNil is returned when a nil Strategy is passed to Tree or Forest.
	ErrStrategyNil = errors.New("dfs: strategy is nil")

	// ErrStartVisited indicates that PickStart chose a vertex already visited,
	// which would make Forest loop forever.
	ErrStartVisited = errors.New("dfs: start vertex already visited")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Visited is the set of vertex hashes seen so far.
type Visited[H comparable] map[H]struct{}

// Has reports whether h was visited.
func (v Visited[H]) Has(h H) bool {
	_, ok := v[h]

	return ok
}

// Len returns the number of visited vertices.
func (v Visited[H]) Len() int {
	return len(v)
}

// Strategy describes a graph to walk. H identifies a vertex, I is the
// vertex value handed back to the caller.
type Strategy[H comparable, I any] interface {
	// VertexCount is the number of distinct vertices; Forest stops once this
	// many have been visited.
	VertexCount() int
	// PickStart returns an unvisited vertex to root the next tree.
	PickStart(visited Visited[H]) I
	// Hash identifies v.
	Hash(v I) H
	// Neighbors returns the vertices adjacent to v.
	Neighbors(v I) []I
	// OrderNeighbors returns neighbors in the order they should be explored.
	OrderNeighbors(neighbors []I) []I
}

// Option configures a walk.
type Option func(*Options)

// Options holds the walk parameters. Hooks are typed by vertex and are
// checked against the Strategy when the walk starts.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// MaxDepth, if non-negative, stops expansion at that depth. A depth of 0
	// visits only the roots. Default is -1 (no limit).
	MaxDepth int

	onVisit any
	onExit  any
	err     error
}

// DefaultOptions returns a background context, no depth limit and no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the context checked before every pop. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the walk to vertices at most limit edges from a root.
//
//	limit >= 0: expand only vertices shallower than limit
//	limit < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)

			return
		}
		o.MaxDepth = limit
	}
}

// WithOnVisit installs a pre-order hook. path runs from the tree root to the
// vertex being visited and must not be modified. Returning an error aborts
// the walk.
func WithOnVisit[I any](fn func(path []I) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithOnExit installs a post-order hook, called once every descendant of the
// vertex has been explored.
func WithOnExit[I any](fn func(path []I) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.onExit = fn
		}
	}
}

// Result captures the outcome of a walk.
type Result[H comparable, I any] struct {
	// Roots holds the start vertex of every tree, in walk order.
	Roots []I

	// Paths holds the root-to-vertex path of every visited vertex, pre-order.
	Paths [][]I

	// Order records vertices in the sequence they finished (post-order).
	Order []I

	// Depth maps each vertex hash to its distance from its root.
	Depth map[H]int

	// Parent maps each non-root vertex hash to the vertex it was reached from.
	Parent map[H]I

	// Visited is the set of vertex hashes reached.
	Visited Visited[H]
}
