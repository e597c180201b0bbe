// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"
)

// frame is one stack entry. exit frames fire the post-order hook.
type frame[I any] struct {
	path []I
	exit bool
}

// walker encapsulates state shared by the trees of one walk.
type walker[H comparable, I any] struct {
	s       Strategy[H, I]
	opts    Options
	onVisit func([]I) error
	onExit  func([]I) error
	res     *Result[H, I]
}

func newWalker[H comparable, I any](s Strategy[H, I], opts []Option) (*walker[H, I], error) {
	if s == nil {
		return nil, ErrStrategyNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.err != nil {
		return nil, o.err
	}
	w := &walker[H, I]{
		s:    s,
		opts: o,
		res: &Result[H, I]{
			Depth:   make(map[H]int),
			Parent:  make(map[H]I),
			Visited: make(Visited[H]),
		},
	}
	var ok bool
	if o.onVisit != nil {
		if w.onVisit, ok = o.onVisit.(func([]I) error); !ok {
			return nil, fmt.Errorf("%w: OnVisit hook has type %T", ErrOptionViolation, o.onVisit)
		}
	}
	if o.onExit != nil {
		if w.onExit, ok = o.onExit.(func([]I) error); !ok {
			return nil, fmt.Errorf("%w: OnExit hook has type %T", ErrOptionViolation, o.onExit)
		}
	}

	return w, nil
}

// Tree walks the component containing start.
//
// Complexity: O(V + E) strategy calls for the V vertices and E edges of the
// component, plus a path copy per push.
func Tree[H comparable, I any](s Strategy[H, I], start I, opts ...Option) (*Result[H, I], error) {
	w, err := newWalker(s, opts)
	if err != nil {
		return nil, err
	}
	if err = w.tree(start); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// Forest walks every component, rooting each new tree at s.PickStart.
// Time O(V + E) over the whole graph.
func Forest[H comparable, I any](s Strategy[H, I], opts ...Option) (*Result[H, I], error) {
	w, err := newWalker(s, opts)
	if err != nil {
		return nil, err
	}
	total := s.VertexCount()
	for w.res.Visited.Len() < total {
		start := s.PickStart(w.res.Visited)
		if w.res.Visited.Has(s.Hash(start)) {
			return w.res, fmt.Errorf("%w: after %d of %d vertices", ErrStartVisited, w.res.Visited.Len(), total)
		}
		if err = w.tree(start); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

func (w *walker[H, I]) tree(start I) error {
	w.res.Roots = append(w.res.Roots, start)
	stack := []frame[I]{{path: []I{start}}}
	for len(stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		depth := len(top.path) - 1
		current := top.path[depth]

		// 2. Post-order
		if top.exit {
			if w.onExit != nil {
				if err := w.onExit(top.path); err != nil {
					return fmt.Errorf("dfs: OnExit hook at depth %d: %w", depth, err)
				}
			}
			w.res.Order = append(w.res.Order, current)

			continue
		}

		// 3. Mark visited; a vertex may have been pushed more than once
		hash := w.s.Hash(current)
		if w.res.Visited.Has(hash) {
			continue
		}
		w.res.Visited[hash] = struct{}{}
		w.res.Depth[hash] = depth
		if depth > 0 {
			w.res.Parent[hash] = top.path[depth-1]
		}
		w.res.Paths = append(w.res.Paths, top.path)

		// 4. Pre-order hook
		if w.onVisit != nil {
			if err := w.onVisit(top.path); err != nil {
				return fmt.Errorf("dfs: OnVisit hook at depth %d: %w", depth, err)
			}
		}

		stack = append(stack, frame[I]{path: top.path, exit: true})

		// 5. Depth limit
		if w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth {
			continue
		}

		// 6. Push unvisited neighbors so the first ordered one pops first
		var unvisited []I
		for _, n := range w.s.Neighbors(current) {
			if !w.res.Visited.Has(w.s.Hash(n)) {
				unvisited = append(unvisited, n)
			}
		}
		for _, n := range Reverse(w.s.OrderNeighbors(unvisited)) {
			path := make([]I, len(top.path)+1)
			copy(path, top.path)
			path[len(top.path)] = n
			stack = append(stack, frame[I]{path: path})
		}
	}

	return nil
}
