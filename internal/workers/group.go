// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultGroupSize is the number of tasks admitted together when a
// non-positive size is given.
const DefaultGroupSize = 5

// Task computes the result for the task at index i.
type Task[T any] func(ctx context.Context, i int) (T, error)

// Groups splits n tasks into consecutive [start, end) ranges of at most size
// elements.
func Groups(n, size int) [][2]int {
	if size <= 0 {
		size = DefaultGroupSize
	}

	var groups [][2]int
	for start := 0; start < n; start += size {
		groups = append(groups, [2]int{start, min(start+size, n)})
	}
	return groups
}

// RunGroups runs n tasks in groups of size and returns their results in
// index order.
//
// Within a group all tasks run concurrently and are joined before the next
// group starts. The first failing task cancels the context of its group
// siblings, and its error is returned once the group has been joined; later
// groups are not started.
func RunGroups[T any](ctx context.Context, n, size int, task Task[T]) ([]T, error) {
	results := make([]T, n)

	for _, g := range Groups(n, size) {
		eg, groupCtx := errgroup.WithContext(ctx)

		for i := g[0]; i < g[1]; i++ {
			i := i // per-iteration copy; go.mod targets go1.21 (pre-1.22 loopvar semantics)
			eg.Go(func() error {
				out, err := task(groupCtx, i)
				if err != nil {
					return err
				}
				results[i] = out
				return nil
			})
		}

		if err := eg.Wait(); err != nil {
			return nil, err
		}
	}

	return results, nil
}
