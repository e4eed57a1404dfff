package search

import (
	"golang.org/x/sync/errgroup"
)

// forEach calls fn for every index in [0, n), splitting the range into
// contiguous chunks run on up to s.workers goroutines. fn must only write
// to state owned by its index.
func (s *Search) forEach(n int, fn func(i int)) {
	workers := min(s.workers, n)
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				fn(i)
			}
			return nil
		})
	}
	_ = g.Wait()
}
