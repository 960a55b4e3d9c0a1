// internal/solver/parallel.go
//
// Per-start-cell parallel variant of Solve. Workers share one atomic visit
// budget and merge their found sets at the end, so a successful parallel
// solve returns exactly the Result a serial solve would.

package solver

import (
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordhunt/internal/board"
)

// SolveParallel searches every start cell concurrently. The visit budget
// counts all workers together, and the merged Result is identical to the
// serial one.
func (s *Solver) SolveParallel(b board.Board) (Result, error) {
	if s.dict == nil {
		return Result{}, errNilDictionary
	}
	if err := b.Validate(); err != nil {
		return Result{}, err
	}

	var (
		visits int64
		mu     sync.Mutex
		merged = make(map[string]struct{})
	)

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for start := 0; start < b.Len(); start++ {
		start := start
		g.Go(func() error {
			run := s.newSearch(b, &visits)
			if err := run.walk(start, s.dict.Root()); err != nil {
				return err
			}
			mu.Lock()
			for w := range run.found {
				merged[w] = struct{}{}
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return s.result(merged), nil
}
