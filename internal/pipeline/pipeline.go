// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Config controls the per-sequence fan-out.
type Config struct {
	Threads    int  // number of worker goroutines (>=1)
	SkipErrors bool // record per-sequence failures instead of aborting
	// OnResult, when non-nil, is called once per completed sequence from
	// the collector goroutine (never concurrently).
	OnResult func(index int)
}

// Skip describes one sequence dropped under SkipErrors.
type Skip struct {
	Index int
	Err   error
}

// Map fans seqs out to Threads workers, applies fn to each, and fans the
// results back in by index, so output order matches input order regardless
// of scheduling. Workers check ctx between sequences; a single fn call is
// never interrupted.
//
// The first error aborts the run unless SkipErrors is set, in which case the
// failed indices come back in skips (ascending) and their output slots hold
// T's zero value.
func Map[T any](
	ctx context.Context,
	cfg Config,
	seqs []string,
	fn func(ctx context.Context, index int, seq string) (T, error),
) (out []T, skips []Skip, err error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	type job struct {
		index int
		seq   string
	}
	type result struct {
		index int
		value T
		err   error
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan result, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					v, ferr := fn(ctx, j.index, j.seq)
					select {
					case results <- result{index: j.index, value: v, err: ferr}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector
	out = make([]T, len(seqs))
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for r := range results {
			if r.err != nil {
				if cfg.SkipErrors {
					skips = append(skips, Skip{Index: r.index, Err: r.err})
					continue
				}
				if cerr == nil {
					cerr = fmt.Errorf("sequence %d: %w", r.index, r.err)
				}
				continue
			}
			out[r.index] = r.value
			if cfg.OnResult != nil {
				cfg.OnResult(r.index)
			}
		}
	}()

	// Feed work
feed:
	for i, s := range seqs {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- job{index: i, seq: s}:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return nil, nil, ctx.Err()
	}
	if cerr != nil {
		return nil, nil, cerr
	}
	sort.Slice(skips, func(i, j int) bool { return skips[i].Index < skips[j].Index })
	return out, skips, nil
}
