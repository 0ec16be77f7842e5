package subnet

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// checkEvery is how many descriptors a worker builds between context checks.
const checkEvery = 4096

// fillRange is swapped in tests to inject worker failures.
var fillRange = func(plan Plan, start uint64, out []Descriptor) {
	plan.fill(start, out)
}

// span is the contiguous index range [start, end) handled by one worker.
type span struct {
	start, end uint64
}

// split divides [0, count) into at most workers contiguous spans. Every span
// but the last holds count/workers indices; the last absorbs the remainder.
func split(count uint64, workers int) []span {
	w := uint64(workers)
	if w > count {
		w = count
	}
	if w == 0 {
		return nil
	}
	size := count / w
	spans := make([]span, w)
	for i := range spans {
		start := uint64(i) * size
		spans[i] = span{start: start, end: start + size}
	}
	spans[w-1].end = count
	return spans
}

// EnumerateParallel produces the same descriptors as Enumerate using up to
// workers goroutines. Each worker computes its first address in closed form
// from its span start, so workers share nothing but the read-only plan.
// Results are merged by worker index. If any worker fails the whole call
// fails and no descriptors are returned.
func EnumerateParallel(ctx context.Context, base Address, baseLen, subLen PrefixLength, workers int) ([]Descriptor, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWorkerCount, workers)
	}
	plan, err := NewPlan(base, baseLen, subLen)
	if err != nil {
		return nil, err
	}

	spans := split(plan.Count, workers)
	results := make([][]Descriptor, len(spans))

	g, gctx := errgroup.WithContext(ctx)
	for i, sp := range spans {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: worker %d: %v", ErrWorkerPanic, i, r)
				}
			}()
			out, err := runSpan(gctx, plan, sp)
			if err != nil {
				return fmt.Errorf("worker %d: %w", i, err)
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAggregateFailure, err)
	}

	merged := make([]Descriptor, 0, plan.Count)
	for _, r := range results {
		merged = append(merged, r...)
	}
	return merged, nil
}

func runSpan(ctx context.Context, plan Plan, sp span) ([]Descriptor, error) {
	out := make([]Descriptor, sp.end-sp.start)
	for off := uint64(0); off < uint64(len(out)); off += checkEvery {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := min(off+checkEvery, uint64(len(out)))
		fillRange(plan, sp.start+off, out[off:end])
	}
	return out, nil
}
