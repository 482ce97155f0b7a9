package utility

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/iaus/core"
)

// EvaluateBatch evaluates each actor in order, then records the result and a seeded lock
func (ev *Evaluator) EvaluateBatch(ids []core.Entity, ctx Context, sys Systems, cache ResultWriter, lock LockWriter) {
	for _, e := range ids {
		ev.evaluateOne(e, ctx, sys, cache, lock)
	}
}

// EvaluateBatchParallel splits ids into contiguous chunks evaluated concurrently
// Every actor writes only its own cache and lock slot, and ties are broken per actor,
// so results are identical to EvaluateBatch
func (ev *Evaluator) EvaluateBatchParallel(ctx context.Context, ids []core.Entity, tc Context, sys Systems, cache ResultWriter, lock LockWriter, workers int) error {
	if workers <= 1 || len(ids) < 2*workers {
		ev.EvaluateBatch(ids, tc, sys, cache, lock)
		return ctx.Err()
	}

	chunk := (len(ids) + workers - 1) / workers
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for start := 0; start < len(ids); start += chunk {
		part := ids[start:min(start+chunk, len(ids))]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ev.EvaluateBatch(part, tc, sys, cache, lock)
			return nil
		})
	}
	return g.Wait()
}

func (ev *Evaluator) evaluateOne(e core.Entity, ctx Context, sys Systems, cache ResultWriter, lock LockWriter) Result {
	res := ev.EvaluateActor(e, ctx, sys)
	cache.SetResult(e, int(res.Decision), res.Score, ctx.Tick)

	d := &ev.catalog.Decisions[res.Decision]
	ticks := CalculateDuration(d.BaseDurationTicks, d.DurationVariance, LockSeed(e, ctx.Tick))
	lock.SetLock(e, ticks, int(res.Decision))
	return res
}
