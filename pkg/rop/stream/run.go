package stream

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/result/pkg/rop"
)

// Run applies stage to every result read from in, using Workers(ctx, 1)
// worker lines. A panic inside stage becomes a failure for that element.
// Output order matches input order only with a single line. The output is
// closed once in is drained or ctx is done.
func Run[In, Out any](ctx context.Context, in <-chan rop.Result[In],
	stage func(ctx context.Context, r rop.Result[In]) rop.Result[Out]) <-chan rop.Result[Out] {

	out := make(chan rop.Result[Out])
	g, gctx := errgroup.WithContext(ctx)

	for range Workers(ctx, 1) {
		g.Go(func() error {
			for {
				select {
				case <-gctx.Done():
					return gctx.Err()
				case r, ok := <-in:
					if !ok {
						return nil
					}
					if !send(gctx, out, runStage(gctx, r, stage)) {
						return gctx.Err()
					}
				}
			}
		})
	}

	go func() {
		_ = g.Wait()
		close(out)
	}()

	return out
}

func runStage[In, Out any](ctx context.Context, r rop.Result[In],
	stage func(ctx context.Context, r rop.Result[In]) rop.Result[Out]) rop.Result[Out] {

	wrapped := rop.Wrap(func() rop.Result[Out] {
		return stage(ctx, r)
	})
	if wrapped.IsFailure() {
		return rop.Fail[Out](wrapped.Err())
	}
	return wrapped.Get()
}
