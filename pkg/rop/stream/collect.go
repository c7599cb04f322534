package stream

import (
	"context"

	"github.com/ib-77/result/pkg/rop"
)

// Collect drains ch until it is closed or ctx is done.
func Collect[T any](ctx context.Context, ch <-chan rop.Result[T]) []rop.Result[T] {
	res := make([]rop.Result[T], 0)
	for {
		select {
		case r, ok := <-ch:
			if !ok {
				return res
			}
			res = append(res, r)
		case <-ctx.Done():
			return res
		}
	}
}

// Partition drains ch and splits it into payloads and errors, each in
// arrival order.
func Partition[T any](ctx context.Context, ch <-chan rop.Result[T]) ([]T, []error) {
	values := make([]T, 0)
	errs := make([]error, 0)

	for _, r := range Collect(ctx, ch) {
		rop.IfSuccessOrFailure(r, rop.Cases[T, rop.Unit]{
			Success: func(v T) rop.Unit {
				values = append(values, v)
				return rop.Unit{}
			},
			Failure: func(err error) rop.Unit {
				errs = append(errs, err)
				return rop.Unit{}
			},
		})
	}
	return values, errs
}
