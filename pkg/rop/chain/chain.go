package chain

import (
	"context"

	"github.com/ib-77/result/pkg/rop"
	"github.com/ib-77/result/pkg/rop/solo"
)

// Chain carries a rop.Result and the context its steps run with.
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

func Start[T any](ctx context.Context, result rop.Result[T]) *Chain[T] {
	return &Chain[T]{ctx: ctx, result: result}
}

func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, rop.Success(value))
}

// Wrap starts a chain from a computation that may panic.
func Wrap[T any](ctx context.Context, fn func(ctx context.Context) T) *Chain[T] {
	return Start(ctx, solo.Wrap(ctx, fn))
}

func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

// Then chains a function that returns rop.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.Result[U]) *Chain[U] {
	return Start(c.ctx, solo.Switch(c.ctx, c.result, onSuccess))
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return Start(c.ctx, solo.Try(c.ctx, c.result, tryOnSuccess))
}

func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return Start(c.ctx, solo.Map(c.ctx, c.result, onSuccess))
}

// Ensure runs onSuccess for its side effect; the result is unchanged.
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return Start(c.ctx, solo.Tee(c.ctx, c.result, func(ctx context.Context, r rop.Result[T]) {
		onSuccess(ctx, r.Result())
	}))
}

// OrElse swaps a failed chain for the result of onFailure.
func (c *Chain[T]) OrElse(onFailure func(context.Context, error) rop.Result[T]) *Chain[T] {
	return Start(c.ctx, solo.Recover(c.ctx, c.result, onFailure))
}

// Finally collapses the chain into a final value.
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, error) U, onCancel func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure, onCancel)
}
