package solo

import (
	"context"
	"errors"

	"github.com/ib-77/result/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

func Cancel[T any](err error) rop.Result[T] {
	return rop.Cancel[T](err)
}

// Wrap captures a panicking computation, see rop.Wrap.
func Wrap[T any](ctx context.Context, fn func(ctx context.Context) T) rop.Result[T] {
	return rop.Wrap(func() T { return fn(ctx) })
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	if input.IsFailure() {
		return input
	}

	if isValid, errMsg := validate(ctx, input.Result()); !isValid {
		return rop.Fail[T](errors.New(errMsg))
	}
	return input
}

// ValidateAll runs every validator and joins the errors of the failing
// ones. With breakOnError it stops at the first failure.
func ValidateAll[T any](
	ctx context.Context,
	input rop.Result[T],
	breakOnError bool,
	inputsF ...func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	var err error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current rop.Result[T]) rop.Result[T] {

			if current.IsFailure() {
				err = errors.Join(append(rop.GetErrors(err), current.Err())...)
			}

			if rop.IsNil(err) {
				return current
			}

			return rop.Fail[T](err)
		},
		inputsF...,
	)
}

// Switch moves a success onto another track; failures keep their error.
func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return rop.FailFrom[In, Out](input)
}

// Map is the non-panicking counterpart of rop.Map: a failure is passed on
// unchanged instead of being raised.
func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(ctx, input.Result()))
	}
	return rop.FailFrom[In, Out](input)
}

func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T any](ctx context.Context,
	input rop.Result[T],
	condition func(ctx context.Context, r rop.Result[T]) bool,
	onSuccessAndCondition func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	if input.IsSuccess() && condition(ctx, input) {
		onSuccessAndCondition(ctx, input)
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error),
	onCancel func(ctx context.Context, err error)) rop.Result[T] {

	switch {
	case input.IsSuccess():
		onSuccess(ctx, input.Result())
	case input.IsCancel():
		onCancel(ctx, input.Err())
	default:
		onError(ctx, input.Err())
	}

	return input
}

// DoubleMap maps a success; on failure the error handlers run for their side
// effects and the failure is passed on.
func DoubleMap[In any, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) rop.Result[Out] {

	switch {
	case input.IsSuccess():
		return rop.Success(onSuccess(ctx, input.Result()))
	case input.IsCancel():
		onCancel(ctx, input.Err())
	default:
		onError(ctx, input.Err())
	}

	return rop.FailFrom[In, Out](input)
}

// Try calls a (value, error) function on a success. Errors become failures,
// panics are captured as by rop.Wrap.
func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	if input.IsFailure() {
		return rop.FailFrom[In, Out](input)
	}

	return rop.WrapErr(func() (Out, error) {
		return onTryExecute(ctx, input.Result())
	})
}

func FailOnError[T any](ctx context.Context, input rop.Result[T],
	maybeErr func(ctx context.Context, in T) error) rop.Result[T] {

	if input.IsSuccess() {
		if err := maybeErr(ctx, input.Result()); err != nil {
			return rop.Fail[T](err)
		}
	}
	return input
}

// Recover replaces a failure with the result of onFailure. Successes are
// returned untouched and onFailure is not called.
func Recover[T any](ctx context.Context, input rop.Result[T],
	onFailure func(ctx context.Context, err error) rop.Result[T]) rop.Result[T] {

	return input.Or(func() rop.Result[T] {
		return onFailure(ctx, input.Err())
	})
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	return rop.Matches(input, rop.Cases[In, Out]{
		Success: func(r In) Out {
			return onSuccess(ctx, r)
		},
		Failure: func(err error) Out {
			if input.IsCancel() {
				return onCancel(ctx, err)
			}
			return onError(ctx, err)
		},
	})
}

// Join feeds input through inputsF in order, passing every step through
// concat. It stops early when ctx is done, or at the first failure when
// breakOnError is set.
func Join[T any](ctx context.Context,
	input rop.Result[T],
	breakOnError bool,
	concat func(ctx context.Context, current rop.Result[T]) rop.Result[T],
	inputsF ...func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	if len(inputsF) == 0 || concat == nil || ctx.Err() != nil {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))
	if ctx.Err() != nil || (finalResult.IsFailure() && breakOnError) {
		return finalResult
	}

	for _, in := range inputsF[1:] {
		if ctx.Err() != nil {
			return finalResult
		}

		finalResult = concat(ctx, in(ctx, finalResult))
		if finalResult.IsFailure() && breakOnError {
			return finalResult
		}
	}
	return finalResult
}
