package rop

import "context"

// Wrap runs fn and captures its outcome. A panic inside fn becomes a
// failure: an error panic value is kept as is, any other value is wrapped in
// a PanicError. Wrap itself never panics.
func Wrap[T any](fn func() T) (res Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			res = Fail[T](panicToError(rec))
		}
	}()
	return Success(fn())
}

// WrapErr is Wrap for functions that report failure by returning an error.
func WrapErr[T any](fn func() (T, error)) (res Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			res = Fail[T](panicToError(rec))
		}
	}()

	v, err := fn()
	if err != nil {
		return Fail[T](err)
	}
	return Success(v)
}

// WrapAsync starts fn in its own goroutine and delivers exactly one Result
// on the returned channel before closing it. ctx is passed to fn untouched;
// stopping fn early is up to fn.
func WrapAsync[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) <-chan Result[T] {
	out := make(chan Result[T], 1)

	go func() {
		defer close(out)
		out <- WrapErr(func() (T, error) {
			return fn(ctx)
		})
	}()

	return out
}

// Await waits for the single Result of a WrapAsync channel. A result that
// is already delivered wins over a done ctx. If ctx ends first, the returned
// failure carries ctx.Err(). A channel closed without a value yields
// ErrEmptyResult.
func Await[T any](ctx context.Context, ch <-chan Result[T]) Result[T] {
	select {
	case res, ok := <-ch:
		return settled(res, ok)
	default:
	}

	select {
	case res, ok := <-ch:
		return settled(res, ok)
	case <-ctx.Done():
		return Fail[T](ctx.Err())
	}
}

func settled[T any](res Result[T], ok bool) Result[T] {
	if !ok {
		return Fail[T](ErrEmptyResult)
	}
	return res
}

func panicToError(rec any) error {
	if err, ok := rec.(error); ok {
		return err
	}
	return &PanicError{Value: rec}
}
