package stream

import (
	"context"
	"iter"

	"github.com/ib-77/result/pkg/rop"
)

// FromChan lifts a channel of plain values into a channel of results. Each
// value becomes a success. A non-nil error from errc ends the stream: values
// already buffered in values are emitted first, then the error as a final
// failure, and the output closes normally. The error may be sent before or
// after values is closed, on a buffered or unbuffered errc. errc is expected
// to deliver at most one error; a nil errc means the source cannot fail.
func FromChan[T any](ctx context.Context, values <-chan T, errc <-chan error) <-chan rop.Result[T] {
	out := make(chan rop.Result[T])

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-errc:
				if !ok || err == nil {
					errc = nil
					continue
				}
				if drainBuffered(ctx, values, out) {
					send(ctx, out, rop.Fail[T](err))
				}
				return
			case v, ok := <-values:
				if !ok {
					emitTerminal(ctx, errc, out)
					return
				}
				if !send(ctx, out, rop.Success(v)) {
					return
				}
			}
		}
	}()

	return out
}

// drainBuffered forwards the values that are ready without blocking. It
// reports false when ctx ended while sending.
func drainBuffered[T any](ctx context.Context, values <-chan T, out chan<- rop.Result[T]) bool {
	for {
		select {
		case v, ok := <-values:
			if !ok {
				return true
			}
			if !send(ctx, out, rop.Success(v)) {
				return false
			}
		default:
			return true
		}
	}
}

func emitTerminal[T any](ctx context.Context, errc <-chan error, out chan<- rop.Result[T]) {
	if errc == nil {
		return
	}

	select {
	case err, ok := <-errc:
		if ok && err != nil {
			send(ctx, out, rop.Fail[T](err))
		}
	case <-ctx.Done():
	}
}

// FromSeq lifts a sequence of (value, error) pairs. Pairs with a nil error
// become successes. The first non-nil error, or a panic raised while
// iterating, becomes a final failure and the sequence is not pulled further.
func FromSeq[T any](ctx context.Context, seq iter.Seq2[T, error]) <-chan rop.Result[T] {
	out := make(chan rop.Result[T])

	go func() {
		defer close(out)

		iterated := rop.Wrap(func() rop.Unit {
			for v, err := range seq {
				if err != nil {
					send(ctx, out, rop.Fail[T](err))
					break
				}
				if !send(ctx, out, rop.Success(v)) {
					break
				}
			}
			return rop.Unit{}
		})

		iterated.IfFailure(func(err error) {
			send(ctx, out, rop.Fail[T](err))
		})
	}()

	return out
}

func FromValues[T any](ctx context.Context, values ...T) <-chan rop.Result[T] {
	return FromSeq(ctx, func(yield func(T, error) bool) {
		for _, v := range values {
			if !yield(v, nil) {
				return
			}
		}
	})
}

func send[T any](ctx context.Context, out chan<- T, v T) bool {
	select {
	case out <- v:
		return true
	case <-ctx.Done():
		return false
	}
}
