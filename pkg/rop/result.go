package rop

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind tags the branch a Result holds. Its values double as the "kind"
// field of the Option interchange record.
type Kind string

const (
	KindSuccess Kind = "success"
	KindFailure Kind = "failure"
)

// Unit is the payload of a success that carries no value.
type Unit struct{}

// Result holds either a payload of type T or the error that prevented it.
// The branch is fixed at construction. The zero Result holds neither and is
// reported as a failure carrying ErrEmptyResult.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	kind      Kind
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		kind:      KindSuccess,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail builds a failure. A nil err is replaced by ErrNilError so that every
// failure carries an error with a message.
func Fail[T any](err error) Result[T] {
	if IsNil(err) {
		err = ErrNilError
	}
	return Result[T]{
		err:       err,
		kind:      KindFailure,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Cancel builds a failure that IsCancel reports as a cancellation.
func Cancel[T any](err error) Result[T] {
	if IsNil(err) {
		return Fail[T](context.Canceled)
	}
	if IsCancellationError(err) {
		return Fail[T](err)
	}
	return Fail[T](fmt.Errorf("%w: %w", context.Canceled, err))
}

// FailFrom carries the failure of from over to a Result of another payload
// type, keeping its error, id and creation time.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.Err(),
		kind:      KindFailure,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func OfSuccess[T any](value T) Result[T] {
	return Success(value)
}

func OfFailure[T any](err error) Result[T] {
	return Fail[T](err)
}

// Of classifies value by its dynamic type: a non-nil error becomes a
// failure, anything else a success.
func Of[T any](value T) Result[T] {
	if err, ok := any(value).(error); ok && !IsNil(err) {
		return Fail[T](err)
	}
	return Success(value)
}

// OfNil is a success holding nil.
func OfNil() Result[any] {
	return Success[any](nil)
}

// OfUnit is a success holding no value.
func OfUnit() Result[Unit] {
	return Success(Unit{})
}

// Result returns the payload, or the zero value of T on failure.
func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	if r.kind == "" {
		return ErrEmptyResult
	}
	return r.err
}

func (r Result[T]) Kind() Kind {
	if r.kind == "" {
		return KindFailure
	}
	return r.kind
}

func (r Result[T]) IsSuccess() bool {
	return r.kind == KindSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.IsSuccess()
}

// IsCancel reports a failure caused by context cancellation or a deadline.
func (r Result[T]) IsCancel() bool {
	return r.IsFailure() && IsCancellationError(r.Err())
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// Get returns the payload. On failure it panics with the captured error
// itself, so recover() yields the same error value.
func (r Result[T]) Get() T {
	if r.IsFailure() {
		panic(r.Err())
	}
	return r.result
}

// Unwrap is the non-panicking form of Get.
func (r Result[T]) Unwrap() (T, error) {
	if r.IsFailure() {
		var zero T
		return zero, r.Err()
	}
	return r.result, nil
}

// Or returns r when it is a success; otherwise it calls supplier.
func (r Result[T]) Or(supplier func() Result[T]) Result[T] {
	if r.IsSuccess() {
		return r
	}
	return supplier()
}

func (r Result[T]) OrElse(another T) T {
	if r.IsSuccess() {
		return r.result
	}
	return another
}

func (r Result[T]) OrElseGet(supplier func() T) T {
	if r.IsSuccess() {
		return r.result
	}
	return supplier()
}

// OrNil returns a pointer to a copy of the payload, or nil on failure.
func (r Result[T]) OrNil() *T {
	if r.IsFailure() {
		return nil
	}
	v := r.result
	return &v
}

// OrZero returns the payload, or the zero value of T on failure.
func (r Result[T]) OrZero() T {
	if r.IsFailure() {
		var zero T
		return zero
	}
	return r.result
}

func (r Result[T]) IfSuccess(consumer func(value T)) {
	if r.IsSuccess() {
		consumer(r.result)
	}
}

func (r Result[T]) IfFailure(consumer func(err error)) {
	if r.IsFailure() {
		consumer(r.Err())
	}
}

func (r Result[T]) ToOption() Option[T] {
	if r.IsSuccess() {
		return Option[T]{Kind: KindSuccess, Value: r.result}
	}
	return Option[T]{Kind: KindFailure, Err: r.Err()}
}

func (r Result[T]) String() string {
	if r.IsSuccess() {
		return fmt.Sprintf("Success(%v)", r.result)
	}
	return fmt.Sprintf("Failure(%v)", r.Err())
}
