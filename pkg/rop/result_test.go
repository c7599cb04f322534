package rop

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOf_ClassifiesByType(t *testing.T) {
	t.Parallel()

	err := errors.New("x")
	failed := Of(err)
	assert.True(t, failed.IsFailure())
	assert.Same(t, err, failed.Err())
	assert.PanicsWithError(t, "x", func() { failed.Get() })

	ok := Of(1)
	assert.True(t, ok.IsSuccess())
	assert.Equal(t, 1, ok.Get())

	var asAny any = err
	assert.True(t, Of(asAny).IsFailure())

	var nilErr error
	assert.True(t, Of(nilErr).IsSuccess())
}

func TestOfNilAndOfUnit(t *testing.T) {
	t.Parallel()

	assert.Nil(t, OfNil().Get())
	assert.True(t, OfNil().IsSuccess())
	assert.Equal(t, Unit{}, OfUnit().Get())
}

func TestFail_NilErrorIsReplaced(t *testing.T) {
	t.Parallel()

	r := Fail[int](nil)
	assert.True(t, r.IsFailure())
	assert.ErrorIs(t, r.Err(), ErrNilError)
}

func TestZeroResultIsFailure(t *testing.T) {
	t.Parallel()

	var r Result[string]
	assert.True(t, r.IsFailure())
	assert.False(t, r.IsSuccess())
	assert.Equal(t, KindFailure, r.Kind())
	assert.ErrorIs(t, r.Err(), ErrEmptyResult)
	assert.Equal(t, "fallback", r.OrElse("fallback"))
}

func TestMetadata(t *testing.T) {
	t.Parallel()

	a := Success(1)
	b := Success(1)
	assert.NotEqual(t, uuid.Nil, a.Id())
	assert.NotEqual(t, a.Id(), b.Id())
	assert.False(t, a.CreatedAt().IsZero())
	assert.Equal(t, "UTC", a.CreatedAt().Location().String())
}

func TestSuccess_Operations(t *testing.T) {
	t.Parallel()

	r := OfSuccess(1)
	assert.Equal(t, 1, r.Get())
	assert.True(t, r.IsSuccess())
	assert.False(t, r.IsFailure())
	assert.Equal(t, KindSuccess, r.Kind())

	v, err := r.Unwrap()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	called := false
	assert.Equal(t, 1, r.Or(func() Result[int] {
		called = true
		return OfSuccess(2)
	}).Get())
	assert.False(t, called, "supplier must not run on success")

	assert.Equal(t, 1, r.OrElse(2))
	assert.Equal(t, 1, r.OrElseGet(func() int {
		called = true
		return 2
	}))
	assert.False(t, called)

	require.NotNil(t, r.OrNil())
	assert.Equal(t, 1, *r.OrNil())
	assert.Equal(t, 1, r.OrZero())

	seen := 0
	r.IfSuccess(func(v int) { seen = v })
	assert.Equal(t, 1, seen)
	r.IfFailure(func(error) { t.Fatal("should not happen") })

	assert.Equal(t, Option[int]{Kind: KindSuccess, Value: 1}, r.ToOption())
}

func TestFailure_Operations(t *testing.T) {
	t.Parallel()

	failure := errors.New("test error")
	r := OfFailure[int](failure)
	assert.True(t, r.IsFailure())
	assert.False(t, r.IsSuccess())

	func() {
		defer func() {
			rec := recover()
			assert.Same(t, failure, rec)
		}()
		r.Get()
	}()

	_, err := r.Unwrap()
	assert.Same(t, failure, err)

	assert.Equal(t, 2, r.Or(func() Result[int] { return OfSuccess(2) }).Get())
	assert.Equal(t, 5, r.OrElse(5))
	assert.Equal(t, 2, r.OrElseGet(func() int { return 2 }))
	assert.Nil(t, r.OrNil())
	assert.Equal(t, 0, r.OrZero())

	r.IfSuccess(func(int) { t.Fatal("should not happen") })
	var got error
	r.IfFailure(func(err error) { got = err })
	assert.Same(t, failure, got)

	assert.Equal(t, Option[int]{Kind: KindFailure, Err: failure}, r.ToOption())
}

func TestCancel(t *testing.T) {
	t.Parallel()

	plain := Fail[int](errors.New("plain"))
	assert.False(t, plain.IsCancel())

	cause := errors.New("stopped")
	c := Cancel[int](cause)
	assert.True(t, c.IsFailure())
	assert.True(t, c.IsCancel())
	assert.ErrorIs(t, c.Err(), cause)
	assert.ErrorIs(t, c.Err(), context.Canceled)

	deadline := Cancel[int](context.DeadlineExceeded)
	assert.Equal(t, context.DeadlineExceeded, deadline.Err())
	assert.True(t, Cancel[int](nil).IsCancel())
}

func TestFailFrom_KeepsIdentity(t *testing.T) {
	t.Parallel()

	failure := errors.New("boom")
	in := Fail[int](failure)
	out := FailFrom[int, string](in)

	assert.True(t, out.IsFailure())
	assert.Same(t, failure, out.Err())
	assert.Equal(t, in.Id(), out.Id())
	assert.Equal(t, in.CreatedAt(), out.CreatedAt())
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Success(3)", fmt.Sprint(Success(3)))
	assert.Equal(t, "Failure(x)", fmt.Sprint(Fail[int](errors.New("x"))))
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	a, b := errors.New("a"), errors.New("b")
	assert.Empty(t, GetErrors(nil))
	assert.Equal(t, []error{a}, GetErrors(a))
	assert.Equal(t, []error{a, b}, GetErrors(errors.Join(a, b)))
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var p *int
	var m map[string]int
	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(p))
	assert.True(t, IsNil(m))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
}
