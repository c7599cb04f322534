package rop

import (
	"context"
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNotAnOption is returned by FromOption for a record whose kind is
	// neither "success" nor "failure".
	ErrNotAnOption = errors.New("the passed value was not an Option type")
	// ErrNilError stands in for a nil error handed to Fail.
	ErrNilError = errors.New("failure without an error")
	// ErrEmptyResult is the error of the zero Result.
	ErrEmptyResult = errors.New("empty result")
)

// PanicError captures a panic whose value was not an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// IsNil reports whether i is nil or a nil pointer, map, slice, chan or func
// stored in an interface.
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// GetErrors flattens an errors.Join tree one level deep.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	if e, ok := err.(interface{ Unwrap() []error }); ok {
		return e.Unwrap()
	}

	return []error{err}
}

// IsCancellationError reports whether err stems from context cancellation or a deadline.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
