package rop

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Option is the plain-data form of a Result. Value is set for a success,
// Err for a failure. Its JSON form is {"kind": ..., "value": ...}.
type Option[T any] struct {
	Kind  Kind
	Value T
	Err   error
}

func SuccessOption[T any](value T) Option[T] {
	return Option[T]{Kind: KindSuccess, Value: value}
}

func FailureOption[T any](err error) Option[T] {
	return Option[T]{Kind: KindFailure, Err: err}
}

// FromOption turns an Option back into a Result. A record with an unknown
// kind yields ErrNotAnOption.
func FromOption[T any](option Option[T]) (Result[T], error) {
	switch option.Kind {
	case KindSuccess:
		return OfSuccess(option.Value), nil
	case KindFailure:
		return OfFailure[T](option.Err), nil
	default:
		return Result[T]{}, fmt.Errorf("%w: kind %q", ErrNotAnOption, option.Kind)
	}
}

type errorRecord struct {
	Message string `json:"message"`
}

type optionRecord[V any] struct {
	Kind  Kind `json:"kind"`
	Value V    `json:"value"`
}

func (o Option[T]) MarshalJSON() ([]byte, error) {
	switch o.Kind {
	case KindSuccess:
		return json.Marshal(optionRecord[T]{Kind: o.Kind, Value: o.Value})
	case KindFailure:
		msg := ""
		if !IsNil(o.Err) {
			msg = o.Err.Error()
		}
		return json.Marshal(optionRecord[errorRecord]{Kind: o.Kind, Value: errorRecord{Message: msg}})
	default:
		return nil, fmt.Errorf("%w: kind %q", ErrNotAnOption, o.Kind)
	}
}

// UnmarshalJSON accepts a failure value either as {"message": "..."} or as
// a bare string. Unknown kinds are kept so that FromOption rejects them.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	var raw optionRecord[json.RawMessage]
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*o = Option[T]{Kind: raw.Kind}

	switch raw.Kind {
	case KindSuccess:
		if len(raw.Value) == 0 {
			return nil
		}
		return json.Unmarshal(raw.Value, &o.Value)
	case KindFailure:
		msg, err := decodeErrorMessage(raw.Value)
		if err != nil {
			return err
		}
		o.Err = errors.New(msg)
	}
	return nil
}

func decodeErrorMessage(data json.RawMessage) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	var msg string
	if err := json.Unmarshal(data, &msg); err == nil {
		return msg, nil
	}

	var rec errorRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return "", fmt.Errorf("failure value: %w", err)
	}
	return rec.Message, nil
}
