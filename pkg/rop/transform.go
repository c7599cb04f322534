package rop

// Map applies mapper to the payload and classifies its return value with
// Of. On a failure Map panics with the captured error; solo.Map is the
// variant that passes the failure through instead.
func Map[In, Out any](r Result[In], mapper func(value In) Out) Result[Out] {
	if r.IsFailure() {
		panic(r.Err())
	}
	return Of(mapper(r.result))
}

// FlatMap returns mapper's value as is. On a failure it panics with the
// captured error.
func FlatMap[In, Out any](r Result[In], mapper func(value In) Out) Out {
	if r.IsFailure() {
		panic(r.Err())
	}
	return mapper(r.result)
}
