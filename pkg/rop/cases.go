package rop

// Cases is a pair of handlers, one per branch of a Result.
type Cases[T, U any] struct {
	Success func(value T) U
	Failure func(err error) U
}

// Matches calls the handler for r's branch and returns what it returns.
func Matches[T, U any](r Result[T], cases Cases[T, U]) U {
	if r.IsSuccess() {
		return cases.Success(r.result)
	}
	return cases.Failure(r.Err())
}

// IfSuccessOrFailure calls the handler for r's branch and drops its result.
func IfSuccessOrFailure[T, U any](r Result[T], cases Cases[T, U]) {
	_ = Matches(r, cases)
}
