// Package chain provides a fluent wrapper around Result[T]
// for building synchronous railway chains using solo primitives.
//
// Key operations:
// - Start/FromValue/Wrap: begin a chain from a Result[T], a value or a panicking call
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Ensure: run side effects on success without changing the result
// - OrElse: replace a failure with a fallback result
// - Finally: collapse the chain into a final value via handlers
package chain
