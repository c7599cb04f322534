// Package solo contains single-value, synchronous railway primitives over
// rop.Result[T]. Unlike rop.Map and rop.FlatMap they never panic: a failure
// travels down the failure track with its original error.
//
// Highlights:
// - Succeed/Fail/Cancel/Wrap: construct Result[T]
// - Validate/AndValidate/ValidateAll: apply validation producing failure on invalid input
// - Switch: move from Result[In] to Result[Out]
// - Map/DoubleMap: transform successful values (with optional error/cancel handlers)
// - Try: call a function (Out, error) and convert error to failure
// - Recover: replace a failure with a fallback result
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error/cancel handlers
package solo
