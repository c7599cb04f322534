// Package rop defines Result[T], a value that is either a successful payload
// or the error that prevented it.
//
// Highlights:
// - Success/Fail/Of: construct a Result; Of classifies an error value as failure
// - Wrap/WrapErr/WrapAsync/Await: capture panics and returned errors as failures
// - Get/Unwrap/Or/OrElse/OrElseGet/OrNil/OrZero: extract or default the payload
// - IfSuccess/IfFailure/IfSuccessOrFailure/Matches: branch on the variant
// - Map/FlatMap: transform a success; both panic with the stored error on failure
// - ToOption/FromOption: convert to and from the plain {kind, value} record
//
// Get, Map and FlatMap re-raise the original error through panic, so
// errors.Is and identity comparisons keep working after recover. The solo
// package offers the non-panicking railway equivalents.
package rop
