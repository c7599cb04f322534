// Package stream adapts sequences of plain values into channels of
// rop.Result[T]. An error that would end the source sequence is delivered as
// one last failure, after which the output channel closes normally.
//
// Common usage:
// - FromChan: values channel plus terminal error channel -> results
// - FromSeq/FromValues: iter.Seq2[T, error] or a value list -> results
// - Run: apply a Result-to-Result stage with WithWorkers(ctx, n) worker lines
// - Collect/Partition: drain a result channel
//
// Functions stop and close their output when ctx is done.
package stream
