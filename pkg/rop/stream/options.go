package stream

import "context"

type optionKey string

const workerOptionKey optionKey = "worker_options"

type WorkerOptions struct {
	MaxCount int
}

// WithWorkers sets how many worker lines Run starts for stages run with ctx.
func WithWorkers(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, workerOptionKey, WorkerOptions{MaxCount: maxWorkers})
}

// Workers returns the worker count set by WithWorkers, or defaultMaxWorkers.
// Counts below one are raised to one.
func Workers(ctx context.Context, defaultMaxWorkers int) int {
	n := defaultMaxWorkers
	if options, ok := ctx.Value(workerOptionKey).(WorkerOptions); ok {
		n = options.MaxCount
	}
	return max(n, 1)
}
