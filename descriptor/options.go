package descriptor

import "golang.org/x/time/rate"

// Option is a functional option for configuring an Engine.
type Option func(*config)

type config struct {
	sparse      bool
	jobs        int
	mode        Mode
	rowsPerItem int
	verbose     bool
	progress    ProgressFunc
	rateLimiter *rate.Limiter
}

// WithSparse switches the engine to sparse accumulation: compute functions
// must return *matrix.COO blocks and Create returns a *matrix.CSR.
func WithSparse() Option {
	return func(cfg *config) {
		cfg.sparse = true
	}
}

// WithJobs sets the number of parallel workers. The batch is split into
// exactly this many contiguous chunks. Defaults to 1, which means fully
// serial execution.
func WithJobs(n int) Option {
	return func(cfg *config) {
		cfg.jobs = n
	}
}

// WithMode selects the execution strategy. Defaults to ModeShared.
func WithMode(m Mode) Option {
	return func(cfg *config) {
		cfg.mode = m
	}
}

// WithRowsPerItem declares that every item produces exactly n output rows.
// This lets the engine preallocate each chunk's dense output buffer up
// front instead of growing it incrementally, which is the preferred path
// whenever row counts are predictable. Zero (the default) means row counts
// are unknown.
func WithRowsPerItem(n int) Option {
	return func(cfg *config) {
		cfg.rowsPerItem = n
	}
}

// WithVerbose renders a progress bar over the whole batch while workers
// run. Purely observational.
func WithVerbose() Option {
	return func(cfg *config) {
		cfg.verbose = true
	}
}

// WithProgress installs a per-chunk progress callback, invoked at most once
// per whole percentage point of a chunk's completion.
func WithProgress(fn ProgressFunc) Option {
	return func(cfg *config) {
		cfg.progress = fn
	}
}

// WithRateLimit throttles compute-function invocations across all workers.
// perSecond is the sustained invocation rate, burst the maximum burst size.
// Useful when the compute function calls out to a shared service. If not
// specified, no rate limiting is applied.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(cfg *config) {
		if perSecond > 0 && burst > 0 {
			cfg.rateLimiter = rate.NewLimiter(rate.Limit(perSecond), burst)
		}
	}
}
