package objscene

import "runtime"

// Option configures an Importer or Exporter's worker-pool sizing.
type Option func(*config)

type config struct {
	workers int
}

func defaultConfig() config {
	return config{workers: runtime.NumCPU()}
}

// WithConcurrency caps the number of pond workers used for line
// tokenization, group indexing, and export table collection. Values <= 0
// are ignored, leaving the default (runtime.NumCPU()) in place — this
// matters for callers embedding the library inside a larger service that
// already manages its own worker budget.
func WithConcurrency(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}
