package suite

// Config defines how each benchmark is run.
type Config struct {
	Iterations int
	Warmup     int

	// OnIteration, if set, is called after every timed iteration.
	OnIteration func(name string, iteration int)
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a single timed run with no warmup.
func DefaultConfig() Config {
	return Config{
		Iterations: 1,
		Warmup:     0,
	}
}

// WithIterations sets the number of timed runs per benchmark.
func WithIterations(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Iterations = n
		}
	}
}

// WithWarmup sets the number of untimed runs before timing starts.
func WithWarmup(n int) Option {
	return func(cfg *Config) {
		if n >= 0 {
			cfg.Warmup = n
		}
	}
}

// WithIterationHook registers a callback invoked after each timed run.
func WithIterationHook(fn func(name string, iteration int)) Option {
	return func(cfg *Config) {
		cfg.OnIteration = fn
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
