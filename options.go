package godmap

type options struct {
	logger      *Logger
	concurrency int
	zstdLevel   int
}

// Option configures the file-level read/write helpers.
type Option func(*options)

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithConcurrency sets the number of files decoded in parallel by ReadFiles
// and ReadDir. Each file gets its own buffer and cursor, so parallelism
// needs no synchronization. Default 4.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithZstdLevel sets the zstd compression level (1-22) used when writing
// .zst paths. Default 3.
func WithZstdLevel(level int) Option {
	return func(o *options) {
		o.zstdLevel = level
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:      NoopLogger(),
		concurrency: 4,
		zstdLevel:   3, // zstd default level
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
