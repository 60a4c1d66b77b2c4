package geograph

import "log/slog"

type options struct {
	logger *slog.Logger
}

type Option interface {
	apply(*options)
}

type loggerOption struct {
	logger *slog.Logger
}

func (o loggerOption) apply(opts *options) {
	opts.logger = o.logger
}

// Default: slog.Default()
func WithLogger(logger *slog.Logger) Option {
	return loggerOption{logger: logger}
}

func loadOptions(opts ...Option) options {
	options := options{
		logger: slog.Default(),
	}
	for _, o := range opts {
		o.apply(&options)
	}
	return options
}
