package osmload

import (
	"log/slog"
	"runtime"
)

// DefaultHighways lists the highway tag values whose ways become graph edges.
var DefaultHighways = []string{
	"motorway", "trunk", "primary", "secondary", "tertiary", "unclassified",
	"residential", "living_street", "motorway_link", "trunk_link", "primary_link",
	"secondary_link", "tertiary_link",
}

type options struct {
	logger   *slog.Logger
	highways []string
	threads  int
	progress bool
}

type Option interface {
	apply(*options)
}

type optionFunc func(*options)

func (f optionFunc) apply(o *options) {
	f(o)
}

// Default: slog.Default()
func WithLogger(logger *slog.Logger) Option {
	return optionFunc(func(o *options) {
		o.logger = logger
	})
}

// Default: DefaultHighways
func WithHighways(highways []string) Option {
	return optionFunc(func(o *options) {
		o.highways = highways
	})
}

// WithThreads sets the number of PBF block decoders. Default: GOMAXPROCS
func WithThreads(threads int) Option {
	return optionFunc(func(o *options) {
		if threads > 0 {
			o.threads = threads
		}
	})
}

// WithProgress shows a progress bar while reading a file. Default: false
func WithProgress(progress bool) Option {
	return optionFunc(func(o *options) {
		o.progress = progress
	})
}

func loadOptions(opts ...Option) options {
	options := options{
		logger:   slog.Default(),
		highways: DefaultHighways,
		threads:  runtime.GOMAXPROCS(0),
	}
	for _, o := range opts {
		o.apply(&options)
	}
	return options
}
