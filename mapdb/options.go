package mapdb

import (
	"log/slog"

	"github.com/royalcat/rastermap/osmload"
	"github.com/royalcat/rastermap/raster"
)

type options struct {
	logger *slog.Logger
	raster raster.Config
	load   []osmload.Option
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

// Default: raster.ConfigDefault()
func WithRaster(cfg raster.Config) Option {
	return optionFunc(func(o *options) {
		o.raster = cfg
	})
}

// WithLoadOptions passes options through to the map loader.
func WithLoadOptions(opts ...osmload.Option) Option {
	return optionFunc(func(o *options) {
		o.load = append(o.load, opts...)
	})
}

func loadOptions(opts ...Option) options {
	options := options{
		logger: slog.Default(),
		raster: raster.ConfigDefault(),
	}
	for _, o := range opts {
		o.apply(&options)
	}
	return options
}
