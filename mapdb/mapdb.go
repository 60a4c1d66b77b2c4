package mapdb

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/royalcat/rastermap/geograph"
	"github.com/royalcat/rastermap/locations"
	"github.com/royalcat/rastermap/osmload"
	"github.com/royalcat/rastermap/prefixtree"
	"github.com/royalcat/rastermap/raster"
)

// MapDB bundles the road graph, the two name indexes and the tile rasterer.
// It is filled through the osmload.Sink methods and read-only afterwards.
type MapDB struct {
	graph    *geograph.Graph
	prefixes *prefixtree.Tree
	names    *locations.Index
	rasterer *raster.Rasterer

	cleanup sync.Once
	log     *slog.Logger
}

var _ osmload.Sink = (*MapDB)(nil)

func New(opts ...Option) (*MapDB, error) {
	options := loadOptions(opts...)

	rasterer, err := raster.New(options.raster)
	if err != nil {
		return nil, err
	}

	return &MapDB{
		graph:    geograph.New(geograph.WithLogger(options.logger)),
		prefixes: prefixtree.New(),
		names:    locations.New(),
		rasterer: rasterer,
		log:      options.logger,
	}, nil
}

func LoadFromReader(ctx context.Context, r io.Reader, format osmload.Format, opts ...Option) (*MapDB, error) {
	db, err := New(opts...)
	if err != nil {
		return nil, err
	}
	options := loadOptions(opts...)

	stats, err := osmload.Load(ctx, r, format, db, append([]osmload.Option{osmload.WithLogger(options.logger)}, options.load...)...)
	if err != nil {
		return nil, fmt.Errorf("error loading map: %w", err)
	}
	db.logStats(stats)
	return db, nil
}

func LoadFromFile(ctx context.Context, file string, opts ...Option) (*MapDB, error) {
	db, err := New(opts...)
	if err != nil {
		return nil, err
	}
	options := loadOptions(opts...)

	stats, err := osmload.LoadFile(ctx, file, db, append([]osmload.Option{osmload.WithLogger(options.logger)}, options.load...)...)
	if err != nil {
		return nil, fmt.Errorf("error loading map file %s: %w", file, err)
	}
	db.logStats(stats)
	return db, nil
}

func (db *MapDB) logStats(stats osmload.Stats) {
	db.log.Info("Map loaded",
		"vertices", db.graph.Len(),
		"ways", db.graph.WayCount(),
		"names", db.names.Len(),
		"prefixes", db.prefixes.Len(),
		"removed", stats.Removed,
	)
}

func (db *MapDB) AddPoint(id int64, lat, lon float64, tags map[string]string) *geograph.Point {
	return db.graph.AddPoint(id, lat, lon, tags)
}

func (db *MapDB) AddEdge(a, b int64) error {
	return db.graph.AddEdge(a, b)
}

func (db *MapDB) AddWay(w geograph.Way) {
	db.graph.AddWay(w)
}

func (db *MapDB) AddLocation(name string, p *geograph.Point) {
	db.names.AddLocation(name, p)
}

func (db *MapDB) AddWord(name string) {
	db.prefixes.AddWord(name)
}

// Cleanup removes isolated points. Only the first call has an effect.
func (db *MapDB) Cleanup() []int64 {
	var removed []int64
	db.cleanup.Do(func() {
		removed = db.graph.Cleanup()
	})
	return removed
}

func (db *MapDB) Graph() *geograph.Graph {
	return db.graph
}

func (db *MapDB) Rasterer() *raster.Rasterer {
	return db.rasterer
}

func (db *MapDB) Closest(lon, lat float64) (int64, error) {
	return db.graph.Closest(lon, lat)
}

func (db *MapDB) Raster(box raster.Box, width float64) raster.Result {
	return db.rasterer.ComputeRaster(box, width)
}

func (db *MapDB) LookupByName(name string) []locations.Location {
	return db.names.LookupByName(name)
}

func (db *MapDB) LookupByPrefix(prefix string) []string {
	return db.prefixes.LookupByPrefix(prefix)
}
