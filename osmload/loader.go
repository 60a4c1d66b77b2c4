package osmload

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/zstd"
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
	"github.com/royalcat/rastermap/geograph"
	"golang.org/x/exp/mmap"
)

// Sink receives the parsed map. Cleanup is called exactly once, after every
// point, way and edge has been added.
type Sink interface {
	AddPoint(id int64, lat, lon float64, tags map[string]string) *geograph.Point
	AddEdge(a, b int64) error
	AddWay(w geograph.Way)
	AddLocation(name string, p *geograph.Point)
	AddWord(name string)
	Cleanup() []int64
}

type Stats struct {
	Nodes        int
	Ways         int
	ValidWays    int
	Edges        int
	SkippedEdges int
	NamedPoints  int
	Removed      int
}

type loader struct {
	sink     Sink
	highways map[string]struct{}
	log      *slog.Logger

	validWays [][]int64
	stats     Stats
}

// Load reads OSM data from r into sink and runs the cleanup pass. Broken
// references in the data are skipped, only read errors fail the load.
func Load(ctx context.Context, r io.Reader, format Format, sink Sink, opts ...Option) (Stats, error) {
	options := loadOptions(opts...)

	l := &loader{
		sink:     sink,
		highways: make(map[string]struct{}, len(options.highways)),
		log:      options.logger.With("component", "osmload"),
	}
	for _, h := range options.highways {
		l.highways[h] = struct{}{}
	}

	scanner, err := newScanner(ctx, r, format, options.threads)
	if err != nil {
		return Stats{}, err
	}
	defer scanner.Close()

	st := time.Now()
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Node:
			l.node(object)
		case *osm.Way:
			l.way(object)
		}
	}
	if err := scanner.Err(); err != nil {
		return l.stats, errors.Wrap(err, "Scanner error on map data")
	}
	l.log.Info("Scanned map data",
		"nodes", l.stats.Nodes,
		"ways", l.stats.Ways,
		"elapsed", time.Since(st),
	)

	l.connect()
	l.stats.Removed = len(sink.Cleanup())

	l.log.Info("Graph built",
		"edges", l.stats.Edges,
		"skipped_edges", l.stats.SkippedEdges,
		"named_points", l.stats.NamedPoints,
		"removed", l.stats.Removed,
	)
	return l.stats, nil
}

func (l *loader) node(n *osm.Node) {
	l.stats.Nodes++

	p := l.sink.AddPoint(int64(n.ID), n.Lat, n.Lon, n.Tags.Map())

	name := n.Tags.Find("name")
	if strings.TrimSpace(name) == "" {
		return
	}
	l.sink.AddLocation(name, p)
	l.sink.AddWord(name)
	l.stats.NamedPoints++
}

func (l *loader) way(w *osm.Way) {
	l.stats.Ways++

	nodes := make([]int64, 0, len(w.Nodes))
	for _, n := range w.Nodes {
		nodes = append(nodes, int64(n.ID))
	}
	_, valid := l.highways[w.Tags.Find("highway")]

	l.sink.AddWay(geograph.Way{
		ID:    int64(w.ID),
		Tags:  w.Tags.Map(),
		Valid: valid,
		Nodes: nodes,
	})
	if valid {
		l.stats.ValidWays++
		l.validWays = append(l.validWays, nodes)
	}
}

// connect runs after the scan so ways may reference nodes in any order.
func (l *loader) connect() {
	for _, nodes := range l.validWays {
		for i := 1; i < len(nodes); i++ {
			if err := l.sink.AddEdge(nodes[i-1], nodes[i]); err != nil {
				l.stats.SkippedEdges++
				l.log.Debug("Skipping edge", "error", err)
				continue
			}
			l.stats.Edges++
		}
	}
	l.validWays = nil

	if l.stats.SkippedEdges > 0 {
		l.log.Warn("Ways reference unknown nodes", "skipped_edges", l.stats.SkippedEdges)
	}
}

// LoadFile opens name, picking the decoder from its extension. Plain files
// are memory mapped, ".zst" files are streamed through a zstd decoder.
func LoadFile(ctx context.Context, name string, sink Sink, opts ...Option) (Stats, error) {
	options := loadOptions(opts...)
	log := options.logger.With("file", name)

	format, compressed, err := DetectFormat(name)
	if err != nil {
		return Stats{}, err
	}

	var (
		r    io.Reader
		size int64
	)
	if compressed {
		file, err := os.Open(name)
		if err != nil {
			return Stats{}, errors.Wrap(err, "File open")
		}
		defer file.Close()
		stat, err := file.Stat()
		if err != nil {
			return Stats{}, errors.Wrap(err, "File stat")
		}
		size = stat.Size()
		r = file
	} else {
		m, err := mmap.Open(name)
		if err != nil {
			return Stats{}, errors.Wrap(err, "File mmap")
		}
		defer m.Close()
		size = int64(m.Len())
		r = io.NewSectionReader(m, 0, size)
	}

	if options.progress {
		var finish func()
		r, finish = progressReader(r, size, "reading "+format.String()+" map")
		defer finish()
	}

	if compressed {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return Stats{}, errors.Wrap(err, "Can't create zstd reader")
		}
		defer dec.Close()
		r = dec
	}

	log.Info("Loading map", "format", format, "compressed", compressed, "size", humanize.Bytes(uint64(size)))
	return Load(ctx, r, format, sink, opts...)
}
