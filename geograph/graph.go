package geograph

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"sync"

	"github.com/paulmach/orb"
)

var (
	ErrNotFound          = errors.New("point not found")
	ErrEmptyGraph        = errors.New("graph has no live vertices")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
)

// Graph stores intersections as vertices and road segments as undirected
// edges. It is filled once by an ingestion pass, cleaned, and queried
// read-only afterwards.
type Graph struct {
	mu sync.RWMutex

	points map[int64]*Point
	live   set[int64]
	ways   map[int64]Way

	log *slog.Logger
}

func New(opts ...Option) *Graph {
	options := loadOptions(opts...)
	return &Graph{
		points: map[int64]*Point{},
		live:   newSet[int64](),
		ways:   map[int64]Way{},
		log:    options.logger.With("component", "geograph"),
	}
}

// AddPoint inserts or replaces the point with the given id and marks it live.
// A replaced point keeps its edges.
func (g *Graph) AddPoint(id int64, lat, lon float64, tags map[string]string) *Point {
	p := newPoint(id, lat, lon, tags)

	g.mu.Lock()
	defer g.mu.Unlock()

	if old, ok := g.points[id]; ok {
		p.neighbors = old.neighbors
	}
	g.points[id] = p
	g.live.Add(id)
	return p
}

// AddEdge connects a and b in both directions. Repeated calls are no-ops.
func (g *Graph) AddEdge(a, b int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	pa, ok := g.points[a]
	if !ok {
		return fmt.Errorf("edge %d-%d: %w: %d", a, b, ErrNotFound, a)
	}
	pb, ok := g.points[b]
	if !ok {
		return fmt.Errorf("edge %d-%d: %w: %d", a, b, ErrNotFound, b)
	}
	if a == b {
		return nil
	}

	pa.neighbors.Add(b)
	pb.neighbors.Add(a)
	return nil
}

func (g *Graph) AddWay(w Way) {
	if w.Tags == nil {
		w.Tags = map[string]string{}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ways[w.ID] = w
}

// Cleanup removes every live point without neighbors and returns the removed
// ids in ascending order. It must run once, after all points and edges are in.
func (g *Graph) Cleanup() []int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	removed := []int64{}
	for _, id := range g.live.Slice() {
		p, ok := g.points[id]
		if ok && p.Degree() > 0 {
			continue
		}
		delete(g.points, id)
		g.live.Remove(id)
		removed = append(removed, id)
	}
	slices.Sort(removed)

	g.log.Info("Removed isolated points", "removed", len(removed), "remaining", g.live.Len())
	return removed
}

// LiveVertices returns a snapshot of live point ids in no particular order.
func (g *Graph) LiveVertices() []int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.live.Slice()
}

func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.live.Len()
}

// Point returns a copy of the stored point.
func (g *Graph) Point(id int64) (Point, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	p, ok := g.points[id]
	if !ok {
		return Point{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return p.clone(), nil
}

func (g *Graph) Way(id int64) (Way, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.ways[id]
	return w, ok
}

func (g *Graph) WayCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.ways)
}

// Adjacent returns the neighbor ids of v.
func (g *Graph) Adjacent(v int64) ([]int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	p, ok := g.points[v]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, v)
	}
	return p.neighbors.Slice(), nil
}

// Distance returns the great-circle distance between v and w in miles.
func (g *Graph) Distance(v, w int64) (float64, error) {
	a, b, err := g.pair(v, w)
	if err != nil {
		return 0, err
	}
	return DistanceMiles(a, b), nil
}

// Bearing returns the initial bearing from v to w in degrees.
func (g *Graph) Bearing(v, w int64) (float64, error) {
	a, b, err := g.pair(v, w)
	if err != nil {
		return 0, err
	}
	return InitialBearing(a, b), nil
}

func (g *Graph) pair(v, w int64) (orb.Point, orb.Point, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	pv, ok := g.points[v]
	if !ok {
		return orb.Point{}, orb.Point{}, fmt.Errorf("%w: %d", ErrNotFound, v)
	}
	pw, ok := g.points[w]
	if !ok {
		return orb.Point{}, orb.Point{}, fmt.Errorf("%w: %d", ErrNotFound, w)
	}
	return pv.Coord(), pw.Coord(), nil
}

// Closest returns the live point nearest to (lon, lat). Equal distances
// resolve to the smaller id.
func (g *Graph) Closest(lon, lat float64) (int64, error) {
	if math.IsNaN(lon) || math.IsNaN(lat) || math.IsInf(lon, 0) || math.IsInf(lat, 0) {
		return 0, fmt.Errorf("%w: lon=%v lat=%v", ErrInvalidCoordinate, lon, lat)
	}
	target := orb.Point{lon, lat}

	g.mu.RLock()
	defer g.mu.RUnlock()

	var (
		bestID   int64
		bestDist = math.Inf(1)
		found    bool
	)
	for id := range g.live.items {
		p, ok := g.points[id]
		if !ok {
			continue
		}
		d := DistanceMiles(target, p.Coord())
		if !found || d < bestDist || (d == bestDist && id < bestID) {
			bestID, bestDist, found = id, d, true
		}
	}

	if !found {
		return 0, ErrEmptyGraph
	}
	return bestID, nil
}

func (g *Graph) Lon(v int64) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	p, ok := g.points[v]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrNotFound, v)
	}
	return p.Lon, nil
}

func (g *Graph) Lat(v int64) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	p, ok := g.points[v]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrNotFound, v)
	}
	return p.Lat, nil
}
