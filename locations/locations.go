package locations

import (
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/royalcat/rastermap/geograph"
)

// Location is a search result for a named point.
type Location struct {
	Lat  float64
	Lon  float64
	Name string
	ID   int64
}

// Index maps exact location names to the points registered under them.
type Index struct {
	m *xsync.MapOf[string, []*geograph.Point]
}

func New() *Index {
	return &Index{
		m: xsync.NewMapOf[string, []*geograph.Point](),
	}
}

// AddLocation registers p under name. The latest point comes first on lookup.
func (idx *Index) AddLocation(name string, p *geograph.Point) {
	if p == nil {
		return
	}
	idx.m.Compute(name, func(old []*geograph.Point, _ bool) ([]*geograph.Point, bool) {
		points := make([]*geograph.Point, 0, len(old)+1)
		points = append(points, p)
		points = append(points, old...)
		return points, false
	})
}

// LookupByName returns every point registered under name, most recent first.
// The returned Name is the point's own name tag.
func (idx *Index) LookupByName(name string) []Location {
	points, ok := idx.m.Load(name)
	if !ok {
		return []Location{}
	}

	result := make([]Location, 0, len(points))
	for _, p := range points {
		result = append(result, Location{
			Lat:  p.Lat,
			Lon:  p.Lon,
			Name: p.Name(),
			ID:   p.ID,
		})
	}
	return result
}

func (idx *Index) Len() int {
	return idx.m.Size()
}
