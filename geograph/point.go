package geograph

import (
	"maps"

	"github.com/paulmach/orb"
)

// Point is a graph vertex. Coordinates and tags are fixed once ingestion
// finishes, only the neighbor set is touched by the graph during the build.
type Point struct {
	ID   int64
	Lat  float64
	Lon  float64
	Tags map[string]string

	neighbors set[int64]
}

func newPoint(id int64, lat, lon float64, tags map[string]string) *Point {
	if tags == nil {
		tags = map[string]string{}
	}
	return &Point{
		ID:        id,
		Lat:       lat,
		Lon:       lon,
		Tags:      tags,
		neighbors: newSet[int64](),
	}
}

// Coord returns the point as lon/lat pair.
func (p *Point) Coord() orb.Point {
	return orb.Point{p.Lon, p.Lat}
}

// Name returns the "name" tag or empty string.
func (p *Point) Name() string {
	return p.Tags["name"]
}

func (p *Point) Degree() int {
	return p.neighbors.Len()
}

func (p *Point) clone() Point {
	return Point{
		ID:        p.ID,
		Lat:       p.Lat,
		Lon:       p.Lon,
		Tags:      maps.Clone(p.Tags),
		neighbors: p.neighbors.Clone(),
	}
}

// Way is a road as described by the source data. It is kept for reference
// only, edges are derived from it at ingestion time.
type Way struct {
	ID    int64
	Tags  map[string]string
	Valid bool
	Nodes []int64
}
