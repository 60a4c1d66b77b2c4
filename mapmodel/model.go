package mapmodel

//go:generate go tool easyjson model.go

import (
	"github.com/royalcat/rastermap/locations"
	"github.com/royalcat/rastermap/raster"
)

//easyjson:json
type Location struct {
	ID   int64   `json:"id"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Name string  `json:"name"`
}

//easyjson:json
type LocationList []Location

func FromLocations(locs []locations.Location) LocationList {
	out := make(LocationList, 0, len(locs))
	for _, l := range locs {
		out = append(out, Location{
			ID:   l.ID,
			Lat:  l.Lat,
			Lon:  l.Lon,
			Name: l.Name,
		})
	}
	return out
}

//easyjson:json
type Raster struct {
	Grid    [][]string `json:"render_grid"`
	ULLon   float64    `json:"raster_ul_lon"`
	ULLat   float64    `json:"raster_ul_lat"`
	LRLon   float64    `json:"raster_lr_lon"`
	LRLat   float64    `json:"raster_lr_lat"`
	Depth   int        `json:"depth"`
	Success bool       `json:"query_success"`
}

// FromRaster converts a raster result. A failed query keeps only Success.
func FromRaster(res raster.Result) Raster {
	if !res.Success {
		return Raster{Grid: [][]string{}}
	}
	return Raster{
		Grid:    res.Grid,
		ULLon:   res.ULLon,
		ULLat:   res.ULLat,
		LRLon:   res.LRLon,
		LRLat:   res.LRLat,
		Depth:   res.Depth,
		Success: true,
	}
}

//easyjson:json
type Vertex struct {
	ID  int64   `json:"id"`
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

//easyjson:json
type VertexList []Vertex

//easyjson:json
type Distance struct {
	Miles   float64 `json:"miles"`
	Bearing float64 `json:"bearing"`
}

//easyjson:json
type IDList []int64

//easyjson:json
type Names []string
