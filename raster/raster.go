package raster

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Box is a geographic rectangle given by its upper-left and lower-right corners.
type Box struct {
	ULLon float64
	ULLat float64
	LRLon float64
	LRLat float64
}

func (b Box) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.ULLon, b.LRLat},
		Max: orb.Point{b.LRLon, b.ULLat},
	}
}

func (b Box) valid() bool {
	for _, v := range [...]float64{b.ULLon, b.ULLat, b.LRLon, b.LRLat} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return b.ULLon <= b.LRLon && b.ULLat >= b.LRLat
}

type Config struct {
	Root     Box
	TileSize float64
	MaxDepth int
}

func ConfigDefault() Config {
	return Config{
		Root: Box{
			ULLon: -122.2998046875,
			ULLat: 37.892195547244356,
			LRLon: -122.2119140625,
			LRLat: 37.82280243352756,
		},
		TileSize: 256,
		MaxDepth: 7,
	}
}

// Result describes the tiles selected for a query. Fields other than Success
// are meaningful only when Success is true.
type Result struct {
	Grid [][]string

	ULLon float64
	ULLat float64
	LRLon float64
	LRLat float64

	Depth int

	MinX, MaxX int
	MinY, MaxY int

	Success bool
}

// Rasterer picks pre-rendered tiles for a viewport. It holds no mutable
// state and is safe for concurrent use.
type Rasterer struct {
	cfg Config
}

func New(cfg Config) (*Rasterer, error) {
	if !cfg.Root.valid() || cfg.Root.ULLon == cfg.Root.LRLon || cfg.Root.ULLat == cfg.Root.LRLat {
		return nil, fmt.Errorf("invalid root box: %+v", cfg.Root)
	}
	if cfg.TileSize <= 0 {
		return nil, fmt.Errorf("invalid tile size: %v", cfg.TileSize)
	}
	if cfg.MaxDepth < 0 {
		return nil, fmt.Errorf("invalid max depth: %d", cfg.MaxDepth)
	}
	return &Rasterer{cfg: cfg}, nil
}

func (r *Rasterer) Config() Config {
	return r.cfg
}

func lonDPP(ullon, lrlon, width float64) float64 {
	return (lrlon - ullon) / width
}

// ComputeRaster selects the shallowest depth whose resolution is at least as
// fine as the query's, then every tile at that depth touching the query box.
func (r *Rasterer) ComputeRaster(query Box, width float64) Result {
	if !query.valid() || !(width > 0) {
		return Result{}
	}
	root := r.cfg.Root
	if !root.Bound().Intersects(query.Bound()) {
		return Result{}
	}

	queryLonDPP := lonDPP(query.ULLon, query.LRLon, width)
	depth := r.depth(queryLonDPP)

	n := 1 << depth
	tileWidth := (root.LRLon - root.ULLon) / float64(n)
	tileHeight := (root.ULLat - root.LRLat) / float64(n)

	minX := tileOffset(query.ULLon-root.ULLon, tileWidth, n)
	maxX := n - 1 - tileOffset(root.LRLon-query.LRLon, tileWidth, n)
	minY := tileOffset(root.ULLat-query.ULLat, tileHeight, n)
	maxY := n - 1 - tileOffset(query.LRLat-root.LRLat, tileHeight, n)

	// a query touching the root only along an edge still gets the edge tile
	maxX = max(maxX, minX)
	maxY = max(maxY, minY)

	grid := make([][]string, maxY-minY+1)
	for y := range grid {
		row := make([]string, maxX-minX+1)
		for x := range row {
			row[x] = TileName(depth, minX+x, minY+y)
		}
		grid[y] = row
	}

	return Result{
		Grid:    grid,
		ULLon:   snap(root.ULLon, root.LRLon, minX, n, tileWidth),
		ULLat:   snap(root.ULLat, root.LRLat, minY, n, -tileHeight),
		LRLon:   snap(root.ULLon, root.LRLon, maxX+1, n, tileWidth),
		LRLat:   snap(root.ULLat, root.LRLat, maxY+1, n, -tileHeight),
		Depth:   depth,
		MinX:    minX,
		MaxX:    maxX,
		MinY:    minY,
		MaxY:    maxY,
		Success: true,
	}
}

func (r *Rasterer) depth(queryLonDPP float64) int {
	depth := 0
	imgLonDPP := lonDPP(r.cfg.Root.ULLon, r.cfg.Root.LRLon, r.cfg.TileSize)
	for imgLonDPP > queryLonDPP && depth < r.cfg.MaxDepth {
		depth++
		imgLonDPP /= 2
	}
	return depth
}

// tileOffset returns how many whole tiles fit in dist, clamped to [0, n-1].
func tileOffset(dist, size float64, n int) int {
	offset := int(math.Floor(dist / size))
	return min(max(offset, 0), n-1)
}

// snap returns the coordinate of tile edge i counted from start, using the
// root edges as-is at both ends.
func snap(start, end float64, i, n int, step float64) float64 {
	switch i {
	case 0:
		return start
	case n:
		return end
	}
	return start + float64(i)*step
}

func TileName(depth, x, y int) string {
	return fmt.Sprintf("d%d_x%d_y%d.png", depth, x, y)
}
