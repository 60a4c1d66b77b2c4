package raster_test

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/royalcat/rastermap/raster"
)

func newRasterer(t testing.TB) *raster.Rasterer {
	t.Helper()
	r, err := raster.New(raster.ConfigDefault())
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestRootQuery(t *testing.T) {
	r := newRasterer(t)
	cfg := raster.ConfigDefault()

	res := r.ComputeRaster(cfg.Root, cfg.TileSize)
	if !res.Success {
		t.Fatal("expected success")
	}
	if res.Depth != 0 {
		t.Fatalf("expected depth 0, got %d", res.Depth)
	}
	if len(res.Grid) != 1 || !slices.Equal(res.Grid[0], []string{"d0_x0_y0.png"}) {
		t.Fatalf("expected single root tile, got %v", res.Grid)
	}
	got := raster.Box{ULLon: res.ULLon, ULLat: res.ULLat, LRLon: res.LRLon, LRLat: res.LRLat}
	if got != cfg.Root {
		t.Fatalf("expected root box %+v, got %+v", cfg.Root, got)
	}
}

func TestInvalidQueries(t *testing.T) {
	r := newRasterer(t)
	root := raster.ConfigDefault().Root

	tests := []struct {
		name  string
		box   raster.Box
		width float64
	}{
		{"inverted lon", raster.Box{ULLon: root.LRLon, ULLat: root.ULLat, LRLon: root.ULLon, LRLat: root.LRLat}, 256},
		{"inverted lat", raster.Box{ULLon: root.ULLon, ULLat: root.LRLat, LRLon: root.LRLon, LRLat: root.ULLat}, 256},
		{"west of root", raster.Box{ULLon: -123, ULLat: root.ULLat, LRLon: -122.9, LRLat: root.LRLat}, 256},
		{"north of root", raster.Box{ULLon: root.ULLon, ULLat: 39, LRLon: root.LRLon, LRLat: 38.5}, 256},
		{"zero width viewport", root, 0},
		{"negative width viewport", root, -10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := r.ComputeRaster(tc.box, tc.width)
			if res.Success {
				t.Fatalf("expected failure, got %+v", res)
			}
			if res.Grid != nil {
				t.Fatalf("expected no grid, got %v", res.Grid)
			}
		})
	}
}

func TestHalfRoot(t *testing.T) {
	r := newRasterer(t)
	root := raster.ConfigDefault().Root
	mid := root.ULLon + (root.LRLon-root.ULLon)/2

	res := r.ComputeRaster(raster.Box{ULLon: root.ULLon, ULLat: root.ULLat, LRLon: mid, LRLat: root.LRLat}, 256)
	if !res.Success {
		t.Fatal("expected success")
	}
	if res.Depth != 1 {
		t.Fatalf("expected depth 1, got %d", res.Depth)
	}
	expected := [][]string{{"d1_x0_y0.png"}, {"d1_x0_y1.png"}}
	if !slices.EqualFunc(res.Grid, expected, slices.Equal) {
		t.Fatalf("expected %v, got %v", expected, res.Grid)
	}
	if res.ULLon != root.ULLon || res.LRLon != mid {
		t.Fatalf("expected lon range [%v, %v], got [%v, %v]", root.ULLon, mid, res.ULLon, res.LRLon)
	}
}

func TestMaxDepth(t *testing.T) {
	r := newRasterer(t)
	box := raster.Box{ULLon: -122.25, ULLat: 37.87, LRLon: -122.2499, LRLat: 37.8699}

	res := r.ComputeRaster(box, 2000)
	if !res.Success {
		t.Fatal("expected success")
	}
	if res.Depth != 7 {
		t.Fatalf("expected depth clamped to 7, got %d", res.Depth)
	}

	// zero-width box must terminate as well
	res = r.ComputeRaster(raster.Box{ULLon: -122.25, ULLat: 37.87, LRLon: -122.25, LRLat: 37.87}, 100)
	if !res.Success || res.Depth != 7 {
		t.Fatalf("expected depth 7 success, got %+v", res)
	}
	if len(res.Grid) != 1 || len(res.Grid[0]) != 1 {
		t.Fatalf("expected single tile, got %v", res.Grid)
	}
}

func TestQueryBeyondRoot(t *testing.T) {
	r := newRasterer(t)
	root := raster.ConfigDefault().Root

	box := raster.Box{ULLon: root.ULLon - 1, ULLat: root.ULLat + 1, LRLon: root.LRLon + 1, LRLat: root.LRLat - 1}
	res := r.ComputeRaster(box, 256)
	if !res.Success {
		t.Fatal("expected success")
	}
	got := raster.Box{ULLon: res.ULLon, ULLat: res.ULLat, LRLon: res.LRLon, LRLat: res.LRLat}
	if got != root {
		t.Fatalf("expected snapped box clamped to root %+v, got %+v", root, got)
	}
}

func TestRandomQueries(t *testing.T) {
	r := newRasterer(t)
	root := raster.ConfigDefault().Root
	rnd := rand.New(rand.NewPCG(1, 2))

	spanLon := root.LRLon - root.ULLon
	spanLat := root.ULLat - root.LRLat

	for range 2000 {
		ullon := root.ULLon + rnd.Float64()*spanLon
		lrlon := ullon + rnd.Float64()*(root.LRLon-ullon)
		ullat := root.LRLat + rnd.Float64()*spanLat
		lrlat := ullat - rnd.Float64()*(ullat-root.LRLat)
		width := 100 + rnd.Float64()*1500
		box := raster.Box{ULLon: ullon, ULLat: ullat, LRLon: lrlon, LRLat: lrlat}

		res := r.ComputeRaster(box, width)
		if !res.Success {
			t.Fatalf("expected success for %+v", box)
		}

		if res.ULLon > box.ULLon || res.LRLon < box.LRLon || res.ULLat < box.ULLat || res.LRLat > box.LRLat {
			t.Fatalf("snapped box %+v does not cover query %+v", res, box)
		}
		if res.ULLon < root.ULLon || res.LRLon > root.LRLon || res.ULLat > root.ULLat || res.LRLat < root.LRLat {
			t.Fatalf("snapped box %+v exceeds root", res)
		}

		if len(res.Grid) != res.MaxY-res.MinY+1 {
			t.Fatalf("expected %d rows, got %d", res.MaxY-res.MinY+1, len(res.Grid))
		}
		for y, row := range res.Grid {
			if len(row) != res.MaxX-res.MinX+1 {
				t.Fatalf("expected %d columns, got %d", res.MaxX-res.MinX+1, len(row))
			}
			for x, name := range row {
				expected := fmt.Sprintf("d%d_x%d_y%d.png", res.Depth, res.MinX+x, res.MinY+y)
				if name != expected {
					t.Fatalf("expected %s, got %s", expected, name)
				}
			}
		}

		// the chosen depth is the shallowest one fine enough, unless clamped
		queryLonDPP := (box.LRLon - box.ULLon) / width
		tileLonDPP := spanLon / 256 / float64(int(1)<<res.Depth)
		if res.Depth < 7 && tileLonDPP > queryLonDPP {
			t.Fatalf("depth %d too coarse: %v > %v", res.Depth, tileLonDPP, queryLonDPP)
		}
		if res.Depth > 0 && tileLonDPP*2 <= queryLonDPP {
			t.Fatalf("depth %d deeper than needed", res.Depth)
		}
	}
}

func TestNewInvalidConfig(t *testing.T) {
	cfg := raster.ConfigDefault()
	cfg.TileSize = 0
	if _, err := raster.New(cfg); err == nil {
		t.Fatal("expected error for zero tile size")
	}

	cfg = raster.ConfigDefault()
	cfg.Root.ULLon, cfg.Root.LRLon = cfg.Root.LRLon, cfg.Root.ULLon
	if _, err := raster.New(cfg); err == nil {
		t.Fatal("expected error for inverted root")
	}
}

func FuzzComputeRaster(f *testing.F) {
	root := raster.ConfigDefault().Root
	f.Add(root.ULLon, root.ULLat, root.LRLon, root.LRLat, 256.0)
	f.Add(-122.25, 37.87, -122.24, 37.86, 800.0)
	f.Add(-122.0, 37.87, -123.0, 37.86, 800.0)

	r, err := raster.New(raster.ConfigDefault())
	if err != nil {
		f.Fatal(err)
	}

	f.Fuzz(func(t *testing.T, ullon, ullat, lrlon, lrlat, width float64) {
		res := r.ComputeRaster(raster.Box{ULLon: ullon, ULLat: ullat, LRLon: lrlon, LRLat: lrlat}, width)
		if !res.Success {
			return
		}
		if res.Depth < 0 || res.Depth > 7 {
			t.Fatalf("depth out of range: %d", res.Depth)
		}
		n := 1 << res.Depth
		if res.MinX < 0 || res.MaxX >= n || res.MinY < 0 || res.MaxY >= n {
			t.Fatalf("tile range out of bounds: %+v", res)
		}
		if len(res.Grid) == 0 || len(res.Grid[0]) == 0 {
			t.Fatalf("empty grid on success")
		}
	})
}

func BenchmarkComputeRaster(b *testing.B) {
	r := newRasterer(b)
	box := raster.Box{ULLon: -122.27, ULLat: 37.88, LRLon: -122.23, LRLat: 37.84}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.ComputeRaster(box, 1024)
	}
}
