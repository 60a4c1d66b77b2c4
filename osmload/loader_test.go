package osmload_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/royalcat/rastermap/geograph"
	"github.com/royalcat/rastermap/locations"
	"github.com/royalcat/rastermap/osmload"
	"github.com/royalcat/rastermap/prefixtree"
	"github.com/thejerf/slogassert"
)

const testMap = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6" generator="rastermap-test">
 <node id="1" lat="37.8700" lon="-122.2600">
  <tag k="name" v="Sather Gate"/>
 </node>
 <node id="2" lat="37.8710" lon="-122.2590"/>
 <node id="3" lat="37.8720" lon="-122.2580"/>
 <node id="4" lat="37.8650" lon="-122.2500">
  <tag k="name" v="Top Dog"/>
  <tag k="amenity" v="restaurant"/>
 </node>
 <node id="5" lat="37.8600" lon="-122.2400"/>
 <node id="6" lat="37.8610" lon="-122.2410">
  <tag k="name" v="!!!"/>
 </node>
 <way id="10">
  <nd ref="1"/>
  <nd ref="2"/>
  <nd ref="3"/>
  <tag k="highway" v="residential"/>
  <tag k="name" v="Telegraph Avenue"/>
 </way>
 <way id="11">
  <nd ref="5"/>
  <nd ref="6"/>
  <tag k="highway" v="footway"/>
 </way>
 <way id="12">
  <nd ref="3"/>
  <nd ref="99"/>
  <tag k="highway" v="primary"/>
 </way>
</osm>
`

type testSink struct {
	*geograph.Graph
	*prefixtree.Tree
	*locations.Index
}

func newTestSink() *testSink {
	return &testSink{
		Graph: geograph.New(),
		Tree:  prefixtree.New(),
		Index: locations.New(),
	}
}

// Len is ambiguous between the embedded types.
func (s *testSink) Len() int { return s.Graph.Len() }

func checkTestMap(t *testing.T, sink *testSink, stats osmload.Stats) {
	t.Helper()

	expected := osmload.Stats{
		Nodes:        6,
		Ways:         3,
		ValidWays:    2,
		Edges:        2,
		SkippedEdges: 1,
		NamedPoints:  3,
		Removed:      3,
	}
	if stats != expected {
		t.Fatalf("expected stats %+v, got %+v", expected, stats)
	}

	live := sink.LiveVertices()
	slices.Sort(live)
	if !slices.Equal(live, []int64{1, 2, 3}) {
		t.Fatalf("expected live [1 2 3], got %v", live)
	}

	adj, err := sink.Adjacent(2)
	if err != nil {
		t.Fatal(err)
	}
	slices.Sort(adj)
	if !slices.Equal(adj, []int64{1, 3}) {
		t.Fatalf("expected neighbors [1 3], got %v", adj)
	}

	w, ok := sink.Way(11)
	if !ok {
		t.Fatal("expected way 11 to be stored")
	}
	if w.Valid {
		t.Fatal("footway must not be a valid way")
	}
	if w, _ := sink.Way(10); !w.Valid || w.Tags["name"] != "Telegraph Avenue" || !slices.Equal(w.Nodes, []int64{1, 2, 3}) {
		t.Fatalf("unexpected way 10: %+v", w)
	}

	// removed from the graph but still searchable by name
	found := sink.LookupByName("Top Dog")
	if len(found) != 1 || found[0].ID != 4 {
		t.Fatalf("expected Top Dog at 4, got %+v", found)
	}
	if got := sink.LookupByPrefix("To"); !slices.Equal(got, []string{"Top Dog"}) {
		t.Fatalf("expected [Top Dog], got %v", got)
	}
	if got := sink.LookupByPrefix("!"); !slices.Equal(got, []string{"!!!"}) {
		t.Fatalf("expected [!!!], got %v", got)
	}
}

func TestLoadXML(t *testing.T) {
	sink := newTestSink()
	stats, err := osmload.Load(context.Background(), strings.NewReader(testMap), osmload.FormatXML, sink)
	if err != nil {
		t.Fatal(err)
	}
	checkTestMap(t, sink, stats)
}

const namesMap = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6" generator="rastermap-test">
 <node id="1" lat="35.6812" lon="139.7671">
  <tag k="name" v="東京駅"/>
 </node>
 <node id="2" lat="35.6815" lon="139.7675">
  <tag k="name" v="76"/>
 </node>
 <node id="3" lat="35.6818" lon="139.7679">
  <tag k="name" v=" "/>
 </node>
 <way id="10">
  <nd ref="1"/>
  <nd ref="2"/>
  <nd ref="3"/>
  <tag k="highway" v="residential"/>
 </way>
</osm>
`

func TestLoadNonLatinNames(t *testing.T) {
	sink := newTestSink()
	stats, err := osmload.Load(context.Background(), strings.NewReader(namesMap), osmload.FormatXML, sink)
	if err != nil {
		t.Fatal(err)
	}
	if stats.NamedPoints != 2 {
		t.Fatalf("expected 2 named points, got %+v", stats)
	}

	for _, tc := range []struct {
		name, prefix string
		id           int64
	}{
		{"東京駅", "東", 1},
		{"76", "7", 2},
	} {
		found := sink.LookupByName(tc.name)
		if len(found) != 1 || found[0].ID != tc.id || found[0].Name != tc.name {
			t.Fatalf("expected %s at %d, got %+v", tc.name, tc.id, found)
		}
		if got := sink.LookupByPrefix(tc.prefix); !slices.Equal(got, []string{tc.name}) {
			t.Fatalf("prefix %q: expected [%s], got %v", tc.prefix, tc.name, got)
		}
	}

	if got := sink.LookupByName(" "); len(got) != 0 {
		t.Fatalf("blank names must not be indexed, got %+v", got)
	}
	if got := sink.LookupByPrefix(" "); len(got) != 0 {
		t.Fatalf("blank names must not be indexed, got %v", got)
	}
}

func TestLoadWarnsOnUnknownNodes(t *testing.T) {
	handler := slogassert.New(t, slog.LevelWarn, nil)

	sink := newTestSink()
	_, err := osmload.Load(context.Background(), strings.NewReader(testMap), osmload.FormatXML, sink,
		osmload.WithLogger(slog.New(handler)),
	)
	if err != nil {
		t.Fatal(err)
	}
	handler.AssertMessage("Ways reference unknown nodes")
}

func TestLoadHighwayFilter(t *testing.T) {
	sink := newTestSink()
	stats, err := osmload.Load(context.Background(), strings.NewReader(testMap), osmload.FormatXML, sink,
		osmload.WithHighways([]string{"footway"}),
	)
	if err != nil {
		t.Fatal(err)
	}
	if stats.ValidWays != 1 || stats.Edges != 1 {
		t.Fatalf("expected only the footway, got %+v", stats)
	}
	live := sink.LiveVertices()
	slices.Sort(live)
	if !slices.Equal(live, []int64{5, 6}) {
		t.Fatalf("expected live [5 6], got %v", live)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "campus.osm")
	if err := os.WriteFile(plain, []byte(testMap), 0644); err != nil {
		t.Fatal(err)
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatal(err)
	}
	compressed := filepath.Join(dir, "campus.osm.zst")
	if err := os.WriteFile(compressed, enc.EncodeAll([]byte(testMap), nil), 0644); err != nil {
		t.Fatal(err)
	}
	enc.Close()

	for _, name := range []string{plain, compressed} {
		t.Run(filepath.Base(name), func(t *testing.T) {
			sink := newTestSink()
			stats, err := osmload.LoadFile(context.Background(), name, sink)
			if err != nil {
				t.Fatal(err)
			}
			checkTestMap(t, sink, stats)
		})
	}
}

func TestLoadBrokenXML(t *testing.T) {
	sink := newTestSink()
	_, err := osmload.Load(context.Background(), strings.NewReader(`<osm><node id="1" lat="1" lon="1">`), osmload.FormatXML, sink)
	if err == nil {
		t.Fatal("expected error for truncated document")
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     osmload.Format
		compressed bool
		fail       bool
	}{
		{"berkeley.osm", osmload.FormatXML, false, false},
		{"berkeley-2018.osm.xml", osmload.FormatXML, false, false},
		{"california-latest.osm.pbf", osmload.FormatPBF, false, false},
		{"california-latest.osm.pbf.zst", osmload.FormatPBF, true, false},
		{"BERKELEY.OSM.ZST", osmload.FormatXML, true, false},
		{"berkeley.json", 0, false, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			format, compressed, err := osmload.DetectFormat(tc.name)
			if tc.fail {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if format != tc.format || compressed != tc.compressed {
				t.Fatalf("expected %v/%v, got %v/%v", tc.format, tc.compressed, format, compressed)
			}
		})
	}
}
