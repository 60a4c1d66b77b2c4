package locations_test

import (
	"testing"

	"github.com/royalcat/rastermap/geograph"
	"github.com/royalcat/rastermap/locations"
)

func TestLookupOrder(t *testing.T) {
	g := geograph.New()
	idx := locations.New()

	ids := []int64{100, 200, 300}
	lats := []float64{37.87, 37.88, 37.89}
	for i, id := range ids {
		p := g.AddPoint(id, lats[i], -122.26, map[string]string{"name": "Peet's Coffee"})
		idx.AddLocation("Peet's Coffee", p)
	}

	got := idx.LookupByName("Peet's Coffee")
	if len(got) != 3 {
		t.Fatalf("expected 3 locations, got %d", len(got))
	}
	for i, want := range []int64{300, 200, 100} {
		if got[i].ID != want {
			t.Fatalf("position %d: expected id %d, got %d", i, want, got[i].ID)
		}
		if got[i].Name != "Peet's Coffee" {
			t.Fatalf("expected name from tag, got %q", got[i].Name)
		}
	}
	if got[0].Lat != 37.89 || got[0].Lon != -122.26 {
		t.Fatalf("unexpected coordinates: %+v", got[0])
	}
}

func TestDisplayNameFromTag(t *testing.T) {
	g := geograph.New()
	idx := locations.New()

	p := g.AddPoint(1, 1, 2, map[string]string{"name": "Cheese Board Collective"})
	idx.AddLocation("cheese board collective", p)

	got := idx.LookupByName("cheese board collective")
	if len(got) != 1 || got[0].Name != "Cheese Board Collective" {
		t.Fatalf("expected tag name, got %+v", got)
	}
	if got := idx.LookupByName("Cheese Board Collective"); len(got) != 0 {
		t.Fatalf("expected exact key match only, got %+v", got)
	}
}

func TestLookupMissing(t *testing.T) {
	idx := locations.New()
	got := idx.LookupByName("Nowhere")
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", got)
	}
	if idx.Len() != 0 {
		t.Fatalf("expected empty index, got %d", idx.Len())
	}

	idx.AddLocation("Nowhere", nil)
	if idx.Len() != 0 {
		t.Fatalf("nil point must not be indexed")
	}
}
