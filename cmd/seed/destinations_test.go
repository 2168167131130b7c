package main

import "testing"

func TestDestinationsAreUniqueAndLocated(t *testing.T) {
	seen := make(map[string]bool)
	for _, d := range destinations() {
		if seen[d.Slug] {
			t.Fatalf("duplicate slug %s", d.Slug)
		}
		seen[d.Slug] = true
		if !d.HasCoordinates() {
			t.Fatalf("%s has no coordinates", d.Slug)
		}
		if len(d.Attractions) == 0 || len(d.BestMonths) == 0 {
			t.Fatalf("%s is missing attractions or best months", d.Slug)
		}
	}
	if len(seen) != 8 {
		t.Fatalf("expected 8 destinations, got %d", len(seen))
	}
}
