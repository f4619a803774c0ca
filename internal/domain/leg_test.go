package domain

import "testing"

func TestSyncLegVias(t *testing.T) {
	vias := [][]ViaStop{
		{{ID: "a"}},
		{{ID: "b"}},
	}

	out := SyncLegVias(vias, 4)
	if len(out) != 3 {
		t.Fatalf("expected 3 legs for 4 stops, got %d", len(out))
	}
	if len(out[0]) != 1 || out[0][0].ID != "a" {
		t.Fatalf("leg 0 vias not preserved: %+v", out[0])
	}
	if out[2] == nil || len(out[2]) != 0 {
		t.Fatalf("leg 2 should be empty, got %+v", out[2])
	}

	out = SyncLegVias(out, 2)
	if len(out) != 1 {
		t.Fatalf("expected 1 leg for 2 stops, got %d", len(out))
	}

	out = SyncLegVias(out, 0)
	if len(out) != 0 {
		t.Fatalf("expected 0 legs for 0 stops, got %d", len(out))
	}
}

func TestInsertViaKeepsDirectionalOrder(t *testing.T) {
	// Leg runs west to east along the equator.
	start := Coordinates{Lon: 0, Lat: 0}
	end := Coordinates{Lon: 10, Lat: 0}

	far := ViaStop{ID: "far", Lat: 0.1, Lng: 8}
	near := ViaStop{ID: "near", Lat: -0.1, Lng: 2}
	mid := ViaStop{ID: "mid", Lat: 0, Lng: 5}

	vias := InsertVia(nil, far, start, end)
	vias = InsertVia(vias, near, start, end)
	vias = InsertVia(vias, mid, start, end)

	want := []string{"near", "mid", "far"}
	for i, id := range want {
		if vias[i].ID != id {
			t.Fatalf("position %d = %q, want %q (order %+v)", i, vias[i].ID, id, vias)
		}
	}
}

func TestInsertViaDoesNotMutateInput(t *testing.T) {
	start := Coordinates{Lon: 0, Lat: 0}
	end := Coordinates{Lon: 1, Lat: 0}

	orig := []ViaStop{{ID: "x", Lat: 0, Lng: 0.9}}
	out := InsertVia(orig, ViaStop{ID: "y", Lat: 0, Lng: 0.1}, start, end)

	if len(orig) != 1 || orig[0].ID != "x" {
		t.Fatalf("input slice mutated: %+v", orig)
	}
	if len(out) != 2 || out[0].ID != "y" {
		t.Fatalf("unexpected output order: %+v", out)
	}
}
