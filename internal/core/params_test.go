package core

import "testing"

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "a", Value: "1"}}},
		{Name: "B", Params: []Parameter{{Key: "b", Value: "2"}}},
	}}
	p, ok := snap.Lookup("b")
	if !ok || p.Value != "2" {
		t.Fatalf("lookup b = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("lookup of unknown key should fail")
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 16; i++ {
		x, y := a.Float64(), b.Float64()
		if x != y {
			t.Fatalf("draw %d differs: %v vs %v", i, x, y)
		}
		if x < 0 || x >= 1 {
			t.Fatalf("draw %d out of range: %v", i, x)
		}
	}
}
