package testutil

import (
	"sort"
	"testing"
)

func TestRNG_Deterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)

	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("sequences diverged at step %d", i)
		}
	}
}

func TestRNG_Reset(t *testing.T) {
	r := NewRNG(7)

	first := make([]float64, 10)
	for i := range first {
		first[i] = r.Float64()
	}

	r.Reset()
	for i := range first {
		if got := r.Float64(); got != first[i] {
			t.Fatalf("after Reset, step %d: got %v, want %v", i, got, first[i])
		}
	}

	if r.Seed() != 7 {
		t.Errorf("Seed() = %d, want 7", r.Seed())
	}
}

func TestUniformScores_Range(t *testing.T) {
	r := NewRNG(1)

	scores := r.UniformScores(1000, 300, 850)
	if len(scores) != 1000 {
		t.Fatalf("len = %d, want 1000", len(scores))
	}
	for _, s := range scores {
		if s < 300 || s >= 850 {
			t.Fatalf("score %v out of [300, 850)", s)
		}
	}
}

func TestClusteredScores(t *testing.T) {
	r := NewRNG(3)

	centers := []float64{100, 500, 900}
	scores := r.ClusteredScores(centers, 50, 10)
	if len(scores) != 150 {
		t.Fatalf("len = %d, want 150", len(scores))
	}

	// Every score must lie within spread of some center.
	for _, s := range scores {
		ok := false
		for _, c := range centers {
			if s >= c-10 && s <= c+10 {
				ok = true
				break
			}
		}
		if !ok {
			t.Fatalf("score %v not within 10 of any center", s)
		}
	}

	// Shuffled output should not be sorted.
	if sort.Float64sAreSorted(scores) {
		t.Error("clustered scores unexpectedly sorted")
	}
}

func TestGaussianScores(t *testing.T) {
	r := NewRNG(9)

	scores := r.GaussianScores(10000, 650, 50)

	var sum float64
	for _, s := range scores {
		sum += s
	}
	mean := sum / float64(len(scores))
	if mean < 640 || mean > 660 {
		t.Errorf("sample mean %v too far from 650", mean)
	}
}
