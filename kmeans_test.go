package bucketize

import (
	"errors"
	"math"
	"testing"

	"github.com/hupe1980/bucketize/testutil"
)

func TestKMeansBucketizer_SeparatedClusters(t *testing.T) {
	scores := []float64{100, 0, 1, 101, 2, 102}

	b := NewKMeansBucketizer(2)
	if err := b.Fit(scores); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	centroids := b.Centroids()
	if len(centroids) != 2 {
		t.Fatalf("Expected 2 centroids, got %v", centroids)
	}
	if math.Abs(centroids[0]-1) > 1e-9 || math.Abs(centroids[1]-101) > 1e-9 {
		t.Errorf("Expected centroids [1 101], got %v", centroids)
	}

	bounds := b.Boundaries()
	if len(bounds) != 1 || math.Abs(bounds[0]-51) > 1e-9 {
		t.Fatalf("Expected boundaries [51], got %v", bounds)
	}

	want := []int{1, 0, 0, 1, 0, 1}
	labels := b.Transform(scores)
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("Label %d: expected %d, got %d", i, want[i], labels[i])
		}
	}
}

func TestKMeansBucketizer_Deterministic(t *testing.T) {
	rng := testutil.NewRNG(5)
	scores := rng.ClusteredScores([]float64{20, 60, 90}, 40, 6)

	first := NewKMeansBucketizer(3)
	if err := first.Fit(scores); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	second := NewKMeansBucketizer(3)
	if err := second.Fit(scores); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	a, b := first.Boundaries(), second.Boundaries()
	if len(a) != len(b) {
		t.Fatalf("Boundary counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Boundary %d differs: %f vs %f", i, a[i], b[i])
		}
	}
}

func TestKMeansBucketizer_NeverBeatsExactDP(t *testing.T) {
	rng := testutil.NewRNG(11)
	scores := rng.ClusteredScores([]float64{10, 35, 70, 95}, 30, 10)

	const k = 4

	km := NewKMeansBucketizer(k)
	if err := km.Fit(scores); err != nil {
		t.Fatalf("KMeans fit failed: %v", err)
	}
	mse := NewMSEBucketizer(k)
	if err := mse.Fit(scores); err != nil {
		t.Fatalf("MSE fit failed: %v", err)
	}

	const eps = 1e-6
	if optimal, heuristic := PartitionCost(scores, mse.Boundaries()), PartitionCost(scores, km.Boundaries()); optimal > heuristic+eps {
		t.Errorf("DP cost %f exceeds k-means cost %f", optimal, heuristic)
	}
}

func TestKMeansBucketizer_InvalidArguments(t *testing.T) {
	if err := NewKMeansBucketizer(0).Fit([]float64{1}); !errors.Is(err, ErrInvalidBucketCount) {
		t.Errorf("Expected ErrInvalidBucketCount, got %v", err)
	}
	var insufficient *ErrInsufficientData
	if err := NewKMeansBucketizer(5).Fit([]float64{1, 2}); !errors.As(err, &insufficient) {
		t.Errorf("Expected ErrInsufficientData, got %v", err)
	}
}
