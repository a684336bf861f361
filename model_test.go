package bucketize

import (
	"errors"
	"testing"

	"github.com/hupe1980/bucketize/persistence"
)

func TestModel_RoundTrip(t *testing.T) {
	scores := []float64{1, 2, 3, 4, 100, 101, 102}

	b := NewMSEBucketizer(2)
	if err := b.Fit(scores); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	m, err := b.Model()
	if err != nil {
		t.Fatalf("Model failed: %v", err)
	}
	if m.Strategy != StrategyMSE || m.NumBuckets != 2 || m.TrainedRows != 7 {
		t.Fatalf("Unexpected model: %+v", m)
	}

	restored, err := FromModel(m)
	if err != nil {
		t.Fatalf("FromModel failed: %v", err)
	}

	origLabels := b.Transform(scores)
	newLabels := restored.Transform(scores)
	for i := range origLabels {
		if origLabels[i] != newLabels[i] {
			t.Errorf("Label %d differs after restore: %d vs %d", i, origLabels[i], newLabels[i])
		}
	}
}

func TestModel_NotFitted(t *testing.T) {
	if _, err := NewMSEBucketizer(2).Model(); !errors.Is(err, ErrNotFitted) {
		t.Errorf("Expected ErrNotFitted, got %v", err)
	}
	if _, err := NewEqualWidthBucketizer(2).Model(); !errors.Is(err, ErrNotFitted) {
		t.Errorf("Expected ErrNotFitted, got %v", err)
	}
	if _, err := NewEqualFrequencyBucketizer(2).Model(); !errors.Is(err, ErrNotFitted) {
		t.Errorf("Expected ErrNotFitted, got %v", err)
	}
	if _, err := NewKMeansBucketizer(2).Model(); !errors.Is(err, ErrNotFitted) {
		t.Errorf("Expected ErrNotFitted, got %v", err)
	}
}

func TestFromModel_AllStrategies(t *testing.T) {
	for _, strategy := range []string{StrategyMSE, StrategyEqualWidth, StrategyEqualFrequency, StrategyKMeans} {
		m := &persistence.Model{
			Strategy:   strategy,
			NumBuckets: 3,
			Boundaries: []float64{10, 20},
		}
		b, err := FromModel(m)
		if err != nil {
			t.Fatalf("FromModel(%s) failed: %v", strategy, err)
		}
		if got := b.Assign(15); got != 1 {
			t.Errorf("%s: Assign(15) expected 1, got %d", strategy, got)
		}
		if b.NumBuckets() != 3 {
			t.Errorf("%s: expected 3 buckets, got %d", strategy, b.NumBuckets())
		}
	}
}

func TestFromModel_Invalid(t *testing.T) {
	if _, err := FromModel(&persistence.Model{Strategy: "nope", NumBuckets: 2}); !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("Expected ErrUnknownStrategy, got %v", err)
	}
	if _, err := FromModel(&persistence.Model{Strategy: StrategyMSE, NumBuckets: 0}); !errors.Is(err, ErrInvalidBucketCount) {
		t.Errorf("Expected ErrInvalidBucketCount, got %v", err)
	}
}
