package bucketize

import (
	"fmt"

	"github.com/hupe1980/bucketize/persistence"
)

// Strategy names recorded in persisted models.
const (
	StrategyMSE            = "mse"
	StrategyEqualWidth     = "equal-width"
	StrategyEqualFrequency = "equal-frequency"
	StrategyKMeans         = "kmeans"
)

// Model exports the fitted state for persistence.
// Returns ErrNotFitted before Fit.
func (b *MSEBucketizer) Model() (*persistence.Model, error) {
	if !b.fitted {
		return nil, ErrNotFitted
	}
	return &persistence.Model{
		Strategy:    StrategyMSE,
		NumBuckets:  b.numBuckets,
		Boundaries:  b.boundaries,
		TotalCost:   b.totalCost,
		TrainedRows: b.trainedRows,
	}, nil
}

// Model exports the fitted state for persistence.
// Returns ErrNotFitted before Fit.
func (b *EqualWidthBucketizer) Model() (*persistence.Model, error) {
	if !b.fitted {
		return nil, ErrNotFitted
	}
	return &persistence.Model{
		Strategy:   StrategyEqualWidth,
		NumBuckets: b.numBuckets,
		Boundaries: b.boundaries,
	}, nil
}

// Model exports the fitted state for persistence.
// Returns ErrNotFitted before Fit.
func (b *EqualFrequencyBucketizer) Model() (*persistence.Model, error) {
	if !b.fitted {
		return nil, ErrNotFitted
	}
	return &persistence.Model{
		Strategy:   StrategyEqualFrequency,
		NumBuckets: b.numBuckets,
		Boundaries: b.boundaries,
	}, nil
}

// Model exports the fitted state for persistence.
// Returns ErrNotFitted before Fit.
func (b *KMeansBucketizer) Model() (*persistence.Model, error) {
	if !b.fitted {
		return nil, ErrNotFitted
	}
	return &persistence.Model{
		Strategy:   StrategyKMeans,
		NumBuckets: b.numBuckets,
		Boundaries: b.boundaries,
	}, nil
}

// FromModel restores a fitted bucketizer from a persisted model.
// The returned bucketizer labels scores without refitting.
func FromModel(m *persistence.Model) (Bucketizer, error) {
	if m.NumBuckets < 1 {
		return nil, ErrInvalidBucketCount
	}

	switch m.Strategy {
	case StrategyMSE:
		return &MSEBucketizer{
			numBuckets:  m.NumBuckets,
			parallelism: 1,
			boundaries:  m.Boundaries,
			totalCost:   m.TotalCost,
			trainedRows: m.TrainedRows,
			fitted:      true,
		}, nil
	case StrategyEqualWidth:
		return &EqualWidthBucketizer{
			numBuckets: m.NumBuckets,
			boundaries: m.Boundaries,
			fitted:     true,
		}, nil
	case StrategyEqualFrequency:
		return &EqualFrequencyBucketizer{
			numBuckets: m.NumBuckets,
			boundaries: m.Boundaries,
			fitted:     true,
		}, nil
	case StrategyKMeans:
		return &KMeansBucketizer{
			numBuckets: m.NumBuckets,
			maxIter:    defaultKMeansIterations,
			boundaries: m.Boundaries,
			fitted:     true,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, m.Strategy)
	}
}
