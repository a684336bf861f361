package bucketize

import (
	"context"
	"time"
)

// Segment fits an MSE bucketizer on scores and returns the optimal
// boundaries plus a per-row label for every input score, in the input order.
//
// This is the one-shot entry point; use NewMSEBucketizer directly to keep
// the fitted state for labeling data that arrives later.
func Segment(scores []float64, numBuckets int, optFns ...Option) ([]float64, []int, error) {
	o := applyOptions(optFns)
	ctx := context.Background()

	b := NewMSEBucketizer(numBuckets, optFns...)

	start := time.Now()
	err := b.Fit(scores)
	elapsed := time.Since(start)

	o.metricsCollector.RecordFit(len(scores), numBuckets, elapsed, err)
	o.logger.LogFit(ctx, "mse", len(scores), numBuckets, b.TotalCost(), elapsed, err)
	if err != nil {
		return nil, nil, err
	}

	start = time.Now()
	labels := b.Transform(scores)
	o.metricsCollector.RecordTransform(len(scores), time.Since(start))
	o.logger.LogTransform(ctx, len(scores), time.Since(start))

	return b.Boundaries(), labels, nil
}
