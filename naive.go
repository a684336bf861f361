package bucketize

import "sort"

// EqualWidthBucketizer splits the score range [min, max] into numBuckets
// intervals of equal width. Boundaries are synthesized grid points, not data
// values. This is the classic histogram binning and serves as a baseline for
// the MSE bucketizer.
type EqualWidthBucketizer struct {
	numBuckets int

	boundaries []float64
	fitted     bool
}

// NewEqualWidthBucketizer creates a bucketizer targeting numBuckets buckets.
func NewEqualWidthBucketizer(numBuckets int) *EqualWidthBucketizer {
	return &EqualWidthBucketizer{numBuckets: numBuckets}
}

// Fit computes the equal-width grid over scores.
func (b *EqualWidthBucketizer) Fit(scores []float64) error {
	k := b.numBuckets
	n := len(scores)

	if k < 1 {
		return ErrInvalidBucketCount
	}
	if n < k {
		return &ErrInsufficientData{Buckets: k, Count: n}
	}

	lo, hi := scores[0], scores[0]
	for _, s := range scores {
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}

	if lo == hi {
		// Degenerate range: everything lands in one bucket.
		b.boundaries = []float64{}
		b.fitted = true
		return nil
	}

	width := (hi - lo) / float64(k)
	bounds := make([]float64, 0, k-1)
	for i := 1; i < k; i++ {
		bounds = append(bounds, lo+width*float64(i))
	}

	b.boundaries = bounds
	b.fitted = true
	return nil
}

// Boundaries returns the fitted cut values. Returns nil before Fit.
func (b *EqualWidthBucketizer) Boundaries() []float64 { return b.boundaries }

// Assign returns the bucket label for score.
// Panics if the bucketizer has not been fitted.
func (b *EqualWidthBucketizer) Assign(score float64) int {
	if !b.fitted {
		panic("bucketize: EqualWidthBucketizer not fitted")
	}
	return assignBucket(b.boundaries, score)
}

// Transform returns per-row labels for scores, in the input order.
// Panics if the bucketizer has not been fitted.
func (b *EqualWidthBucketizer) Transform(scores []float64) []int {
	if !b.fitted {
		panic("bucketize: EqualWidthBucketizer not fitted")
	}
	return transform(b.boundaries, scores)
}

// NumBuckets returns the requested bucket count.
func (b *EqualWidthBucketizer) NumBuckets() int { return b.numBuckets }

// EqualFrequencyBucketizer cuts at quantile positions so buckets hold roughly
// equal row counts. Boundaries are data values; duplicates collapse when a
// value spans a quantile cut, leaving fewer effective buckets.
type EqualFrequencyBucketizer struct {
	numBuckets int

	boundaries []float64
	fitted     bool
}

// NewEqualFrequencyBucketizer creates a bucketizer targeting numBuckets buckets.
func NewEqualFrequencyBucketizer(numBuckets int) *EqualFrequencyBucketizer {
	return &EqualFrequencyBucketizer{numBuckets: numBuckets}
}

// Fit computes the quantile cuts over scores.
func (b *EqualFrequencyBucketizer) Fit(scores []float64) error {
	k := b.numBuckets
	n := len(scores)

	if k < 1 {
		return ErrInvalidBucketCount
	}
	if n < k {
		return &ErrInsufficientData{Buckets: k, Count: n}
	}

	sorted := make([]float64, n)
	copy(sorted, scores)
	sort.Float64s(sorted)

	cuts := make([]float64, 0, k-1)
	for i := 1; i < k; i++ {
		cuts = append(cuts, sorted[i*n/k])
	}

	b.boundaries = dedupeSorted(cuts)
	b.fitted = true
	return nil
}

// Boundaries returns the fitted cut values. Returns nil before Fit.
func (b *EqualFrequencyBucketizer) Boundaries() []float64 { return b.boundaries }

// Assign returns the bucket label for score.
// Panics if the bucketizer has not been fitted.
func (b *EqualFrequencyBucketizer) Assign(score float64) int {
	if !b.fitted {
		panic("bucketize: EqualFrequencyBucketizer not fitted")
	}
	return assignBucket(b.boundaries, score)
}

// Transform returns per-row labels for scores, in the input order.
// Panics if the bucketizer has not been fitted.
func (b *EqualFrequencyBucketizer) Transform(scores []float64) []int {
	if !b.fitted {
		panic("bucketize: EqualFrequencyBucketizer not fitted")
	}
	return transform(b.boundaries, scores)
}

// NumBuckets returns the requested bucket count.
func (b *EqualFrequencyBucketizer) NumBuckets() int { return b.numBuckets }
