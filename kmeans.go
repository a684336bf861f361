package bucketize

import (
	"math"
	"sort"
)

const defaultKMeansIterations = 50

// KMeansBucketizer clusters scores with 1-D Lloyd's algorithm and cuts at
// the midpoints between adjacent centroids. Unlike the MSE bucketizer it is
// a local-search heuristic: the result depends on initialization and is not
// guaranteed optimal. Included as the unsupervised baseline the exact DP is
// usually compared against.
type KMeansBucketizer struct {
	numBuckets int
	maxIter    int

	boundaries []float64
	centroids  []float64
	fitted     bool
}

// NewKMeansBucketizer creates a bucketizer targeting numBuckets clusters.
func NewKMeansBucketizer(numBuckets int) *KMeansBucketizer {
	return &KMeansBucketizer{
		numBuckets: numBuckets,
		maxIter:    defaultKMeansIterations,
	}
}

// Fit clusters scores and derives boundaries from the converged centroids.
//
// Centroids are seeded at equal-frequency quantiles of the sorted input, so
// Fit is deterministic for a given input.
func (b *KMeansBucketizer) Fit(scores []float64) error {
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

	// Quantile seeding.
	centroids := make([]float64, k)
	for j := 0; j < k; j++ {
		centroids[j] = sorted[(2*j+1)*n/(2*k)]
	}

	assignments := make([]int, n)
	sums := make([]float64, k)
	counts := make([]int, k)

	for iter := 0; iter < b.maxIter; iter++ {
		changed := false

		// Assignment step
		for i, v := range sorted {
			best := -1
			minDist := math.Inf(1)
			for j, c := range centroids {
				d := (v - c) * (v - c)
				if d < minDist {
					minDist = d
					best = j
				}
			}
			if assignments[i] != best {
				assignments[i] = best
				changed = true
			}
		}

		if !changed {
			break
		}

		// Update step
		for j := range sums {
			sums[j] = 0
			counts[j] = 0
		}
		for i, v := range sorted {
			sums[assignments[i]] += v
			counts[assignments[i]]++
		}
		for j := range centroids {
			if counts[j] > 0 {
				centroids[j] = sums[j] / float64(counts[j])
			}
			// Empty clusters keep their previous centroid; with sorted
			// 1-D data and quantile seeding they do not recur.
		}
	}

	sort.Float64s(centroids)

	cuts := make([]float64, 0, k-1)
	for j := 1; j < k; j++ {
		cuts = append(cuts, (centroids[j-1]+centroids[j])/2)
	}

	b.centroids = centroids
	b.boundaries = dedupeSorted(cuts)
	b.fitted = true
	return nil
}

// Boundaries returns the fitted cut values. Returns nil before Fit.
func (b *KMeansBucketizer) Boundaries() []float64 { return b.boundaries }

// Centroids returns the converged cluster centers, sorted ascending.
func (b *KMeansBucketizer) Centroids() []float64 { return b.centroids }

// Assign returns the bucket label for score.
// Panics if the bucketizer has not been fitted.
func (b *KMeansBucketizer) Assign(score float64) int {
	if !b.fitted {
		panic("bucketize: KMeansBucketizer not fitted")
	}
	return assignBucket(b.boundaries, score)
}

// Transform returns per-row labels for scores, in the input order.
// Panics if the bucketizer has not been fitted.
func (b *KMeansBucketizer) Transform(scores []float64) []int {
	if !b.fitted {
		panic("bucketize: KMeansBucketizer not fitted")
	}
	return transform(b.boundaries, scores)
}

// NumBuckets returns the requested bucket count.
func (b *KMeansBucketizer) NumBuckets() int { return b.numBuckets }
