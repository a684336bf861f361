package bucketize

import "sort"

// Bucketizer defines the interface for bucketing strategies.
//
// A Bucketizer is fitted once on a score sequence and can then label
// arbitrary scores. Fitted state is a sorted, deduplicated boundary list;
// boundary i is the first value of bucket i+1 (the first bucket has no lower
// boundary).
type Bucketizer interface {
	// Fit computes bucket boundaries from a score sequence.
	Fit(scores []float64) error

	// Boundaries returns the sorted, deduplicated cut values.
	// At most NumBuckets()-1 entries; fewer when optimal cuts coincide.
	Boundaries() []float64

	// Assign returns the bucket label for a single score.
	// Panics if the bucketizer has not been fitted.
	Assign(score float64) int

	// Transform returns per-row labels in the input order.
	// Panics if the bucketizer has not been fitted.
	Transform(scores []float64) []int

	// NumBuckets returns the requested bucket count.
	NumBuckets() int
}

// assignBucket returns the number of boundaries <= score.
// A score equal to a boundary falls into the bucket that boundary opens.
func assignBucket(bounds []float64, score float64) int {
	return sort.Search(len(bounds), func(i int) bool { return bounds[i] > score })
}

// transform labels every score against bounds, preserving input order.
func transform(bounds []float64, scores []float64) []int {
	labels := make([]int, len(scores))
	for i, s := range scores {
		labels[i] = assignBucket(bounds, s)
	}
	return labels
}

// PartitionCost recomputes the total within-bucket squared error of scores
// under the given boundaries: the sum over buckets of the squared deviations
// from the bucket mean. This is the quantity the MSE bucketizer minimizes.
func PartitionCost(scores []float64, bounds []float64) float64 {
	numBuckets := len(bounds) + 1
	count := make([]float64, numBuckets)
	sum := make([]float64, numBuckets)
	sqsum := make([]float64, numBuckets)

	for _, s := range scores {
		b := assignBucket(bounds, s)
		count[b]++
		sum[b] += s
		sqsum[b] += s * s
	}

	var total float64
	for b := 0; b < numBuckets; b++ {
		if count[b] == 0 {
			continue
		}
		cost := sqsum[b] - sum[b]*sum[b]/count[b]
		if cost > 0 {
			total += cost
		}
	}
	return total
}

// dedupeSorted removes adjacent duplicates from a sorted slice, in place.
func dedupeSorted(vals []float64) []float64 {
	out := vals[:0]
	for i, v := range vals {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
