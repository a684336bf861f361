package bucketize

import (
	"math"
	"sort"

	"golang.org/x/sync/errgroup"
)

// MSEBucketizer computes the exact minimum-MSE partition of a score sequence
// into contiguous buckets, via dynamic programming over the sorted scores.
//
// Cost model: O(numBuckets * n²) time, O(numBuckets * n) memory for the DP
// tables. Range costs are evaluated in O(1) from prefix sums. Every returned
// boundary is a value present in the input, never a synthesized midpoint.
//
// Scores must be finite; behavior on NaN or ±Inf inputs is undefined. For
// inputs of very large magnitude, the sum-of-squares accumulation can lose
// precision; center or scale such inputs before fitting.
type MSEBucketizer struct {
	numBuckets  int
	parallelism int

	boundaries  []float64
	totalCost   float64
	trainedRows int
	fitted      bool
}

// NewMSEBucketizer creates a bucketizer targeting numBuckets buckets.
func NewMSEBucketizer(numBuckets int, optFns ...Option) *MSEBucketizer {
	o := applyOptions(optFns)
	return &MSEBucketizer{
		numBuckets:  numBuckets,
		parallelism: o.parallelism,
	}
}

// Fit computes the optimal boundaries for scores.
//
// Returns ErrInvalidBucketCount if numBuckets < 1 and ErrInsufficientData if
// len(scores) < numBuckets (each bucket must hold at least one element).
func (b *MSEBucketizer) Fit(scores []float64) error {
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

	// Prefix sums over the sorted values, one slot ahead so that
	// sum(i..j) = prefix[j+1] - prefix[i] without branching.
	prefixSum := make([]float64, n+1)
	prefixSqSum := make([]float64, n+1)
	for i, v := range sorted {
		prefixSum[i+1] = prefixSum[i] + v
		prefixSqSum[i+1] = prefixSqSum[i] + v*v
	}

	// rangeCost is the summed squared deviation from the mean over the
	// inclusive sorted index range [start, end]. The expanded form
	// sqsum - sum²/count equals count * variance.
	rangeCost := func(start, end int) float64 {
		c := float64(end - start + 1)
		s := prefixSum[end+1] - prefixSum[start]
		q := prefixSqSum[end+1] - prefixSqSum[start]
		cost := q - s*s/c
		if cost < 0 {
			// rounding can push the subtraction slightly negative
			cost = 0
		}
		return cost
	}

	// cost[layer*n+i] is the minimal total cost of splitting sorted[0..i]
	// into layer+1 buckets; splits holds the last index of bucket `layer`
	// achieving it. Flat tables, indexed arithmetically.
	cost := make([]float64, k*n)
	splits := make([]int, k*n)

	for i := 0; i < n; i++ {
		cost[i] = rangeCost(0, i)
	}

	for layer := 1; layer < k; layer++ {
		prev := cost[(layer-1)*n : layer*n]
		cur := cost[layer*n : (layer+1)*n]
		choice := splits[layer*n : (layer+1)*n]

		// Cells below the diagonal (i < layer) cannot hold layer+1
		// non-empty buckets and are never read back.
		if b.parallelism > 1 {
			fitLayerParallel(layer, n, b.parallelism, prev, cur, choice, rangeCost)
		} else {
			fitLayerRange(layer, layer, n-1, prev, cur, choice, rangeCost)
		}
	}

	// Backtrack from the full solution. Each step records the first value
	// of the bucket that follows the chosen split.
	cuts := make([]float64, 0, k-1)
	end := n - 1
	for layer := k - 1; layer >= 1; layer-- {
		j := splits[layer*n+end]
		cuts = append(cuts, sorted[j+1])
		end = j
	}
	sort.Float64s(cuts)

	// Coincident cuts collapse here; the effective bucket count then drops
	// below numBuckets. Reported as-is.
	b.boundaries = dedupeSorted(cuts)
	b.totalCost = cost[(k-1)*n+n-1]
	b.trainedRows = n
	b.fitted = true

	return nil
}

// fitLayerRange fills cur[lo..hi] for one DP layer. The split index j ranges
// over [layer-1, i-1], which forces every bucket used so far to be non-empty.
// Ties keep the smallest j (strict < on a low-to-high scan) so results are
// reproducible.
func fitLayerRange(layer, lo, hi int, prev, cur []float64, choice []int, rangeCost func(start, end int) float64) {
	for i := lo; i <= hi; i++ {
		best := math.Inf(1)
		bestJ := layer - 1
		for j := layer - 1; j < i; j++ {
			c := prev[j] + rangeCost(j+1, i)
			if c < best {
				best = c
				bestJ = j
			}
		}
		cur[i] = best
		choice[i] = bestJ
	}
}

// fitLayerParallel splits the row range of one layer across workers.
// prev is fully computed before this layer starts and each worker writes a
// disjoint chunk of cur/choice, so no synchronization is needed.
func fitLayerParallel(layer, n, workers int, prev, cur []float64, choice []int, rangeCost func(start, end int) float64) {
	lo, hi := layer, n-1
	rows := hi - lo + 1
	if workers > rows {
		workers = rows
	}

	chunk := (rows + workers - 1) / workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		start := lo + w*chunk
		stop := start + chunk - 1
		if stop > hi {
			stop = hi
		}
		if start > stop {
			break
		}
		g.Go(func() error {
			fitLayerRange(layer, start, stop, prev, cur, choice, rangeCost)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors
}

// Boundaries returns the fitted cut values, sorted ascending.
// Returns nil before Fit.
func (b *MSEBucketizer) Boundaries() []float64 {
	return b.boundaries
}

// Assign returns the bucket label for score.
// Panics if the bucketizer has not been fitted.
func (b *MSEBucketizer) Assign(score float64) int {
	if !b.fitted {
		panic("bucketize: MSEBucketizer not fitted")
	}
	return assignBucket(b.boundaries, score)
}

// Transform returns per-row labels for scores, in the input order.
// Panics if the bucketizer has not been fitted.
func (b *MSEBucketizer) Transform(scores []float64) []int {
	if !b.fitted {
		panic("bucketize: MSEBucketizer not fitted")
	}
	return transform(b.boundaries, scores)
}

// NumBuckets returns the requested bucket count.
func (b *MSEBucketizer) NumBuckets() int {
	return b.numBuckets
}

// TotalCost returns the minimal total within-bucket squared error found by
// the last Fit. Zero before Fit.
func (b *MSEBucketizer) TotalCost() float64 {
	return b.totalCost
}

// TrainedRows returns the number of scores seen by the last Fit.
func (b *MSEBucketizer) TrainedRows() int {
	return b.trainedRows
}

// Fitted returns whether Fit has completed successfully.
func (b *MSEBucketizer) Fitted() bool {
	return b.fitted
}
