package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformScores generates n random scores in [minVal, maxVal).
// Locks only once per call (preferred over calling Float64 in a loop).
func (r *RNG) UniformScores(n int, minVal, maxVal float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal
	scores := make([]float64, n)
	for i := range scores {
		scores[i] = minVal + r.rand.Float64()*span
	}
	return scores
}

// ClusteredScores generates perCluster scores around each center, jittered
// uniformly within ±spread, shuffled into a random row order. This models
// the multi-modal score distributions where MSE bucketing shines.
func (r *RNG) ClusteredScores(centers []float64, perCluster int, spread float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	scores := make([]float64, 0, len(centers)*perCluster)
	for _, c := range centers {
		for i := 0; i < perCluster; i++ {
			scores = append(scores, c+(r.rand.Float64()*2-1)*spread)
		}
	}
	r.rand.Shuffle(len(scores), func(i, j int) {
		scores[i], scores[j] = scores[j], scores[i]
	})
	return scores
}

// GaussianScores generates n scores from a normal distribution.
func (r *RNG) GaussianScores(n int, mean, stddev float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = mean + r.rand.NormFloat64()*stddev
	}
	return scores
}
