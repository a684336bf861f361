// Package bucketize computes optimal partitions of one-dimensional numeric
// attributes into contiguous buckets.
//
// Given a sequence of scores (credit scores, latencies, risk values) and a
// target bucket count, the MSE bucketizer finds the cut points that minimize
// the total within-bucket squared error. The result is exact, not a
// heuristic: an O(k·n²) dynamic program over the sorted scores with O(1)
// range-cost evaluation via prefix sums.
//
// # Quick Start
//
//	boundaries, labels, err := bucketize.Segment(scores, 5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// boundaries: sorted cut values, each one a real data point
//	// labels:     per-row bucket index, in the original row order
//
// Or keep a fitted bucketizer around for labeling new data:
//
//	b := bucketize.NewMSEBucketizer(5)
//	if err := b.Fit(scores); err != nil {
//	    log.Fatal(err)
//	}
//	bucket := b.Assign(712.0)
//
// # Strategies
//
// Besides the exact MSE bucketizer, the package ships the common baselines
// for comparison: equal-width, equal-frequency, and 1-D k-means. All
// implement the Bucketizer interface.
//
// # Semantics
//
//   - Boundaries are sorted ascending and deduplicated. A boundary is the
//     first value of the bucket it opens; a score equal to a boundary falls
//     into that bucket (right-open intervals). Label i covers
//     [boundary[i-1], boundary[i]).
//   - When two optimal cuts land on the same value, deduplication leaves
//     fewer than numBuckets-1 boundaries. That is reported as-is, not padded.
//   - Inputs must be finite. NaN or ±Inf scores are a precondition violation
//     and the result is undefined.
//
// # Persistence
//
// Fitted bucketizers export a Model that the persistence package writes as a
// self-describing, checksummed binary snapshot (optionally zstd or lz4
// compressed) to any io.Writer or blobstore backend (local disk, S3, MinIO).
package bucketize
