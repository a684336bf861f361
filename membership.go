package bucketize

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Membership indexes row positions by bucket label using roaring bitmaps.
//
// It answers "which rows landed in bucket b" and set-algebra questions over
// bucket populations without materializing index slices. Row positions are
// uint32, matching roaring's key space.
type Membership struct {
	sets []*roaring.Bitmap
}

// NewMembership builds the per-bucket row sets from labels.
// numBuckets caps the label range; out-of-range labels are ignored.
func NewMembership(labels []int, numBuckets int) *Membership {
	sets := make([]*roaring.Bitmap, numBuckets)
	for i := range sets {
		sets[i] = roaring.New()
	}
	for row, label := range labels {
		if label >= 0 && label < numBuckets {
			sets[label].Add(uint32(row))
		}
	}
	return &Membership{sets: sets}
}

// NumBuckets returns the number of bucket sets.
func (m *Membership) NumBuckets() int {
	return len(m.sets)
}

// Rows returns a copy of the row set for bucket.
func (m *Membership) Rows(bucket int) *roaring.Bitmap {
	return m.sets[bucket].Clone()
}

// Contains reports whether row landed in bucket.
func (m *Membership) Contains(bucket int, row uint32) bool {
	return m.sets[bucket].Contains(row)
}

// Cardinality returns the number of rows in bucket.
func (m *Membership) Cardinality(bucket int) uint64 {
	return m.sets[bucket].GetCardinality()
}

// Counts returns the per-bucket row counts.
func (m *Membership) Counts() []uint64 {
	counts := make([]uint64, len(m.sets))
	for i, s := range m.sets {
		counts[i] = s.GetCardinality()
	}
	return counts
}

// Bucket returns the bucket containing row, or (-1, false) if no bucket does.
func (m *Membership) Bucket(row uint32) (int, bool) {
	for i, s := range m.sets {
		if s.Contains(row) {
			return i, true
		}
	}
	return -1, false
}

// Union returns the combined row set of the given buckets.
func (m *Membership) Union(buckets ...int) *roaring.Bitmap {
	out := roaring.New()
	for _, b := range buckets {
		out.Or(m.sets[b])
	}
	return out
}
