package bucketize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMembership_Counts(t *testing.T) {
	scores := []float64{1, 2, 3, 4, 100, 101, 102}
	bounds, labels, err := Segment(scores, 2)
	require.NoError(t, err)
	require.Len(t, bounds, 1)

	m := NewMembership(labels, 2)
	assert.Equal(t, 2, m.NumBuckets())
	assert.Equal(t, []uint64{4, 3}, m.Counts())
	assert.Equal(t, uint64(4), m.Cardinality(0))
	assert.Equal(t, uint64(3), m.Cardinality(1))
}

func TestMembership_RowLookup(t *testing.T) {
	m := NewMembership([]int{0, 1, 1, 0, 2}, 3)

	assert.True(t, m.Contains(0, 0))
	assert.True(t, m.Contains(0, 3))
	assert.True(t, m.Contains(1, 1))
	assert.True(t, m.Contains(2, 4))
	assert.False(t, m.Contains(1, 4))

	bucket, ok := m.Bucket(2)
	require.True(t, ok)
	assert.Equal(t, 1, bucket)

	_, ok = m.Bucket(99)
	assert.False(t, ok)
}

func TestMembership_OutOfRangeLabelsIgnored(t *testing.T) {
	m := NewMembership([]int{0, 5, -1, 0}, 2)
	assert.Equal(t, []uint64{2, 0}, m.Counts())
}

func TestMembership_Union(t *testing.T) {
	m := NewMembership([]int{0, 1, 2, 1, 0}, 3)

	u := m.Union(0, 2)
	assert.Equal(t, uint64(3), u.GetCardinality())
	assert.True(t, u.Contains(0))
	assert.True(t, u.Contains(2))
	assert.True(t, u.Contains(4))
}

func TestMembership_RowsIsCopy(t *testing.T) {
	m := NewMembership([]int{0, 0}, 1)

	rows := m.Rows(0)
	rows.Add(42)
	assert.False(t, m.Contains(0, 42))
}
