package persistence

import (
	"bytes"
	"context"
	"testing"

	"github.com/hupe1980/bucketize/blobstore"
	"github.com/hupe1980/bucketize/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModel() *Model {
	return &Model{
		Strategy:    "mse",
		NumBuckets:  4,
		Boundaries:  []float64{300.5, 580, 710.25},
		TotalCost:   123.456,
		TrainedRows: 10000,
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	compressions := map[string]Compression{
		"none": CompressionNone,
		"zstd": CompressionZstd,
		"lz4":  CompressionLZ4,
	}

	for name, compression := range compressions {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Save(&buf, testModel(), WithCompression(compression)))

			got, err := Load(&buf)
			require.NoError(t, err)
			assert.Equal(t, testModel(), got)
		})
	}
}

func TestSaveLoad_Codecs(t *testing.T) {
	for _, c := range []codec.Codec{codec.JSON{}, codec.GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Save(&buf, testModel(), WithCodec(c)))

			got, err := Load(&buf)
			require.NoError(t, err)
			assert.Equal(t, testModel(), got)
		})
	}
}

func TestLoad_InvalidMagic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, testModel()))

	data := buf.Bytes()
	data[0] ^= 0xFF

	_, err := Load(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrInvalidMagic)
}

func TestLoad_CorruptPayload(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, testModel(), WithCompression(CompressionNone)))

	data := buf.Bytes()
	data[len(data)-1] ^= 0xFF

	_, err := Load(bytes.NewReader(data))
	assert.True(t, IsChecksumMismatch(err), "expected checksum mismatch, got %v", err)
}

func TestLoad_Truncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, testModel()))

	data := buf.Bytes()

	_, err := Load(bytes.NewReader(data[:len(data)-5]))
	assert.ErrorIs(t, err, ErrTruncated)

	_, err = Load(bytes.NewReader(data[:10]))
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestSave_LZ4IncompressibleFallsBack(t *testing.T) {
	// A tiny payload does not compress; the file must still round-trip.
	m := &Model{Strategy: "mse", NumBuckets: 2, Boundaries: []float64{1}}

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, m, WithCompression(CompressionLZ4)))

	got, err := Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	require.NoError(t, SaveToStore(ctx, store, "models/prod.bkt", testModel()))

	got, err := LoadFromStore(ctx, store, "models/prod.bkt")
	require.NoError(t, err)
	assert.Equal(t, testModel(), got)

	names, err := store.List(ctx, "models/")
	require.NoError(t, err)
	assert.Equal(t, []string{"models/prod.bkt"}, names)
}

func TestStore_LoadMissing(t *testing.T) {
	_, err := LoadFromStore(context.Background(), blobstore.NewMemoryStore(), "missing.bkt")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
