package persistence

import "errors"

const (
	// MagicNumber identifies bucketize model files (ASCII: "BKT1")
	MagicNumber = 0x424B5431
	// Version is the current file format version (v1.0.0)
	Version = 0x00010000

	// maxCodecNameLen bounds the variable-length codec name field.
	maxCodecNameLen = 255
)

// Compression selects how the model payload is stored.
type Compression uint8

const (
	// CompressionNone stores the payload as-is.
	CompressionNone Compression = 0
	// CompressionZstd compresses the payload with zstd.
	CompressionZstd Compression = 1
	// CompressionLZ4 compresses the payload as a single lz4 block.
	CompressionLZ4 Compression = 2
)

var (
	ErrInvalidMagic       = errors.New("invalid magic number")
	ErrInvalidVersion     = errors.New("unsupported version")
	ErrUnknownCompression = errors.New("unknown compression")
	ErrUnknownCodec       = errors.New("unknown codec")
	ErrTruncated          = errors.New("truncated model file")
)

// fileHeader is the fixed-size portion of the model file header.
// The variable-length codec name follows it, then the payload.
type fileHeader struct {
	Magic        uint32
	Version      uint32
	Compression  uint8
	CodecNameLen uint8
	Reserved     [2]byte
	RawSize      uint64 // payload size after decompression
	PayloadSize  uint64 // payload size as stored
	Checksum     uint32 // CRC32 (IEEE) of the stored payload
}

// Model is the serializable state of a fitted bucketizer.
type Model struct {
	// Strategy names the bucketizer that produced the model
	// ("mse", "equal-width", "equal-frequency", "kmeans").
	Strategy string `json:"strategy"`

	// NumBuckets is the requested bucket count.
	NumBuckets int `json:"num_buckets"`

	// Boundaries are the fitted cut values, sorted ascending.
	// May hold fewer than NumBuckets-1 entries when cuts coincided.
	Boundaries []float64 `json:"boundaries"`

	// TotalCost is the total within-bucket squared error at fit time,
	// where the strategy computes it (0 otherwise).
	TotalCost float64 `json:"total_cost,omitempty"`

	// TrainedRows is the input length at fit time.
	TrainedRows int `json:"trained_rows,omitempty"`
}
