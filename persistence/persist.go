package persistence

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hupe1980/bucketize/codec"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Options configures model serialization.
type Options struct {
	// Codec encodes the model payload. Defaults to codec.Default.
	Codec codec.Codec

	// Compression selects payload compression. Defaults to CompressionZstd.
	Compression Compression
}

// WithCodec sets the payload codec.
func WithCodec(c codec.Codec) func(*Options) {
	return func(o *Options) {
		if c != nil {
			o.Codec = c
		}
	}
}

// WithCompression sets the payload compression.
func WithCompression(c Compression) func(*Options) {
	return func(o *Options) {
		o.Compression = c
	}
}

// Save writes a model snapshot to w.
func Save(w io.Writer, m *Model, optFns ...func(*Options)) error {
	opts := Options{
		Codec:       codec.Default,
		Compression: CompressionZstd,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	name := opts.Codec.Name()
	if len(name) == 0 || len(name) > maxCodecNameLen {
		return fmt.Errorf("invalid codec name %q", name)
	}

	raw, err := opts.Codec.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal model: %w", err)
	}

	payload, compression, err := compress(raw, opts.Compression)
	if err != nil {
		return err
	}

	hdr := fileHeader{
		Magic:        MagicNumber,
		Version:      Version,
		Compression:  uint8(compression),
		CodecNameLen: uint8(len(name)),
		RawSize:      uint64(len(raw)),
		PayloadSize:  uint64(len(payload)),
		Checksum:     checksum(payload),
	}

	if err := binary.Write(w, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := io.WriteString(w, name); err != nil {
		return fmt.Errorf("write codec name: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}
	return nil
}

// Load reads a model snapshot from r, verifying checksum, format version,
// and codec before decoding.
func Load(r io.Reader) (*Model, error) {
	var hdr fileHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, ErrTruncated
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	if hdr.Magic != MagicNumber {
		return nil, ErrInvalidMagic
	}
	if hdr.Version != Version {
		return nil, ErrInvalidVersion
	}

	nameBuf := make([]byte, hdr.CodecNameLen)
	if _, err := io.ReadFull(r, nameBuf); err != nil {
		return nil, ErrTruncated
	}
	c, ok := codec.ByName(string(nameBuf))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, string(nameBuf))
	}

	payload := make([]byte, hdr.PayloadSize)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, ErrTruncated
	}

	if actual := checksum(payload); actual != hdr.Checksum {
		return nil, &ChecksumMismatchError{Expected: hdr.Checksum, Actual: actual}
	}

	raw, err := decompress(payload, Compression(hdr.Compression), hdr.RawSize)
	if err != nil {
		return nil, err
	}

	var m Model
	if err := c.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("unmarshal model: %w", err)
	}
	return &m, nil
}

// compress applies the requested compression; incompressible lz4 payloads
// fall back to plain storage so the file stays loadable.
func compress(raw []byte, c Compression) ([]byte, Compression, error) {
	switch c {
	case CompressionNone:
		return raw, CompressionNone, nil

	case CompressionZstd:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, 0, fmt.Errorf("zstd encoder: %w", err)
		}
		defer func() { _ = enc.Close() }()
		return enc.EncodeAll(raw, nil), CompressionZstd, nil

	case CompressionLZ4:
		var compressor lz4.Compressor
		buf := make([]byte, lz4.CompressBlockBound(len(raw)))
		n, err := compressor.CompressBlock(raw, buf)
		if err != nil {
			return nil, 0, fmt.Errorf("lz4 compress: %w", err)
		}
		if n == 0 || n >= len(raw) {
			// Incompressible block
			return raw, CompressionNone, nil
		}
		return buf[:n], CompressionLZ4, nil

	default:
		return nil, 0, ErrUnknownCompression
	}
}

func decompress(payload []byte, c Compression, rawSize uint64) ([]byte, error) {
	switch c {
	case CompressionNone:
		return payload, nil

	case CompressionZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("zstd decoder: %w", err)
		}
		defer dec.Close()
		raw, err := dec.DecodeAll(payload, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		return raw, nil

	case CompressionLZ4:
		raw := make([]byte, rawSize)
		n, err := lz4.UncompressBlock(payload, raw)
		if err != nil {
			return nil, fmt.Errorf("lz4 decompress: %w", err)
		}
		return raw[:n], nil

	default:
		return nil, ErrUnknownCompression
	}
}
