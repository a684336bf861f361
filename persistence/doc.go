// Package persistence writes fitted bucketizer models as self-describing
// binary snapshots.
//
// A model file carries a fixed header (magic, format version, compression
// tag, codec name, CRC32 payload checksum) followed by the codec-encoded
// payload. Files are self-describing: the reader selects codec and
// decompressor from the header, so defaults can change without breaking
// old files.
//
// Snapshots go to any io.Writer, or to a blobstore backend (local disk, S3,
// MinIO) via SaveToStore/LoadFromStore.
package persistence
