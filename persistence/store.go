package persistence

import (
	"bytes"
	"context"
	"fmt"

	"github.com/hupe1980/bucketize/blobstore"
)

// SaveToStore serializes a model and writes it to a blobstore backend.
func SaveToStore(ctx context.Context, store blobstore.BlobStore, name string, m *Model, optFns ...func(*Options)) error {
	var buf bytes.Buffer
	if err := Save(&buf, m, optFns...); err != nil {
		return err
	}
	if err := store.Put(ctx, name, buf.Bytes()); err != nil {
		return fmt.Errorf("put model %q: %w", name, err)
	}
	return nil
}

// LoadFromStore reads and deserializes a model from a blobstore backend.
func LoadFromStore(ctx context.Context, store blobstore.BlobStore, name string) (*Model, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("open model %q: %w", name, err)
	}
	defer func() { _ = blob.Close() }()

	data, err := blobstore.ReadAll(ctx, blob)
	if err != nil {
		return nil, fmt.Errorf("read model %q: %w", name, err)
	}
	return Load(bytes.NewReader(data))
}
