package blobstore

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimitedStore wraps a BlobStore and budgets write throughput.
//
// Useful when model snapshots share an uplink with latency-sensitive
// traffic. Reads are not limited; model files are small and read rarely.
type RateLimitedStore struct {
	inner   BlobStore
	limiter *rate.Limiter
}

// NewRateLimitedStore creates a write-limited view of inner.
// bytesPerSec caps sustained write throughput; burst is the largest single
// write that can pass without being split (defaults to bytesPerSec if <= 0).
func NewRateLimitedStore(inner BlobStore, bytesPerSec int, burst int) *RateLimitedStore {
	if burst <= 0 {
		burst = bytesPerSec
	}
	return &RateLimitedStore{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(bytesPerSec), burst),
	}
}

func (s *RateLimitedStore) wait(ctx context.Context, n int) error {
	burst := s.limiter.Burst()
	for n > 0 {
		chunk := n
		if chunk > burst {
			chunk = burst
		}
		if err := s.limiter.WaitN(ctx, chunk); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}

func (s *RateLimitedStore) Open(ctx context.Context, name string) (Blob, error) {
	return s.inner.Open(ctx, name)
}

func (s *RateLimitedStore) Create(ctx context.Context, name string) (WritableBlob, error) {
	w, err := s.inner.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	return &rateLimitedBlob{inner: w, store: s, ctx: ctx}, nil
}

func (s *RateLimitedStore) Put(ctx context.Context, name string, data []byte) error {
	if err := s.wait(ctx, len(data)); err != nil {
		return err
	}
	return s.inner.Put(ctx, name, data)
}

func (s *RateLimitedStore) Delete(ctx context.Context, name string) error {
	return s.inner.Delete(ctx, name)
}

func (s *RateLimitedStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

// rateLimitedBlob throttles streaming writes against the store's limiter.
type rateLimitedBlob struct {
	inner WritableBlob
	store *RateLimitedStore
	ctx   context.Context
}

func (b *rateLimitedBlob) Write(p []byte) (int, error) {
	if err := b.store.wait(b.ctx, len(p)); err != nil {
		return 0, err
	}
	return b.inner.Write(p)
}

func (b *rateLimitedBlob) Sync() error {
	return b.inner.Sync()
}

func (b *rateLimitedBlob) Close() error {
	return b.inner.Close()
}
