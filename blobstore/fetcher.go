package blobstore

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Fetcher mirrors files between blob stores, typically from a remote archive
// to a local directory before bulk decoding. Parallelism is bounded and
// requests against the source can be rate limited, which matters when the
// source is a shared institutional mirror.
type Fetcher struct {
	src         BlobStore
	dst         BlobStore
	limiter     *rate.Limiter
	concurrency int
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithRateLimit caps source requests at n per second.
func WithRateLimit(n float64) FetcherOption {
	return func(f *Fetcher) {
		f.limiter = rate.NewLimiter(rate.Limit(n), 1)
	}
}

// WithFetchConcurrency sets the number of parallel transfers. Default 4.
func WithFetchConcurrency(n int) FetcherOption {
	return func(f *Fetcher) {
		if n > 0 {
			f.concurrency = n
		}
	}
}

// NewFetcher creates a Fetcher copying from src to dst.
func NewFetcher(src, dst BlobStore, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		src:         src,
		dst:         dst,
		concurrency: 4,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch copies every source blob under prefix to the destination and returns
// the copied names, sorted. The first failure cancels outstanding transfers.
func (f *Fetcher) Fetch(ctx context.Context, prefix string) ([]string, error) {
	names, err := f.src.List(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("list %q: %w", prefix, err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.concurrency)

	for _, name := range names {
		g.Go(func() error {
			if f.limiter != nil {
				if err := f.limiter.Wait(ctx); err != nil {
					return err
				}
			}
			data, done, err := ReadAll(ctx, f.src, name)
			if err != nil {
				return fmt.Errorf("fetch %q: %w", name, err)
			}
			err = f.dst.Put(ctx, name, data)
			if cerr := done(); cerr != nil && err == nil {
				err = cerr
			}
			if err != nil {
				return fmt.Errorf("store %q: %w", name, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return names, nil
}
