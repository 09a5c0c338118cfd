package godmap

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/hupe1980/godmap/record"
	"golang.org/x/sync/errgroup"
)

// ReadFiles decodes multiple files in parallel. Each file owns its buffer
// and cursor so no synchronization is needed; results come back in input
// order and the first failure cancels the remaining work.
func ReadFiles(ctx context.Context, paths []string, opts ...Option) ([][]*record.Record, error) {
	o := applyOptions(opts)

	results := make([][]*record.Record, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			records, err := readFile(path, o)
			o.logger.LogRead(path, len(records), err)
			if err != nil {
				return err
			}
			results[i] = records
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		o.logger.LogBulkRead(len(paths), 1)
		return nil, err
	}
	o.logger.LogBulkRead(len(paths), 0)
	return results, nil
}

// ReadDir decodes every regular file in dir (non-recursive), in name order.
// It returns the paths alongside the per-file records.
func ReadDir(ctx context.Context, dir string, opts ...Option) ([]string, [][]*record.Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}

	var paths []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)

	results, err := ReadFiles(ctx, paths, opts...)
	if err != nil {
		return nil, nil, err
	}
	return paths, results, nil
}
