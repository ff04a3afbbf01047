// Package batch provides the higher-level, multi-file entry point
// spec.md §5 explicitly allows: "a caller may run multiple files in
// parallel at a higher level". The shaping engine itself is
// single-threaded per file (engine.FormatSource has no concurrency of
// its own); this package fans out across files using a bounded worker
// pool, grounded on the teacher's own fan-out-per-file compile driver
// (compiler.go) which uses golang.org/x/sync/errgroup the same way.
package batch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/shapewright/fmtcore/config"
	"github.com/shapewright/fmtcore/engine"
	"github.com/shapewright/fmtcore/synast"
)

// File pairs one compilation unit's source and pre-parsed tree with its
// name, the unit batch.FormatFiles fans out over.
type File struct {
	Name   string
	Source []byte
	Tree   *synast.File
}

// FileResult is one File's outcome, keyed back to its Name so callers
// can reassemble results regardless of completion order.
type FileResult struct {
	Name   string
	Result engine.Result
	Err    error
}

// FormatFiles formats every file in files concurrently, bounded to
// maxWorkers simultaneous formats (0 or negative means unbounded),
// skipping any file whose name matches an ignore pattern. Per spec.md
// §5, this concurrency exists only at this caller level: each
// individual engine.FormatSource call remains single-threaded and
// synchronous.
func FormatFiles(ctx context.Context, files []File, cfg config.Config, maxWorkers int) ([]FileResult, error) {
	results := make([]FileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	if maxWorkers > 0 {
		g.SetLimit(maxWorkers)
	}

	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			if engine.ShouldIgnore(f.Name, cfg.Ignore) {
				results[i] = FileResult{Name: f.Name}
				return nil
			}
			res, err := engine.FormatSource(f.Source, f.Name, cfg, f.Tree)
			results[i] = FileResult{Name: f.Name, Result: res, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
