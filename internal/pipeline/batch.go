package pipeline

import "context"

// FileResult pairs an input path with its assembly outcome.
type FileResult struct {
	Path   string
	Report *Report
	Err    error
}

// RunFiles assembles several independent input files, at most jobs at a time.
// Results keep the order of paths. Each run is single-threaded internally;
// only whole runs execute in parallel.
func (a *Assembler) RunFiles(ctx context.Context, paths []string, jobs int) []FileResult {
	if jobs < 1 {
		jobs = 1
	}
	results := make([]FileResult, len(paths))

	type work struct {
		idx  int
		path string
	}
	pool := newWorkerPool(ctx, jobs, len(paths), func(ctx context.Context, w work) {
		if err := ctx.Err(); err != nil {
			results[w.idx] = FileResult{Path: w.path, Err: err}
			return
		}
		rep, err := a.RunFile(w.path)
		results[w.idx] = FileResult{Path: w.path, Report: rep, Err: err}
	})
	for i, p := range paths {
		// Queue capacity equals len(paths); Submit cannot fail.
		pool.Submit(work{idx: i, path: p})
	}
	pool.Drain()
	return results
}
