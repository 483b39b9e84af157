package mdblog

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"github.com/alnah/go-mdblog/internal/post"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps parser goroutines; parsing is disk and CPU bound
	// and gains little past this.
	MaxPoolSize = 8

	// cpuDivisor leaves headroom for the rest of the process.
	cpuDivisor = 2
)

// ResolvePoolSize determines the number of parse workers.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by CLIs.
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers.
	n := runtime.GOMAXPROCS(0) / cpuDivisor
	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}

type parseResult struct {
	post *post.Post
	err  error
}

// parseBatch parses files (relative to root) concurrently. Each worker owns
// its parser. Results keep the input order; every failure is reported, in
// input order, joined into one error.
func parseBatch(ctx context.Context, root string, files []string, workers int, newParser func() *post.Parser) ([]*post.Post, error) {
	if len(files) == 0 {
		return nil, ctx.Err()
	}

	concurrency := min(ResolvePoolSize(workers), len(files))
	results := make([]parseResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			parser := newParser()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx].err = ctx.Err()
					continue
				}
				results[idx].post, results[idx].err = parser.Parse(root, files[idx])
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	posts := make([]*post.Post, 0, len(files))
	var errs []error
	for _, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		posts = append(posts, r.post)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return posts, nil
}
