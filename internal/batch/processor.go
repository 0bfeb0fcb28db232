// Package batch validates directories of skeleton archives on a worker
// pool.
package batch

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"ozz-skel-runtime/internal/buffer"
	"ozz-skel-runtime/internal/skeleton"
)

// Result holds the outcome of decoding one archive.
type Result struct {
	Path      string
	NumJoints int
	Error     string
}

// Ok reports whether the archive decoded cleanly.
func (r Result) Ok() bool { return r.Error == "" }

// Scan walks dir and returns the paths of all skeleton archives, plain or
// compressed.
func Scan(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".ozz") || strings.HasSuffix(path, ".ozz.zst") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("batch: scan %s: %w", dir, err)
	}
	return paths, nil
}

// Run decodes every archive using a pool of workers and returns one
// result per path, in input order. Results are collected through a
// lock-guarded shared buffer; a progress line is printed every 2 seconds
// via progress (pass nil to disable).
func Run(workers int, paths []string, progress func(done, total int64)) []Result {
	total := len(paths)
	if workers <= 0 {
		workers = 1
	}

	results := buffer.NewLock(make([]Result, total))
	var processed atomic.Int64

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if progress != nil {
					progress(processed.Load(), int64(total))
				}
			}
		}
	}()

	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				r := processOne(paths[idx])
				_ = results.WithMut(func(rs []Result) error {
					rs[idx] = r
					return nil
				})
				processed.Add(1)
			}
		}()
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(done)

	view, err := results.Acquire()
	if err != nil {
		// Only reachable if a worker poisoned the buffer, which WithMut
		// above cannot do without panicking first.
		panic(err)
	}
	defer view.Release()
	out := make([]Result, total)
	copy(out, view.Data())
	return out
}

func processOne(path string) Result {
	s, err := skeleton.FromPath(path)
	if err != nil {
		return Result{Path: path, Error: err.Error()}
	}
	return Result{Path: path, NumJoints: s.NumJoints()}
}
