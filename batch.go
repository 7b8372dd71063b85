package honoka

import (
	"fmt"
	"runtime"
	"sync"
)

// BatchConfig controls parallel processing of independent asset files.
// Engines share no state, so files parallelize freely.
type BatchConfig struct {
	// MaxWorkers is the maximum number of worker goroutines.
	// If 0, defaults to runtime.NumCPU().
	MaxWorkers int

	// MinFilesForParallel is the minimum number of files to use parallel
	// processing. Below this threshold files are processed sequentially.
	// Defaults to 4.
	MinFilesForParallel int
}

// Validate checks if the batch configuration is valid.
func (c *BatchConfig) Validate() error {
	if c.MaxWorkers < 0 {
		return &ValidationError{Field: "MaxWorkers", Value: c.MaxWorkers, Message: "worker count cannot be negative"}
	}
	if c.MaxWorkers > 1024 {
		return &ValidationError{Field: "MaxWorkers", Value: c.MaxWorkers, Message: "worker count must not exceed 1024"}
	}
	if c.MinFilesForParallel < 0 {
		return &ValidationError{Field: "MinFilesForParallel", Value: c.MinFilesForParallel, Message: "threshold cannot be negative"}
	}
	return nil
}

// DefaultBatchConfig returns the default batch processing configuration.
func DefaultBatchConfig() BatchConfig {
	return BatchConfig{
		MaxWorkers:          runtime.NumCPU(),
		MinFilesForParallel: 4,
	}
}

// BatchError pairs a failed path with its error.
type BatchError struct {
	Path string
	Err  error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }

// RunBatch applies fn to every path using up to cfg.MaxWorkers goroutines
// and returns the failures in no particular order. fn must be safe to call
// concurrently for distinct paths; panics are captured and reported as
// errors rather than taking the process down.
func RunBatch(paths []string, cfg BatchConfig, fn func(path string) error) []BatchError {
	if len(paths) == 0 {
		return nil
	}

	numWorkers := cfg.MaxWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > len(paths) {
		numWorkers = len(paths)
	}

	minParallel := cfg.MinFilesForParallel
	if minParallel <= 0 {
		minParallel = 4
	}

	// Check if parallel processing is worth it
	if len(paths) < minParallel || numWorkers == 1 {
		var failures []BatchError
		for _, path := range paths {
			if err := runOne(path, fn); err != nil {
				failures = append(failures, BatchError{Path: path, Err: err})
			}
		}
		return failures
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures []BatchError
	)
	jobChan := make(chan string, len(paths))

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobChan {
				if err := runOne(path, fn); err != nil {
					mu.Lock()
					failures = append(failures, BatchError{Path: path, Err: err})
					mu.Unlock()
				}
			}
		}()
	}

	for _, path := range paths {
		jobChan <- path
	}
	close(jobChan)
	wg.Wait()

	return failures
}

// runOne invokes fn with panic capture.
func runOne(path string, fn func(string) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic processing %s: %v", path, r)
		}
	}()
	return fn(path)
}
