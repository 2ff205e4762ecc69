// Package parallel spreads independent units of array work, such as the batch
// slices of a batched matmul, across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Maximum number of worker goroutines.
	MinChunkSize int  // Minimum units per goroutine.
}

// DefaultConfig returns defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 4,
	}
}

// Sequential returns a config that always runs on the calling goroutine.
func Sequential() Config {
	return Config{Enabled: false, NumWorkers: 1, MinChunkSize: 1}
}

// Workers returns how many goroutines For uses for n units.
func (c Config) Workers(n int) int {
	if !c.Enabled || c.NumWorkers <= 1 || n < 2*max(c.MinChunkSize, 1) {
		return 1
	}
	return min(c.NumWorkers, n/max(c.MinChunkSize, 1))
}

// For executes f(i) for i in [0, n) and returns once every call finished.
// Units are split into contiguous chunks, one per worker. f must only write
// state owned by unit i.
func For(n int, f func(i int), cfg Config) {
	workers := cfg.Workers(n)
	if workers <= 1 {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := (n + workers - 1) / workers
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
