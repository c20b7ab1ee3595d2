package nv12

import (
	"runtime"
	"sync"
)

// ParallelConfig controls how conversion blocks are spread across goroutines.
type ParallelConfig struct {
	// NumWorkers is the number of worker goroutines. 0 means runtime.GOMAXPROCS(0).
	NumWorkers int

	// GrainSize is the minimum blocks per worker before parallelizing.
	// If total blocks < GrainSize * NumWorkers, the conversion runs sequentially.
	GrainSize int
}

// DefaultParallelConfig returns the default parallel configuration.
func DefaultParallelConfig() ParallelConfig {
	return ParallelConfig{
		NumWorkers: 0,
		GrainSize:  4,
	}
}

var (
	parallelConfig   = DefaultParallelConfig()
	parallelConfigMu sync.RWMutex
)

// SetParallelConfig sets the global parallel configuration. It applies to
// conversions started after the call.
func SetParallelConfig(config ParallelConfig) {
	parallelConfigMu.Lock()
	defer parallelConfigMu.Unlock()
	parallelConfig = config
}

// GetParallelConfig returns the current parallel configuration.
func GetParallelConfig() ParallelConfig {
	parallelConfigMu.RLock()
	defer parallelConfigMu.RUnlock()
	return parallelConfig
}

func effectiveWorkers(config ParallelConfig) int {
	if config.NumWorkers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return config.NumWorkers
}

// parallelFor runs fn(i) for i in [0, n), splitting the index range into one
// contiguous chunk per worker. Small ranges run sequentially on the calling
// goroutine. fn instances write to disjoint output regions, so no
// synchronization beyond the final join is needed.
func parallelFor(n int, fn func(i int)) {
	config := GetParallelConfig()
	numWorkers := effectiveWorkers(config)

	if n <= config.GrainSize*numWorkers || numWorkers == 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := (n + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			break
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				fn(i)
			}
		}(start, end)
	}

	wg.Wait()
}
