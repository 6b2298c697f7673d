package utils

import "sync"

var mu sync.Mutex

// ExecuteWithMutex serializes callers through a single process-wide
// lock. GDAL dataset handles are not safe for concurrent use.
func ExecuteWithMutex(fn func()) {
	mu.Lock()
	defer mu.Unlock()
	fn()
}
