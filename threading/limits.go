package threading

import (
	"sync/atomic"

	"github.com/exascience/parasched/threading/internal"
)

var defaultNThreads = int64(internal.MaxThreads())

// GetDefaultNThreads returns the number of workers a driver entry
// point uses when its caller passes nthreads == 0. It is a plain
// atomic load: no consumer depends on happens-before ordering from
// SetDefaultNThreads.
func GetDefaultNThreads() int {
	return int(atomic.LoadInt64(&defaultNThreads))
}

// SetDefaultNThreads changes the process-wide default, clamped to at
// least 1.
func SetDefaultNThreads(n int) {
	if n < 1 {
		n = 1
	}
	atomic.StoreInt64(&defaultNThreads, int64(n))
}

// MaxThreads returns the hardware concurrency this process was
// started with. Unlike GetDefaultNThreads, it never changes.
func MaxThreads() int {
	return internal.MaxThreads()
}
