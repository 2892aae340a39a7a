//go:build !threading_nothreads
// +build !threading_nothreads

package threading

import (
	"sync"

	"github.com/exascience/parasched/internal"
	threadpool "github.com/exascience/parasched/threading/internal"
)

// ExecSingle runs body once on the calling goroutine if nthreads==1
// (always true for SINGLE), reporting nwork items through a trivial
// Scheduler. It exists so generic client code can use the Scheduler
// interface uniformly even for the degenerate, serial case.
func ExecSingle(nwork uint64, body func(Scheduler)) error {
	return threadMap(newSingleDistribution(nwork), body)
}

// ExecStatic partitions [0, nwork) into interleaved block-cyclic
// chunks of chunksize, one worker owning the subranges starting at
// i*chunksize, (i+nthreads)*chunksize, and so on.
//
// nthreads==0 selects GetDefaultNThreads(). chunksize==0 selects
// ceil(nwork/nthreads), i.e. one chunk per worker. If the chosen
// chunk size already covers the whole range, the region collapses to
// ExecSingle.
func ExecStatic(nwork uint64, nthreads, chunksize int, body func(Scheduler)) error {
	return threadMap(newStaticDistribution(nwork, nthreads, chunksize), body)
}

// ExecDynamic hands out fixed-size chunks of chunksizeMin from one
// shared cursor, for triangular or data-dependent workloads where
// ExecStatic's balanced partitioning would leave workers idle.
//
// If chunksizeMin*nthreads already covers nwork, the region collapses
// to ExecStatic.
func ExecDynamic(nwork uint64, nthreads, chunksizeMin int, body func(Scheduler)) error {
	return threadMap(newDynamicDistribution(nwork, nthreads, chunksizeMin, 0), body)
}

// ExecGuided is like ExecDynamic, except each chunk is sized to
// roughly factMax*remaining/nthreads, geometrically shrinking down to
// chunksizeMin (classic guided self-scheduling).
func ExecGuided(nwork uint64, nthreads, chunksizeMin int, factMax float64, body func(Scheduler)) error {
	return threadMap(newDynamicDistribution(nwork, nthreads, chunksizeMin, factMax), body)
}

// ExecParallel runs body once per worker in a region of nthreads
// workers, each one seeing exactly the singleton range [i, i+1). It
// is used for replicated work that a body identifies purely by
// ThreadNum(), not by dividing an iteration space.
func ExecParallel(nthreads int, body func(Scheduler)) error {
	return threadMap(newParallelDistribution(nthreads), body)
}

// threadMap is the shared driver: for nthreads==1 it inlines body on
// the caller; otherwise it submits nthreads jobs to the process pool,
// each building its own Scheduler view, and blocks on a latch until
// all of them finish. The first panic or error captured from any
// worker is the only one that escapes; the rest are swallowed because
// the latch must still count down to avoid deadlock. A captured panic
// whose value satisfies the error interface is returned as an
// ordinary error rather than re-raised; only a panic with a
// non-error value re-escapes via panic.
func threadMap(dist *distribution, body func(Scheduler)) error {
	if dist.nthreads == 1 {
		sched := &schedulerView{dist: dist, thread: 0}
		body(sched)
		return nil
	}

	pool := threadpool.GetPool()
	latch := threadpool.NewLatch(dist.nthreads)
	var (
		exMu  sync.Mutex
		first interface{}
	)

	for i := 0; i < dist.nthreads; i++ {
		i := i
		job := func() {
			defer latch.CountDown()
			defer func() {
				if p := recover(); p != nil {
					exMu.Lock()
					if first == nil {
						first = internal.WrapPanic(p)
					}
					exMu.Unlock()
				}
			}()
			sched := &schedulerView{dist: dist, thread: i}
			body(sched)
		}
		if err := pool.Submit(threadpool.Job(job)); err != nil {
			latch.CountDown()
			exMu.Lock()
			if first == nil {
				first = err
			}
			exMu.Unlock()
		}
	}

	latch.Wait()
	if first != nil {
		if err, ok := first.(error); ok {
			return err
		}
		panic(first)
	}
	return nil
}
