//go:build threading_nothreads
// +build threading_nothreads

package threading

// This file implements the compile-time no-threading switch called
// for in the design: built with the threading_nothreads tag, every
// driver entry point executes body once on the calling goroutine with
// a trivial Scheduler reporting NumThreads()==1, ThreadNum()==0.
// Behavior is observationally identical to the threaded build for any
// client that only uses the Scheduler interface, never the pool.

type noThreadScheduler struct {
	remaining uint64
}

func (s *noThreadScheduler) NumThreads() int { return 1 }
func (s *noThreadScheduler) ThreadNum() int  { return 0 }

func (s *noThreadScheduler) GetNext() Range {
	if s.remaining == 0 {
		return Range{}
	}
	r := Range{0, s.remaining}
	s.remaining = 0
	return r
}

func ExecSingle(nwork uint64, body func(Scheduler)) error {
	body(&noThreadScheduler{remaining: nwork})
	return nil
}

func ExecStatic(nwork uint64, _, _ int, body func(Scheduler)) error {
	body(&noThreadScheduler{remaining: nwork})
	return nil
}

func ExecDynamic(nwork uint64, _, _ int, body func(Scheduler)) error {
	body(&noThreadScheduler{remaining: nwork})
	return nil
}

func ExecGuided(nwork uint64, _, _ int, _ float64, body func(Scheduler)) error {
	body(&noThreadScheduler{remaining: nwork})
	return nil
}

func ExecParallel(_ int, body func(Scheduler)) error {
	body(&noThreadScheduler{remaining: 1})
	return nil
}
