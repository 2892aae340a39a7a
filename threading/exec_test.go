package threading_test

import (
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/exascience/parasched/threading"
)

func collect(sched threading.Scheduler) []uint64 {
	var out []uint64
	for r := sched.GetNext(); !r.Empty(); r = sched.GetNext() {
		for i := r.Lo; i < r.Hi; i++ {
			out = append(out, i)
		}
	}
	return out
}

func TestExecStaticCoverage(t *testing.T) {
	var mu sync.Mutex
	var all []uint64
	err := threading.ExecStatic(100, 4, 0, func(sched threading.Scheduler) {
		idx := collect(sched)
		mu.Lock()
		all = append(all, idx...)
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("ExecStatic: %v", err)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	if len(all) != 100 {
		t.Fatalf("got %d indices, want 100", len(all))
	}
	for i, v := range all {
		if v != uint64(i) {
			t.Fatalf("all[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestExecStaticPerWorkerChunks(t *testing.T) {
	want := map[int]threading.Range{
		0: {Lo: 0, Hi: 3},
		1: {Lo: 3, Hi: 6},
		2: {Lo: 6, Hi: 9},
		3: {Lo: 9, Hi: 10},
	}
	var mu sync.Mutex
	got := make(map[int]threading.Range)
	err := threading.ExecStatic(10, 4, 3, func(sched threading.Scheduler) {
		r := sched.GetNext()
		mu.Lock()
		got[sched.ThreadNum()] = r
		mu.Unlock()
		if second := sched.GetNext(); !second.Empty() {
			t.Errorf("worker %d got a second chunk: %v", sched.ThreadNum(), second)
		}
	})
	if err != nil {
		t.Fatalf("ExecStatic: %v", err)
	}
	for id, r := range want {
		if got[id] != r {
			t.Errorf("worker %d: got %v, want %v", id, got[id], r)
		}
	}
}

func TestExecDynamicCoverage(t *testing.T) {
	var mu sync.Mutex
	var all []uint64
	err := threading.ExecDynamic(1000, 8, 16, func(sched threading.Scheduler) {
		idx := collect(sched)
		mu.Lock()
		all = append(all, idx...)
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("ExecDynamic: %v", err)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	if len(all) != 1000 {
		t.Fatalf("got %d indices, want 1000", len(all))
	}
	for i, v := range all {
		if v != uint64(i) {
			t.Fatalf("all[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestExecParallelThreadNums(t *testing.T) {
	var mu sync.Mutex
	var ids []int
	err := threading.ExecParallel(6, func(sched threading.Scheduler) {
		mu.Lock()
		ids = append(ids, sched.ThreadNum())
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("ExecParallel: %v", err)
	}
	sort.Ints(ids)
	want := []int{0, 1, 2, 3, 4, 5}
	if len(ids) != len(want) {
		t.Fatalf("got %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("got %v, want %v", ids, want)
		}
	}
}

func TestExecStaticPropagatesOneError(t *testing.T) {
	// A panic with a non-error value (a bare string, a struct, ...)
	// is not something threadMap can return as an error: it re-raises
	// it on the caller's goroutine instead, matching the first-error,
	// first-panic distinction threadMap's doc comment describes.
	// Panicking with an error value is what turns that into a regular
	// returned error.
	boom := errors.New("boom at 42")
	var calls int32
	err := threading.ExecStatic(100, 4, 0, func(sched threading.Scheduler) {
		atomic.AddInt32(&calls, 1)
		for r := sched.GetNext(); !r.Empty(); r = sched.GetNext() {
			for i := r.Lo; i < r.Hi; i++ {
				if i == 42 {
					panic(boom)
				}
			}
		}
	})
	if err == nil {
		t.Fatal("expected an error to be propagated")
	}

	// The pool must remain usable after a worker panic.
	err = threading.ExecStatic(10, 2, 0, func(sched threading.Scheduler) {
		collect(sched)
	})
	if err != nil {
		t.Fatalf("ExecStatic after a prior panic: %v", err)
	}
}

func TestExecSingleInlinesOnCaller(t *testing.T) {
	done := false
	err := threading.ExecSingle(5, func(sched threading.Scheduler) {
		if sched.NumThreads() != 1 || sched.ThreadNum() != 0 {
			t.Fatalf("unexpected scheduler identity: %d/%d", sched.NumThreads(), sched.ThreadNum())
		}
		idx := collect(sched)
		if len(idx) != 5 {
			t.Fatalf("got %d indices, want 5", len(idx))
		}
		done = true
	})
	if err != nil {
		t.Fatalf("ExecSingle: %v", err)
	}
	if !done {
		t.Fatal("body never ran")
	}
}
