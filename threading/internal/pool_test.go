package internal

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestPoolDispatchesAllJobs(t *testing.T) {
	p := NewPool(4)
	defer p.Shutdown()

	const n = 64
	var wg sync.WaitGroup
	var count int64
	wg.Add(n)
	for i := 0; i < n; i++ {
		if err := p.Submit(func() {
			atomic.AddInt64(&count, 1)
			wg.Done()
		}); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}
	wg.Wait()
	if got := atomic.LoadInt64(&count); got != n {
		t.Fatalf("count = %d, want %d", got, n)
	}
}

func TestPoolSubmitAfterShutdown(t *testing.T) {
	p := NewPool(2)
	p.Shutdown()
	if err := p.Submit(func() {}); err != ErrShutdown {
		t.Fatalf("Submit after shutdown: got %v, want ErrShutdown", err)
	}
}

func TestPoolIdempotentShutdown(t *testing.T) {
	p := NewPool(2)
	p.Shutdown()
	p.Shutdown() // must not block or panic
}

func TestPoolRestartAfterShutdown(t *testing.T) {
	p := NewPool(2)
	p.Shutdown()
	p.Restart()
	defer p.Shutdown()

	done := make(chan struct{})
	if err := p.Submit(func() { close(done) }); err != nil {
		t.Fatalf("Submit after restart: %v", err)
	}
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job never ran after restart")
	}
}

func TestPoolOverflowQueueDrained(t *testing.T) {
	// More jobs than workers: some must land on the overflow queue and
	// still run once a worker frees up.
	p := NewPool(2)
	defer p.Shutdown()

	const n = 32
	release := make(chan struct{})
	var started int32
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		if err := p.Submit(func() {
			if atomic.AddInt32(&started, 1) <= 2 {
				<-release
			}
			wg.Done()
		}); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}
	close(release)
	wg.Wait()
}
