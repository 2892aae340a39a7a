package threading

import "testing"

func TestStaticDistributionDeterministic(t *testing.T) {
	// execStatic(nwork=10, nthreads=4, chunk=3): worker 0 [0,3), worker
	// 1 [3,6), worker 2 [6,9), worker 3 [9,10), nobody gets a second
	// chunk.
	dist := newStaticDistribution(10, 4, 3)
	want := []Range{{0, 3}, {3, 6}, {6, 9}, {9, 10}}
	for i, w := range want {
		if got := dist.getNext(i); got != w {
			t.Errorf("worker %d: got %v, want %v", i, got, w)
		}
		if got := dist.getNext(i); !got.Empty() {
			t.Errorf("worker %d: expected no second chunk, got %v", i, got)
		}
	}
}

func TestStaticDistributionDefaultChunk(t *testing.T) {
	// execStatic(nwork=100, nthreads=4, chunk=0): one chunk of 25 per
	// worker.
	dist := newStaticDistribution(100, 4, 0)
	want := []Range{{0, 25}, {25, 50}, {50, 75}, {75, 100}}
	for i, w := range want {
		if got := dist.getNext(i); got != w {
			t.Errorf("worker %d: got %v, want %v", i, got, w)
		}
	}
}

func TestStaticDistributionCollapsesToSingle(t *testing.T) {
	// An explicit chunk of 4 covers all of nwork=4, so the region
	// collapses to SINGLE even though 8 threads were requested.
	dist := newStaticDistribution(4, 8, 4)
	if dist.mode != modeSingle {
		t.Fatalf("expected collapse to SINGLE, got mode %v", dist.mode)
	}
	if r := dist.getNext(0); r != (Range{0, 4}) {
		t.Fatalf("got %v, want [0,4)", r)
	}
}

func TestStaticDistributionCoverage(t *testing.T) {
	const nwork, nthreads = 97, 6
	dist := newStaticDistribution(nwork, nthreads, 0)
	seen := make([]bool, nwork)
	for i := 0; i < nthreads; i++ {
		for r := dist.getNext(i); !r.Empty(); r = dist.getNext(i) {
			for idx := r.Lo; idx < r.Hi; idx++ {
				if seen[idx] {
					t.Fatalf("index %d visited twice", idx)
				}
				seen[idx] = true
			}
		}
	}
	for i, ok := range seen {
		if !ok {
			t.Fatalf("index %d never visited", i)
		}
	}
}

func TestDynamicDistributionCollapsesToStatic(t *testing.T) {
	dist := newDynamicDistribution(10, 4, 16, 0)
	if dist.mode != modeStatic && dist.mode != modeSingle {
		t.Fatalf("expected collapse to STATIC/SINGLE, got mode %v", dist.mode)
	}
}

func TestDynamicDistributionFixedChunks(t *testing.T) {
	dist := newDynamicDistribution(1000, 8, 16, 0)
	var total uint64
	seen := make([]bool, 1000)
	for {
		r := dist.getNext(0)
		if r.Empty() {
			break
		}
		if r.Len() != 16 && r.Hi != 1000 {
			t.Errorf("expected fixed chunk of 16, got %v", r)
		}
		for i := r.Lo; i < r.Hi; i++ {
			if seen[i] {
				t.Fatalf("index %d visited twice", i)
			}
			seen[i] = true
		}
		total += r.Len()
	}
	if total != 1000 {
		t.Fatalf("total = %d, want 1000", total)
	}
}

func TestGuidedDistributionMonotonic(t *testing.T) {
	// execGuided(nwork=1000, nthreads=4, chunk_min=1, fact_max=1.0):
	// first chunk = floor(1.0*1000/4) = 250, second = floor(1.0*750/4) = 187.
	dist := newDynamicDistribution(1000, 4, 1, 1.0)
	first := dist.getNext(0)
	if first.Len() != 250 {
		t.Fatalf("first chunk = %d, want 250", first.Len())
	}
	second := dist.getNext(0)
	if second.Len() != 187 {
		t.Fatalf("second chunk = %d, want 187", second.Len())
	}
	last := second.Len()
	for {
		r := dist.getNext(0)
		if r.Empty() {
			break
		}
		if r.Len() > last {
			t.Fatalf("chunk size increased: %d after %d", r.Len(), last)
		}
		last = r.Len()
	}
}

func TestParallelDistributionSingletons(t *testing.T) {
	dist := newParallelDistribution(6)
	for i := 0; i < 6; i++ {
		want := Range{uint64(i), uint64(i + 1)}
		if got := dist.getNext(i); got != want {
			t.Errorf("worker %d: got %v, want %v", i, got, want)
		}
		if got := dist.getNext(i); !got.Empty() {
			t.Errorf("worker %d: expected no second chunk, got %v", i, got)
		}
	}
}

func TestSingleDistribution(t *testing.T) {
	dist := newSingleDistribution(42)
	if r := dist.getNext(0); r != (Range{0, 42}) {
		t.Fatalf("got %v, want [0,42)", r)
	}
	if r := dist.getNext(0); !r.Empty() {
		t.Fatalf("expected empty on second call, got %v", r)
	}
}
