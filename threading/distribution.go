package threading

import "sync"

type schedMode int

const (
	modeSingle schedMode = iota
	modeStatic
	modeDynamic
)

// distribution owns the per-parallel-region state: the scheduling
// mode, chunk size, per-worker cursors, and (for DYNAMIC/GUIDED) the
// shared cursor and its mutex. One distribution belongs to exactly
// one parallel region and is never shared across regions; it is
// stack-owned by the driver entry point that created it and only
// borrowed, non-owning, by the per-worker Scheduler views built over
// it.
//
// Fields not used by the current mode are left at their zero value;
// this mirrors the "undefined" fields called out in the design this
// type is ported from (ducc0's detail_threading::Distribution).
type distribution struct {
	mode     schedMode
	nthreads int
	nwork    uint64

	// STATIC
	chunk      uint64
	nextstart  []uint64

	// DYNAMIC / GUIDED
	mu      sync.Mutex
	cur     uint64
	factMax float64

	// SINGLE
	singleDone bool
}

func newSingleDistribution(nwork uint64) *distribution {
	return &distribution{mode: modeSingle, nthreads: 1, nwork: nwork}
}

// newStaticDistribution builds a STATIC distribution. nthreads==0
// selects GetDefaultNThreads(); chunksize==0 selects
// ceil(nwork/nthreads). If the resulting chunk size alone covers the
// whole range (chunk >= nwork) it collapses to SINGLE, exactly as
// spec'd.
func newStaticDistribution(nwork uint64, nthreads, chunksize int) *distribution {
	if nthreads == 0 {
		nthreads = GetDefaultNThreads()
	}
	n := uint64(nthreads)
	chunk := uint64(chunksize)
	if chunksize < 1 {
		chunk = ceilDiv(nwork, n)
	}
	if chunk >= nwork {
		return newSingleDistribution(nwork)
	}
	d := &distribution{
		mode:      modeStatic,
		nthreads:  nthreads,
		nwork:     nwork,
		chunk:     chunk,
		nextstart: make([]uint64, nthreads),
	}
	for i := range d.nextstart {
		d.nextstart[i] = uint64(i) * chunk
	}
	return d
}

// newDynamicDistribution builds a DYNAMIC (factMax==0) or GUIDED
// (factMax>0) distribution. If chunksizeMin*nthreads already covers
// nwork it collapses to STATIC, exactly as spec'd.
func newDynamicDistribution(nwork uint64, nthreads, chunksizeMin int, factMax float64) *distribution {
	if nthreads == 0 {
		nthreads = GetDefaultNThreads()
	}
	chunk := uint64(chunksizeMin)
	if chunksizeMin < 1 {
		chunk = 1
	}
	if chunk*uint64(nthreads) >= nwork {
		return newStaticDistribution(nwork, nthreads, 0)
	}
	return &distribution{
		mode:     modeDynamic,
		nthreads: nthreads,
		nwork:    nwork,
		chunk:    chunk,
		factMax:  factMax,
	}
}

// newParallelDistribution builds the distribution backing
// ExecParallel: nwork is redefined to nthreads and each worker sees
// exactly the singleton [i, i+1).
func newParallelDistribution(nthreads int) *distribution {
	if nthreads == 0 {
		nthreads = GetDefaultNThreads()
	}
	d := &distribution{
		mode:      modeStatic,
		nthreads:  nthreads,
		nwork:     uint64(nthreads),
		chunk:     1,
		nextstart: make([]uint64, nthreads),
	}
	for i := range d.nextstart {
		d.nextstart[i] = uint64(i)
	}
	return d
}

func ceilDiv(a uint64, b uint64) uint64 {
	if b == 0 {
		return a
	}
	return (a + b - 1) / b
}

// getNext hands out the next subrange for worker thread. It is the
// only place shared mutable state is touched, and only in DYNAMIC
// mode: STATIC mode has each worker write only its own nextstart
// entry, and SINGLE mode has a single worker by construction.
func (d *distribution) getNext(thread int) Range {
	switch d.mode {
	case modeSingle:
		if d.singleDone {
			return Range{}
		}
		d.singleDone = true
		return Range{0, d.nwork}

	case modeStatic:
		lo := d.nextstart[thread]
		if lo >= d.nwork {
			return Range{}
		}
		hi := lo + d.chunk
		if hi > d.nwork {
			hi = d.nwork
		}
		d.nextstart[thread] = lo + uint64(d.nthreads)*d.chunk
		return Range{lo, hi}

	case modeDynamic:
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.cur >= d.nwork {
			return Range{}
		}
		rem := d.nwork - d.cur
		guided := uint64(d.factMax * float64(rem) / float64(d.nthreads))
		sz := d.chunk
		if guided > sz {
			sz = guided
		}
		if sz > rem {
			sz = rem
		}
		lo := d.cur
		d.cur += sz
		return Range{lo, d.cur}
	}
	return Range{}
}
