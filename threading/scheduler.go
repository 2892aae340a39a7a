package threading

// Scheduler is the per-worker handle that a parallel region's body
// receives. It is valid only for the duration of one invocation of
// that body; client code must not retain it past the call.
//
// GetNext is the sole mechanism by which work is handed out. It is
// called by the body itself, not by the framework: the typical idiom
// is
//
//	for r := sched.GetNext(); !r.Empty(); r = sched.GetNext() {
//	    process(r)
//	}
//
// which lets the body keep private per-worker state alive across
// chunks without the framework storing anything on its behalf.
type Scheduler interface {
	// NumThreads returns the width of the current parallel region,
	// not the size of the underlying pool.
	NumThreads() int
	// ThreadNum returns the caller's 0-based worker index within the
	// current region.
	ThreadNum() int
	// GetNext pulls the next subrange assigned to this worker. It
	// returns the empty Range once this worker's share of the
	// iteration space is exhausted.
	GetNext() Range
}

// schedulerView is the concrete Scheduler handed to one worker's
// invocation of a region's body. It borrows its distribution and must
// not outlive the call that constructed it.
type schedulerView struct {
	dist   *distribution
	thread int
}

func (s *schedulerView) NumThreads() int { return s.dist.nthreads }
func (s *schedulerView) ThreadNum() int  { return s.thread }
func (s *schedulerView) GetNext() Range  { return s.dist.getNext(s.thread) }
