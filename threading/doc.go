/*
Package threading provides a parallel loop-execution engine: a
process-wide worker pool plus a family of iteration-space
partitioners ("schedulers") that drive data-parallel loops over a
contiguous range [0, N).

A parallel region is one call to ExecSingle, ExecStatic, ExecDynamic,
ExecGuided, or ExecParallel. Each constructs a distribution policy,
runs body once per worker, and blocks until every worker has
returned, re-raising the first error or panic any of them produced.
The body pulls its own work by repeatedly calling Scheduler.GetNext
until it returns the empty Range:

	err := threading.ExecStatic(uint64(len(rows)), 0, 0, func(sched threading.Scheduler) {
	    for r := sched.GetNext(); !r.Empty(); r = sched.GetNext() {
	        for i := r.Lo; i < r.Hi; i++ {
	            process(rows[i])
	        }
	    }
	})

See threading/kernels for runnable examples of numerical client code
built on top of this engine, and threading/sequential for a serial
reference implementation of the same range-partitioning idioms, useful
for testing and for the threading_nothreads build.
*/
package threading
