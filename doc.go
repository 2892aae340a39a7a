// Package parasched provides functions and data structures for expressing
// parallel algorithms, together with the work-stealing-free, pull-scheduled
// engine in parasched/threading. While Go is primarily designed for concurrent
// programming, it is also usable to some extent for parallel programming, and
// this library provides convenience functionality to turn otherwise
// sequential algorithms into parallel algorithms, with the goal to improve
// performance.
//
// parasched provides the following subpackages:
//
// parasched/threading provides the underlying scheduler-driven execution
// engine: thread pool, work distribution policies, and the blocking
// ExecSingle/ExecStatic/ExecDynamic/ExecGuided/ExecParallel entry points.
//
// parasched/parallel provides simple functions for executing series of
// thunks or predicates, as well as thunks, predicates, or reducers over
// ranges in parallel, using recursive goroutine forking rather than
// parasched/threading's pool, since these functions recurse and the
// pool has no room for recursive regions to block inside one another.
//
// parasched/speculative provides speculative implementations of most of the
// functions from parasched/parallel. These implementations not only execute
// in parallel, but also attempt to terminate early as soon as the final
// result is known.
//
// parasched/sequential provides sequential implementations of all functions
// from parasched/parallel, for testing and debugging purposes.
//
// parasched/sort provides parallel sorting algorithms.
//
// parasched/sync provides an efficient parallel map implementation.
//
// parasched/threading/kernels provides example numerical clients of the
// engine built on gonum.
package parasched
