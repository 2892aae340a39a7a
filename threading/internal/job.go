// Package internal implements the worker pool that backs the
// threading package: the fixed-size set of long-lived goroutines,
// their shared overflow queue, and the latch used to wait for one
// parallel region to finish.
//
// Nothing here is part of the public API; client code never imports
// this package directly.
package internal

// A Job is a zero-argument, no-result unit of work accepted by a
// Pool. It is the Go realization of a type-erased closure: Go already
// has first-class function values, so Job is a named type over one
// rather than an interface with a single Run method.
type Job func()
