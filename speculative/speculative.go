/*
Package speculative provides functions for expressing parallel
algorithms, similar to the functions in package parallel, except that
the implementations here terminate early when they can.

And, Or, and RangeAnd/RangeOr terminate early if the final return value
is known early (if any of the predicates invoked in parallel returns
false for And, or true for Or).

ErrDo and ErrRangeReduce terminate early if any of the functions
invoked in parallel returns an error value different from nil.

Early termination of this kind is fundamentally incompatible with the
bulk-synchronous regions in parasched/threading, whose latch always
waits for every worker in a region regardless of any individual
result. This package therefore spawns its own goroutines directly,
the same way package parallel's combinators do, rather than routing
through threading.ExecParallel.

None of the functions described below stop the execution of invoked
functions that may still be running in parallel in case of early
termination. To ensure that compute resources are freed up in such
cases, user programs need to use some other safe form of communication
to gracefully stop their execution, for example the cancelation
feature of the context package of Go's standard library.
*/
package speculative

import (
	"fmt"
	"sync"

	"github.com/exascience/parasched/internal"
)

// ErrDo receives zero or more thunks and executes them in parallel.
//
// Each thunk is invoked in its own goroutine, and ErrDo returns either
// when all thunks have terminated, or when one or more thunks return
// an error value that is different from nil, returning the left-most
// of these error values without waiting for the other thunks to
// terminate.
func ErrDo(thunks ...func() error) (err error) {
	switch len(thunks) {
	case 0:
		return nil
	case 1:
		return thunks[0]()
	}
	var err0, err1 error
	var p interface{}
	var wg sync.WaitGroup
	wg.Add(1)
	switch len(thunks) {
	case 2:
		go func() {
			defer func() {
				p = internal.WrapPanic(recover())
				wg.Done()
			}()
			err1 = thunks[1]()
		}()
		err0 = thunks[0]()
	default:
		half := len(thunks) / 2
		go func() {
			defer func() {
				p = internal.WrapPanic(recover())
				wg.Done()
			}()
			err1 = ErrDo(thunks[half:]...)
		}()
		err0 = ErrDo(thunks[:half]...)
	}
	if err0 != nil {
		return err0
	}
	wg.Wait()
	if p != nil {
		panic(p)
	}
	return err1
}

// And receives zero or more predicates and executes them in parallel.
//
// Each predicate is invoked in its own goroutine, and And returns true
// if all of them return true, or returns false as soon as one of them
// returns false, without waiting for the other predicates to
// terminate.
func And(predicates ...func() bool) (result bool) {
	switch len(predicates) {
	case 0:
		return true
	case 1:
		return predicates[0]()
	}
	var b0, b1 bool
	var p interface{}
	var wg sync.WaitGroup
	wg.Add(1)
	switch len(predicates) {
	case 2:
		go func() {
			defer func() {
				p = internal.WrapPanic(recover())
				wg.Done()
			}()
			b1 = predicates[1]()
		}()
		b0 = predicates[0]()
	default:
		half := len(predicates) / 2
		go func() {
			defer func() {
				p = internal.WrapPanic(recover())
				wg.Done()
			}()
			b1 = And(predicates[half:]...)
		}()
		b0 = And(predicates[:half]...)
	}
	if !b0 {
		return false
	}
	wg.Wait()
	if p != nil {
		panic(p)
	}
	return b1
}

// Or receives zero or more predicates and executes them in parallel.
//
// Each predicate is invoked in its own goroutine, and Or returns false
// if all of them return false, or returns true as soon as one of them
// returns true, without waiting for the other predicates to
// terminate.
func Or(predicates ...func() bool) (result bool) {
	switch len(predicates) {
	case 0:
		return false
	case 1:
		return predicates[0]()
	}
	var b0, b1 bool
	var p interface{}
	var wg sync.WaitGroup
	wg.Add(1)
	switch len(predicates) {
	case 2:
		go func() {
			defer func() {
				p = internal.WrapPanic(recover())
				wg.Done()
			}()
			b1 = predicates[1]()
		}()
		b0 = predicates[0]()
	default:
		half := len(predicates) / 2
		go func() {
			defer func() {
				p = internal.WrapPanic(recover())
				wg.Done()
			}()
			b1 = Or(predicates[half:]...)
		}()
		b0 = Or(predicates[:half]...)
	}
	if b0 {
		return true
	}
	wg.Wait()
	if p != nil {
		panic(p)
	}
	return b1
}

// ErrAnd is And, except every predicate also returns an error value;
// ErrAnd additionally returns the left-most non-nil error, and treats
// a non-nil error the same as an early false for the purpose of
// terminating early.
func ErrAnd(predicates ...func() (bool, error)) (result bool, err error) {
	switch len(predicates) {
	case 0:
		return true, nil
	case 1:
		return predicates[0]()
	}
	var b0, b1 bool
	var err0, err1 error
	var p interface{}
	var wg sync.WaitGroup
	wg.Add(1)
	switch len(predicates) {
	case 2:
		go func() {
			defer func() {
				p = internal.WrapPanic(recover())
				wg.Done()
			}()
			b1, err1 = predicates[1]()
		}()
		b0, err0 = predicates[0]()
	default:
		half := len(predicates) / 2
		go func() {
			defer func() {
				p = internal.WrapPanic(recover())
				wg.Done()
			}()
			b1, err1 = ErrAnd(predicates[half:]...)
		}()
		b0, err0 = ErrAnd(predicates[:half]...)
	}
	if !b0 || err0 != nil {
		return b0, err0
	}
	wg.Wait()
	if p != nil {
		panic(p)
	}
	result = b0 && b1
	if err0 != nil {
		err = err0
	} else {
		err = err1
	}
	return
}

// ErrOr is Or, except every predicate also returns an error value;
// ErrOr additionally returns the left-most non-nil error, and treats
// a non-nil error the same as an early true for the purpose of
// terminating early.
func ErrOr(predicates ...func() (bool, error)) (result bool, err error) {
	switch len(predicates) {
	case 0:
		return false, nil
	case 1:
		return predicates[0]()
	}
	var b0, b1 bool
	var err0, err1 error
	var p interface{}
	var wg sync.WaitGroup
	wg.Add(1)
	switch len(predicates) {
	case 2:
		go func() {
			defer func() {
				p = internal.WrapPanic(recover())
				wg.Done()
			}()
			b1, err1 = predicates[1]()
		}()
		b0, err0 = predicates[0]()
	default:
		half := len(predicates) / 2
		go func() {
			defer func() {
				p = internal.WrapPanic(recover())
				wg.Done()
			}()
			b1, err1 = ErrOr(predicates[half:]...)
		}()
		b0, err0 = ErrOr(predicates[:half]...)
	}
	if b0 || err0 != nil {
		return b0, err0
	}
	wg.Wait()
	if p != nil {
		panic(p)
	}
	result = b0 || b1
	if err0 != nil {
		err = err0
	} else {
		err = err1
	}
	return
}

// RangeAnd receives a range, a batch count, and a range predicate,
// divides the range into batches, and invokes the range predicate for
// each of these batches in parallel, returning false as soon as one
// batch returns false without waiting for the others.
//
// RangeAnd panics if high < low, or if n < 0.
func RangeAnd(low, high, n int, f func(low, high int) bool) bool {
	var recur func(int, int, int) bool
	recur = func(low, high, n int) (result bool) {
		switch {
		case n == 1:
			return f(low, high)
		case n > 1:
			batchSize := ((high - low - 1) / n) + 1
			half := n / 2
			mid := low + batchSize*half
			if mid >= high {
				return f(low, high)
			}
			var b1 bool
			var p interface{}
			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer func() {
					p = internal.WrapPanic(recover())
					wg.Done()
				}()
				b1 = recur(mid, high, n-half)
			}()
			if !recur(low, mid, half) {
				return false
			}
			wg.Wait()
			if p != nil {
				panic(p)
			}
			return b1
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
	}
	return recur(low, high, internal.ComputeNofBatches(low, high, n))
}

// RangeOr receives a range, a batch count, and a range predicate,
// divides the range into batches, and invokes the range predicate for
// each of these batches in parallel, returning true as soon as one
// batch returns true without waiting for the others.
//
// RangeOr panics if high < low, or if n < 0.
func RangeOr(low, high, n int, f func(low, high int) bool) bool {
	var recur func(int, int, int) bool
	recur = func(low, high, n int) (result bool) {
		switch {
		case n == 1:
			return f(low, high)
		case n > 1:
			batchSize := ((high - low - 1) / n) + 1
			half := n / 2
			mid := low + batchSize*half
			if mid >= high {
				return f(low, high)
			}
			var b1 bool
			var p interface{}
			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer func() {
					p = internal.WrapPanic(recover())
					wg.Done()
				}()
				b1 = recur(mid, high, n-half)
			}()
			if recur(low, mid, half) {
				return true
			}
			wg.Wait()
			if p != nil {
				panic(p)
			}
			return b1
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
	}
	return recur(low, high, internal.ComputeNofBatches(low, high, n))
}

// ErrRangeReduce receives a range, a batch count, a range reducer, and
// a pair reducer, divides the range into batches, and invokes the
// range reducer for each of these batches in parallel. The results of
// the range reducer invocations are then combined by repeated
// invocations of the pair reducer.
//
// ErrRangeReduce returns either when all range and pair reducers have
// terminated, or as soon as one range reducer returns a non-nil
// error, without waiting for the others.
//
// ErrRangeReduce panics if high < low, or if n < 0.
func ErrRangeReduce(
	low, high, n int,
	reduce func(low, high int) (interface{}, error),
	pair func(x, y interface{}) (interface{}, error),
) (interface{}, error) {
	var recur func(int, int, int) (interface{}, error)
	recur = func(low, high, n int) (result interface{}, err error) {
		switch {
		case n == 1:
			return reduce(low, high)
		case n > 1:
			batchSize := ((high - low - 1) / n) + 1
			half := n / 2
			mid := low + batchSize*half
			if mid >= high {
				return reduce(low, high)
			}
			var left, right interface{}
			var err0, err1 error
			var p interface{}
			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer func() {
					p = internal.WrapPanic(recover())
					wg.Done()
				}()
				right, err1 = recur(mid, high, n-half)
			}()
			left, err0 = recur(low, mid, half)
			if err0 != nil {
				return nil, err0
			}
			wg.Wait()
			if p != nil {
				panic(p)
			}
			if err1 != nil {
				return nil, err1
			}
			return pair(left, right)
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
	}
	return recur(low, high, internal.ComputeNofBatches(low, high, n))
}
