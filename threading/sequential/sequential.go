/*
Package sequential provides a serial reference implementation of the
range-partitioning idioms threading's parallel drivers expose: a
single RangeFunc, invoked once per batch in increasing order, covering
[low, high) exactly once.

It mirrors conceptually what the threading_nothreads build tag reduces
client-visible behavior to. Neither that build nor threading/kernels'
tests import it; the kernels' tests compute their serial references
inline. It is not intended to be faster than a plain loop; use it for
testing and debugging, not production code.
*/
package sequential

import "fmt"

// Range divides [low, high) into n batches and invokes f once per
// batch in increasing order. n<=0 is treated as a single batch
// covering the whole range.
//
// Range panics if high < low.
func Range(low, high, n int, f func(low, high int)) {
	if high < low {
		panic(fmt.Sprintf("invalid range: %v:%v", low, high))
	}
	if n <= 0 || high == low {
		f(low, high)
		return
	}
	size := high - low
	if n > size {
		n = size
	}
	batchSize := ((size - 1) / n) + 1
	for lo := low; lo < high; lo += batchSize {
		hi := lo + batchSize
		if hi > high {
			hi = high
		}
		f(lo, hi)
	}
}

// RangeReduce divides [low, high) into n batches, invokes reduce once
// per batch in increasing order, and folds the results together with
// pair in the same order, left to right.
func RangeReduce(
	low, high, n int,
	reduce func(low, high int) interface{},
	pair func(x, y interface{}) interface{},
) interface{} {
	var (
		result interface{}
		first  = true
	)
	Range(low, high, n, func(lo, hi int) {
		v := reduce(lo, hi)
		if first {
			result = v
			first = false
		} else {
			result = pair(result, v)
		}
	})
	return result
}
