// Package kernels contains example numerical client bodies for the
// threading engine: a dense-matrix row rotation (shaped like the
// spherical-harmonic rotation kernels the engine was built for) and a
// batched FFT (shaped like the FFT-batch kernels mentioned alongside
// them). Both are clients of the engine, not part of it, calling
// ExecStatic/ExecDynamic and pulling work through Scheduler.GetNext
// exactly as any other user of the package would.
package kernels

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/exascience/parasched/threading"
)

// RotateRows rotates each row of m, treated as a sequence of (x, y)
// pairs across its columns, by theta radians in place. m's column
// count must be even.
//
// The rows are partitioned across nthreads workers with ExecStatic:
// rotation is uniform cost per row, so a balanced block-cyclic split
// is the right policy for it, unlike data-dependent workloads such as
// BatchMagnitudeSpectrum in fft.go. nthreads==0 uses
// threading.GetDefaultNThreads().
func RotateRows(m *mat.Dense, theta float64, nthreads int) error {
	rows, cols := m.Dims()
	if cols%2 != 0 {
		panic("kernels: RotateRows requires an even number of columns")
	}
	sin, cos := math.Sin(theta), math.Cos(theta)
	return threading.ExecStatic(uint64(rows), nthreads, 0, func(sched threading.Scheduler) {
		for r := sched.GetNext(); !r.Empty(); r = sched.GetNext() {
			for row := r.Lo; row < r.Hi; row++ {
				for c := 0; c < cols; c += 2 {
					x, y := m.At(int(row), c), m.At(int(row), c+1)
					m.Set(int(row), c, x*cos-y*sin)
					m.Set(int(row), c+1, x*sin+y*cos)
				}
			}
		}
	})
}
