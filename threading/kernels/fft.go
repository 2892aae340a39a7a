package kernels

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/mat"

	parasched "github.com/exascience/parasched"
	"github.com/exascience/parasched/threading"
)

// BatchMagnitudeSpectrum computes the magnitude spectrum of every row
// of rows (treated as a real-valued signal) and returns it as a new
// matrix with the same shape, one FFT per row.
//
// Real FFT costs scale with signal length, and production batches
// rarely have every row at the same length-driven cost, so this
// kernel is driven with ExecDynamic rather than ExecStatic, handing
// out work from a shared cursor instead of precomputed fixed shares.
// nthreads==0 uses threading.GetDefaultNThreads(); chunksizeMin
// bounds how many rows a worker claims per GetNext call.
func BatchMagnitudeSpectrum(rows *mat.Dense, nthreads, chunksizeMin int) (*mat.Dense, error) {
	nrows, ncols := rows.Dims()
	out := mat.NewDense(nrows, ncols, nil)

	if chunksizeMin == 0 {
		chunksizeMin = parasched.ComputeEffectiveThreshold(0, nrows, 2)
	}

	err := threading.ExecDynamic(uint64(nrows), nthreads, chunksizeMin, func(sched threading.Scheduler) {
		fft := fourier.NewFFT(ncols)
		signal := make([]float64, ncols)
		var coeffs []complex128
		for r := sched.GetNext(); !r.Empty(); r = sched.GetNext() {
			for row := r.Lo; row < r.Hi; row++ {
				mat.Row(signal, int(row), rows)
				coeffs = fft.Coefficients(coeffs, signal)
				for c := 0; c < ncols; c++ {
					var v complex128
					if c < len(coeffs) {
						v = coeffs[c]
					} else {
						// Real input's spectrum is conjugate-symmetric;
						// fourier.FFT only returns the first half plus one.
						v = coeffs[ncols-c]
					}
					out.Set(int(row), c, math.Hypot(real(v), imag(v)))
				}
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
