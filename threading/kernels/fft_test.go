package kernels

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/mat"
)

func TestBatchMagnitudeSpectrumMatchesSequential(t *testing.T) {
	const rows, cols = 37, 16

	signal := mat.NewDense(rows, cols, nil)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			signal.Set(r, c, math.Sin(float64(r+1)*float64(c)*0.3))
		}
	}

	want := mat.NewDense(rows, cols, nil)
	fft := fourier.NewFFT(cols)
	row := make([]float64, cols)
	for r := 0; r < rows; r++ {
		mat.Row(row, r, signal)
		coeffs := fft.Coefficients(nil, row)
		for c := 0; c < cols; c++ {
			var v complex128
			if c < len(coeffs) {
				v = coeffs[c]
			} else {
				v = coeffs[cols-c]
			}
			want.Set(r, c, math.Hypot(real(v), imag(v)))
		}
	}

	got, err := BatchMagnitudeSpectrum(signal, 4, 3)
	if err != nil {
		t.Fatalf("BatchMagnitudeSpectrum: %v", err)
	}

	if !floats.EqualApprox(want.RawMatrix().Data, got.RawMatrix().Data, 1e-9) {
		t.Fatalf("parallel spectrum diverged from sequential reference")
	}
}
