package kernels

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestRotateRowsMatchesSequential(t *testing.T) {
	const rows, theta = 257, 0.37

	data := make([]float64, rows*2)
	for i := range data {
		data[i] = float64(i%13) - 6
	}

	want := mat.NewDense(rows, 2, append([]float64(nil), data...))
	sin, cos := math.Sin(theta), math.Cos(theta)
	for r := 0; r < rows; r++ {
		x, y := want.At(r, 0), want.At(r, 1)
		want.Set(r, 0, x*cos-y*sin)
		want.Set(r, 1, x*sin+y*cos)
	}

	got := mat.NewDense(rows, 2, append([]float64(nil), data...))
	if err := RotateRows(got, theta, 4); err != nil {
		t.Fatalf("RotateRows: %v", err)
	}

	if !floats.EqualApprox(want.RawMatrix().Data, got.RawMatrix().Data, 1e-12) {
		t.Fatalf("parallel rotation diverged from sequential reference")
	}
}

func TestRotateRowsRejectsOddColumns(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for odd column count")
		}
	}()
	m := mat.NewDense(3, 3, nil)
	RotateRows(m, 0.1, 1)
}
