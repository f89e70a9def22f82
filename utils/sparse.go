package utils

import (
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// CSR is a read only compressed sparse row matrix, built once from a dense
// source and used for repeated matrix-vector products
type CSR struct {
	M *sparse.CSR
}

// NewCSR collects the non-zeros of A into a DOK and compresses them
func NewCSR(A mat.Matrix) (R CSR) {
	var (
		nr, nc = A.Dims()
		dok    = sparse.NewDOK(nr, nc)
	)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			if val := A.At(i, j); val != 0 {
				dok.Set(i, j, val)
			}
		}
	}
	R = CSR{
		M: dok.ToCSR(),
	}
	return
}

func (m CSR) Dims() (r, c int) { return m.M.Dims() }
func (m CSR) NNZ() int         { return m.M.NNZ() }

// MulVec returns m * v, visiting only the stored non-zeros of each row
func (m CSR) MulVec(v Vector) (R Vector) {
	var (
		raw   = m.M.RawMatrix()
		nr, _ = m.Dims()
		x     = v.V.RawVector()
	)
	R = NewVector(nr)
	r := R.Data()
	for i := 0; i < nr; i++ {
		var sum float64
		for ii := raw.Indptr[i]; ii < raw.Indptr[i+1]; ii++ {
			sum += raw.Data[ii] * x.Data[raw.Ind[ii]*x.Inc]
		}
		r[i] = sum
	}
	return
}
