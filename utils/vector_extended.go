package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V *mat.VecDense
}

// NewVector allocates a vector of length N. Optional data is used as the
// backing store without copying.
func NewVector(N int, dataO ...[]float64) Vector {
	if len(dataO) != 0 {
		if len(dataO[0]) != N {
			err := fmt.Errorf("mismatch in allocation: NewVector N = %v, len(data[0]) = %v", N, len(dataO[0]))
			panic(err)
		}
		return Vector{mat.NewVecDense(N, dataO[0])}
	}
	return Vector{mat.NewVecDense(N, make([]float64, N))}
}

func NewVectorConstant(N int, val float64) Vector {
	return NewVector(N, ConstArray(N, val))
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return v.V.Len() }

func (v Vector) Data() []float64 { return v.V.RawVector().Data }

func (v Vector) Copy() Vector {
	var (
		N    = v.Len()
		data = make([]float64, N)
	)
	for i := 0; i < N; i++ {
		data[i] = v.V.AtVec(i)
	}
	return NewVector(N, data)
}

// Chainable (extended) methods, all change the receiver
func (v Vector) Scale(a float64) Vector { v.V.ScaleVec(a, v.V); return v }

func (v Vector) POW(p int) Vector {
	var (
		data = v.V.RawVector().Data
	)
	for i, val := range data {
		data[i] = POW(val, p)
	}
	return v
}

func (v Vector) Print(msgI ...string) (o string) {
	var (
		name = ""
	)
	if len(msgI) != 0 {
		name = msgI[0]
	}
	if len(name) != 0 {
		o = fmt.Sprintf("%s = %v\n", name, mat.Formatted(v.V.T(), mat.Squeeze()))
	} else {
		o = fmt.Sprintf("%v\n", mat.Formatted(v.V.T(), mat.Squeeze()))
	}
	return
}
