package utils

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Eigenvalues returns the real parts of the eigenvalues of a square matrix,
// sorted ascending. ok is false if the factorization fails.
func (m Matrix) Eigenvalues() (values []float64, ok bool) {
	var (
		eigen mat.Eigen
	)
	if !m.IsSquare() {
		panic("Eigenvalues only defined for square matrices")
	}
	if !eigen.Factorize(m.M, mat.EigenNone) {
		return
	}
	cValues := eigen.Values(nil)
	values = make([]float64, len(cValues))
	for i, val := range cValues {
		values[i] = real(val)
	}
	sort.Float64s(values)
	return values, true
}

// SpectralRadius is max |lambda| over the real parts returned by Eigenvalues.
// When the factorization fails it falls back to the induced 1-norm, an upper
// bound on every |lambda|.
func (m Matrix) SpectralRadius() (rho float64) {
	values, ok := m.Eigenvalues()
	return spectralRadius(m, values, ok)
}

func spectralRadius(m Matrix, values []float64, ok bool) (rho float64) {
	if !ok {
		return mat.Norm(m.M, 1)
	}
	for _, val := range values {
		rho = math.Max(rho, math.Abs(val))
	}
	return
}
