package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestMatrix(t *testing.T) {
	// Rows
	{
		M, err := NewMatrixFromRows([][]float64{
			{1, 2, 3},
			{4, 5, 6},
		})
		require.NoError(t, err)
		nr, nc := M.Dims()
		assert.Equal(t, 2, nr)
		assert.Equal(t, 3, nc)
		assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, M.Data())
		assert.False(t, M.IsSquare())
	}
	// Ragged and empty rows are refused
	{
		_, err := NewMatrixFromRows([][]float64{
			{1, 2},
			{3},
		})
		assert.Error(t, err)
		_, err = NewMatrixFromRows([][]float64{{1}, {2, 3}})
		assert.Error(t, err)
		_, err = NewMatrixFromRows(nil)
		assert.Error(t, err)
		_, err = NewMatrixFromRows([][]float64{{}, {}})
		assert.Error(t, err)
	}
	// Copy is independent of the source
	{
		M := NewDiagMatrix([]float64{1, 1, 1})
		assert.True(t, M.IsSquare())
		C := M.Copy()
		C.Set(0, 1, 7)
		assert.Equal(t, 0., M.At(0, 1))
		assert.Equal(t, 7., C.At(0, 1))
		assert.Equal(t, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, M.Data())
	}
	// Products
	{
		M := NewMatrix(2, 2, []float64{
			1, 2,
			3, 4,
		})
		v := NewVector(2, []float64{1, -1})
		assert.Equal(t, []float64{-1, -1}, M.MulVec(v).Data())
		assert.Equal(t, []float64{1, 3, 2, 4}, mat.DenseCopyOf(M.T()).RawMatrix().Data)
	}
	// Read only matrices refuse writes, copies are writable
	{
		M := NewDiagMatrix([]float64{1, 1})
		M.SetReadOnly("I")
		assert.Panics(t, func() { M.Set(0, 0, 2) })
		C := M.Copy()
		assert.NotPanics(t, func() { C.Set(0, 0, 2) })
	}
	assert.Panics(t, func() { NewMatrix(2, 2, []float64{1, 2, 3}) })
}

func TestEigenvalues(t *testing.T) {
	M := NewMatrix(2, 2, []float64{
		0, 1,
		1, 0,
	})
	ev, ok := M.Eigenvalues()
	require.True(t, ok)
	require.Len(t, ev, 2)
	assert.InDelta(t, -1., ev[0], 1.e-12)
	assert.InDelta(t, 1., ev[1], 1.e-12)
	assert.InDelta(t, 1., M.SpectralRadius(), 1.e-12)
	assert.Panics(t, func() { NewMatrix(2, 3).Eigenvalues() })
}

func TestSpectralRadiusFallback(t *testing.T) {
	M := NewMatrix(2, 2, []float64{
		1, -3,
		2, 0.5,
	})
	// A failed factorization reports the largest absolute column sum
	assert.Equal(t, 3.5, spectralRadius(M, nil, false))
	rho := M.SpectralRadius()
	assert.False(t, math.IsNaN(rho))
	assert.LessOrEqual(t, rho, 3.5)
}
