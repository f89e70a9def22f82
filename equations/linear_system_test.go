package equations

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/conslaw/utils"
)

func TestLinearSystemShape(t *testing.T) {
	ls, err := NewLinearSystem(utils.NewMatrix(2, 3))
	assert.Nil(t, ls)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShape))
	var se *ShapeError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 2, se.Rows)
	assert.Equal(t, 3, se.Cols)
	assert.Contains(t, err.Error(), "2 x 3")

	_, err = NewLinearSystem(utils.NewMatrix(3, 1))
	assert.ErrorIs(t, err, ErrShape)
}

func TestLinearSystem(t *testing.T) {
	Aconst := utils.NewMatrix(3, 3, []float64{
		1, 2, 0,
		0, -1, 4,
		3, 0, 0.5,
	})
	ls, err := NewLinearSystem(Aconst)
	require.NoError(t, err)
	assert.Equal(t, 3, ls.Dimension())
	for _, data := range [][]float64{
		{1, 1, 1},
		{0, 0, 0},
		{-2, 0.5, 8},
	} {
		U := utils.NewVector(3, data)
		assert.Equal(t, Aconst.MulVec(U).Data(), ls.F(U).Data())
		A := ls.A(U)
		assert.Equal(t, Aconst.Data(), A.Data())
		assert.Equal(t, data, U.Data())
	}
	// The returned Jacobian is a copy
	{
		A := ls.A(utils.NewVector(3))
		A.Set(0, 0, 100)
		assert.Equal(t, Aconst.Data(), ls.A(utils.NewVector(3)).Data())
	}
	// Later changes to the construction matrix do not leak in
	{
		Aconst.Set(1, 1, 42)
		assert.Equal(t, -1., ls.A(utils.NewVector(3)).At(1, 1))
		U := utils.NewVector(3, []float64{0, 1, 0})
		assert.Equal(t, []float64{2, -1, 0}, ls.F(U).Data())
	}
	assert.Equal(t, "LinearSystem(3 x 3, nnz = 6)", ls.String())
}

func TestLinearSystemIdentity(t *testing.T) {
	for k := 1; k <= 5; k++ {
		I := utils.NewDiagMatrix(utils.ConstArray(k, 1))
		ls, err := NewLinearSystem(I)
		require.NoError(t, err)
		U := utils.NewVector(k)
		for i := 0; i < k; i++ {
			U.Data()[i] = float64(i) - 1.5
		}
		assert.Equal(t, U.Data(), ls.F(U).Data())
		assert.Equal(t, I.Data(), ls.A(U).Data())
		assert.InDeltaSlice(t, utils.ConstArray(k, 1), ls.Eigenvalues(U), 1.e-12)
	}
}

func TestLinearSystemEigenvalues(t *testing.T) {
	// Acoustics: p_t + K u_x = 0, u_t + p_x / rho = 0, wave speeds ±sqrt(K/rho)
	ls, err := NewLinearSystem(utils.NewMatrix(2, 2, []float64{
		0, 4,
		1, 0,
	}))
	require.NoError(t, err)
	U := utils.NewVector(2, []float64{1, 1})
	lambda := ls.Eigenvalues(U)
	require.Len(t, lambda, 2)
	assert.InDelta(t, -2., lambda[0], 1.e-12)
	assert.InDelta(t, 2., lambda[1], 1.e-12)
	assert.InDelta(t, 2., MaxWaveSpeed(ls, U), 1.e-12)
	// The stored eigenvalues can not be changed through the result
	lambda[0] = 99
	assert.InDelta(t, -2., ls.Eigenvalues(U)[0], 1.e-12)
}

func TestLinearSystemNonFinite(t *testing.T) {
	ls, err := NewLinearSystem(utils.NewMatrix(2, 2, []float64{
		0, 1,
		1, 0,
	}))
	require.NoError(t, err)
	// 0 * Inf is NaN in the dense product, the flux keeps it
	U := utils.NewVector(2, []float64{math.Inf(1), 1})
	F := ls.F(U)
	assert.True(t, math.IsNaN(F.AtVec(0)))
	assert.True(t, math.IsInf(F.AtVec(1), 1))

	U = utils.NewVector(2, []float64{1, math.NaN()})
	F = ls.F(U)
	assert.True(t, math.IsNaN(F.AtVec(0)))
	assert.True(t, math.IsNaN(F.AtVec(1)))
}
