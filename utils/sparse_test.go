package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCSR(t *testing.T) {
	A := NewMatrix(3, 3, []float64{
		2, 0, 0,
		0, 0, -1,
		1, 0, 3,
	})
	S := NewCSR(A)
	assert.Equal(t, 4, S.NNZ())
	nr, nc := S.Dims()
	assert.Equal(t, 3, nr)
	assert.Equal(t, 3, nc)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, A.At(i, j), S.M.At(i, j))
		}
	}
	v := NewVector(3, []float64{1, 2, 3})
	assert.Equal(t, A.MulVec(v).Data(), S.MulVec(v).Data())
	assert.Equal(t, []float64{2, -3, 10}, S.MulVec(v).Data())

	Z := NewCSR(NewMatrix(2, 2))
	assert.Equal(t, 0, Z.NNZ())
	assert.Equal(t, []float64{0, 0}, Z.MulVec(NewVector(2, []float64{5, 6})).Data())
}
