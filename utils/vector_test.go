package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector(t *testing.T) {
	v1 := NewVectorConstant(3, 1)
	assert.Equal(t, []float64{1, 1, 1}, v1.Data())
	assert.Equal(t, 3, v1.Len())

	v2 := NewVector(3, []float64{1, 2, 3})
	c := v2.Copy().Scale(2)
	assert.Equal(t, []float64{2, 4, 6}, c.Data())
	assert.Equal(t, []float64{1, 2, 3}, v2.Data())
	assert.Equal(t, []float64{1, 4, 9}, v2.Copy().POW(2).Data())
	assert.Equal(t, []float64{0.5, 2, 4.5}, v2.Copy().POW(2).Scale(0.5).Data())
	assert.Contains(t, v2.Print("v2"), "v2 = ")

	assert.True(t, IsFinite(v2))
	assert.False(t, IsFinite(NewVector(2, []float64{1, math.Inf(1)})))
	assert.False(t, IsFinite(NewVector(2, []float64{math.NaN(), 1})))
	assert.False(t, IsFinite(NewDiagMatrix([]float64{1, math.NaN()})))
	assert.Panics(t, func() { NewVector(2, []float64{1}) })
}

func TestPOW(t *testing.T) {
	for p := -10; p <= 10; p++ {
		assert.InDelta(t, math.Pow(1.1, float64(p)), POW(1.1, p), 1.e-12)
	}
}
