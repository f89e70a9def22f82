// Package equations defines the continuous operators of one dimensional
// hyperbolic conservation laws
//
//	∂U/∂t + ∂F(U)/∂x = 0
//
// Each law supplies the flux F(U) and the flux Jacobian A(U) = ∂F/∂U for a
// state vector U. Laws are immutable after construction and may be shared
// between goroutines.
package equations

import (
	"math"

	"github.com/notargets/conslaw/utils"
)

type ConservationLaw interface {
	// F returns a new flux vector, U is not modified
	F(U utils.Vector) utils.Vector
	// A returns a new n x n Jacobian ∂F/∂U evaluated at U
	A(U utils.Vector) utils.Matrix
}

// Characteristic is implemented by laws that know their wave speeds in closed
// form. Eigenvalues are returned in ascending order.
type Characteristic interface {
	Eigenvalues(U utils.Vector) []float64
}

// MaxWaveSpeed is the largest characteristic speed magnitude at U. Laws that do
// not implement Characteristic fall back to the eigenvalues of A(U).
func MaxWaveSpeed(law ConservationLaw, U utils.Vector) (speed float64) {
	c, ok := law.(Characteristic)
	if !ok {
		return law.A(U).SpectralRadius()
	}
	for _, lambda := range c.Eigenvalues(U) {
		speed = math.Max(speed, math.Abs(lambda))
	}
	return
}
