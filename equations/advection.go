package equations

import (
	"fmt"

	"github.com/notargets/conslaw/utils"
)

// LinearAdvection is F(U) = a U with constant speed a. Longer state vectors are
// treated as independent scalars, so A(U) is a I.
type LinearAdvection struct {
	a float64
}

func NewLinearAdvection(a float64) *LinearAdvection {
	return &LinearAdvection{a: a}
}

func (la *LinearAdvection) Speed() float64 { return la.a }

func (la *LinearAdvection) F(U utils.Vector) utils.Vector {
	return U.Copy().Scale(la.a)
}

func (la *LinearAdvection) A(U utils.Vector) utils.Matrix {
	return utils.NewDiagMatrix(utils.ConstArray(U.Len(), la.a))
}

func (la *LinearAdvection) Eigenvalues(U utils.Vector) []float64 {
	return utils.ConstArray(U.Len(), la.a)
}

func (la *LinearAdvection) String() string {
	return fmt.Sprintf("LinearAdvection(a = %v)", la.a)
}
