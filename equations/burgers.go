package equations

import (
	"sort"

	"github.com/notargets/conslaw/utils"
)

/*
Inviscid Burgers:
				∂u/∂t + ∂/∂x [ ½ u² ] = 0
				A(u) = u, so the wave speed is the state itself
*/
type InviscidBurgers struct{}

func NewInviscidBurgers() *InviscidBurgers {
	return &InviscidBurgers{}
}

func (b *InviscidBurgers) F(U utils.Vector) utils.Vector {
	return U.Copy().POW(2).Scale(0.5)
}

func (b *InviscidBurgers) A(U utils.Vector) utils.Matrix {
	return utils.NewDiagMatrix(U.Copy().Data())
}

func (b *InviscidBurgers) Eigenvalues(U utils.Vector) (lambda []float64) {
	lambda = U.Copy().Data()
	sort.Float64s(lambda)
	return
}

func (b *InviscidBurgers) String() string { return "InviscidBurgers" }
