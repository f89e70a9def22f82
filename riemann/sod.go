package riemann

import (
	"github.com/notargets/conslaw/equations"
	"github.com/notargets/conslaw/utils"
)

var (
	SodLeft  = Primitive{Rho: 1, U: 0, P: 1}
	SodRight = Primitive{Rho: 0.125, U: 0, P: 0.1}
)

type SodSolution struct {
	X              []float64
	Rho, U, P, E   []float64 // E is the specific internal energy p/((gamma-1) rho)
	Q              []utils.Vector
	X1, X2, X3, X4 float64 // rarefaction head and tail, contact, shock
}

/*
SodShockTube samples the Sod problem at time t with the diaphragm at x0. When X
is nil the sample points bracket each wave front on [0,1].
*/
func SodShockTube(eq *equations.Euler1D, t, x0 float64, X []float64) (sol SodSolution, err error) {
	var (
		ex *Exact
	)
	if ex, err = NewExact(eq, SodLeft, SodRight); err != nil {
		return
	}
	w := ex.Waves()
	sol.X1 = x0 + w.LeftHead*t
	sol.X2 = x0 + w.LeftTail*t
	sol.X3 = x0 + w.Contact*t
	sol.X4 = x0 + w.RightHead*t
	if X == nil {
		tol := 1.e-8
		X = []float64{
			0,
			sol.X1 - tol, sol.X1 + tol,
			sol.X2 - tol, sol.X2 + tol,
			sol.X3 - tol, sol.X3 + tol,
			sol.X4 - tol, sol.X4 + tol,
			1,
		}
	}
	sol.X = X
	sol.Rho = make([]float64, len(X))
	sol.U = make([]float64, len(X))
	sol.P = make([]float64, len(X))
	sol.E = make([]float64, len(X))
	sol.Q = make([]utils.Vector, len(X))
	for i, x := range X {
		var W Primitive
		switch {
		case t <= 0 && x < x0:
			W = SodLeft
		case t <= 0:
			W = SodRight
		default:
			W = ex.Sample((x - x0) / t)
		}
		sol.Rho[i], sol.U[i], sol.P[i] = W.Rho, W.U, W.P
		sol.E[i] = W.P / ((eq.Gamma() - 1) * W.Rho)
		sol.Q[i] = ex.Conserved(W)
	}
	return
}
