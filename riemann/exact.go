// Package riemann solves the Riemann problem of the one dimensional Euler
// equations exactly, for use as a reference solution and as the flux on the
// time axis between two constant states.
package riemann

import (
	"errors"
	"fmt"
	"math"

	"github.com/notargets/conslaw/equations"
	"github.com/notargets/conslaw/utils"
)

var (
	ErrNonPhysical   = errors.New("density and pressure must be positive")
	ErrNoConvergence = errors.New("star pressure iteration did not converge")
)

const (
	pressureTolerance = 1.e-10
	maxIterations     = 100
)

type Primitive struct {
	Rho, U, P float64
}

func (w Primitive) String() string {
	return fmt.Sprintf("rho = %8.6f, u = %8.6f, p = %8.6f", w.Rho, w.U, w.P)
}

// Waves holds the speeds of the wave fronts. A shock has equal head and tail.
// The star speeds bound the vacuum when one is generated.
type Waves struct {
	LeftHead, LeftTail   float64
	Contact              float64
	RightTail, RightHead float64
}

type Exact struct {
	Left, Right  Primitive
	eq           *equations.Euler1D
	cL, cR       float64
	pStar, uStar float64
	vacuum       bool
	// gamma related constants
	g1, g2, g3, g4, g5, g6, g7 float64
}

/*
NewExact finds the star region between left and right, the pressure from a
Newton iteration on

	f(p) = fL(p, WL) + fR(p, WR) + uR - uL = 0

with fK the shock (p > pK) or rarefaction (p <= pK) branch. When the data
generates vacuum (2/(gamma-1) (cL + cR) <= uR - uL) no iteration is done.
*/
func NewExact(eq *equations.Euler1D, left, right Primitive) (ex *Exact, err error) {
	for _, w := range []Primitive{left, right} {
		if !(w.Rho > 0 && w.P > 0) {
			err = fmt.Errorf("riemann state [%v]: %w", w, ErrNonPhysical)
			return
		}
	}
	gamma := eq.Gamma()
	ex = &Exact{
		Left:  left,
		Right: right,
		eq:    eq,
		g1:    (gamma - 1) / (2 * gamma),
		g2:    (gamma + 1) / (2 * gamma),
		g3:    2 * gamma / (gamma - 1),
		g4:    2 / (gamma - 1),
		g5:    2 / (gamma + 1),
		g6:    (gamma - 1) / (gamma + 1),
		g7:    (gamma - 1) / 2,
	}
	ex.cL = math.Sqrt(gamma * left.P / left.Rho)
	ex.cR = math.Sqrt(gamma * right.P / right.Rho)
	if ex.g4*(ex.cL+ex.cR) <= right.U-left.U {
		ex.vacuum = true
		return
	}
	if err = ex.solveStar(); err != nil {
		ex = nil
	}
	return
}

func (ex *Exact) solveStar() (err error) {
	var (
		L, R   = ex.Left, ex.Right
		uDiff  = R.U - L.U
		pOld   = ex.guessPressure()
		change float64
	)
	for iter := 0; iter < maxIterations; iter++ {
		fL, fLd := ex.pressureFunction(pOld, L, ex.cL)
		fR, fRd := ex.pressureFunction(pOld, R, ex.cR)
		p := pOld - (fL+fR+uDiff)/(fLd+fRd)
		change = 2 * math.Abs((p-pOld)/(p+pOld))
		if p < 0 {
			p = pressureTolerance
		}
		pOld = p
		if change <= pressureTolerance {
			fL, _ = ex.pressureFunction(p, L, ex.cL)
			fR, _ = ex.pressureFunction(p, R, ex.cR)
			ex.pStar = p
			ex.uStar = 0.5 * (L.U + R.U + fR - fL)
			return
		}
	}
	return fmt.Errorf("relative change %v after %d iterations: %w", change, maxIterations, ErrNoConvergence)
}

// guessPressure picks the primitive variable estimate when the pressure ratio
// is mild, otherwise the two rarefaction or two shock approximation
func (ex *Exact) guessPressure() (pm float64) {
	var (
		L, R   = ex.Left, ex.Right
		cup    = 0.25 * (L.Rho + R.Rho) * (ex.cL + ex.cR)
		ppv    = math.Max(0, 0.5*(L.P+R.P)+0.5*(L.U-R.U)*cup)
		pMin   = math.Min(L.P, R.P)
		pMax   = math.Max(L.P, R.P)
		qMax   = pMax / pMin
		qLimit = 2.
	)
	switch {
	case qMax <= qLimit && pMin <= ppv && ppv <= pMax:
		pm = ppv
	case ppv < pMin:
		pq := math.Pow(L.P/R.P, ex.g1)
		um := (pq*L.U/ex.cL + R.U/ex.cR + ex.g4*(pq-1)) / (pq/ex.cL + 1/ex.cR)
		ptL := 1 + ex.g7*(L.U-um)/ex.cL
		ptR := 1 + ex.g7*(um-R.U)/ex.cR
		pm = 0.5 * (L.P*math.Pow(ptL, ex.g3) + R.P*math.Pow(ptR, ex.g3))
	default:
		geL := math.Sqrt((ex.g5 / L.Rho) / (ex.g6*L.P + ppv))
		geR := math.Sqrt((ex.g5 / R.Rho) / (ex.g6*R.P + ppv))
		pm = (geL*L.P + geR*R.P - (R.U - L.U)) / (geL + geR)
	}
	if !(pm > 0) {
		pm = pressureTolerance
	}
	return
}

func (ex *Exact) pressureFunction(p float64, W Primitive, c float64) (f, fd float64) {
	if p <= W.P { // Rarefaction
		pRatio := p / W.P
		f = ex.g4 * c * (math.Pow(pRatio, ex.g1) - 1)
		fd = (1 / (W.Rho * c)) * math.Pow(pRatio, -ex.g2)
		return
	}
	// Shock
	var (
		ak  = ex.g5 / W.Rho
		bk  = ex.g6 * W.P
		qrt = math.Sqrt(ak / (bk + p))
	)
	f = (p - W.P) * qrt
	fd = (1 - 0.5*(p-W.P)/(bk+p)) * qrt
	return
}

func (ex *Exact) Vacuum() bool { return ex.vacuum }

// Star returns the pressure and velocity between the nonlinear waves. Both are
// zero when the data generates vacuum.
func (ex *Exact) Star() (p, u float64) { return ex.pStar, ex.uStar }

// StarDensities are the densities on each side of the contact
func (ex *Exact) StarDensities() (rhoL, rhoR float64) {
	if ex.vacuum {
		return
	}
	return ex.starDensity(ex.Left, ex.pStar), ex.starDensity(ex.Right, ex.pStar)
}

func (ex *Exact) starDensity(W Primitive, pStar float64) float64 {
	pRatio := pStar / W.P
	if pStar > W.P {
		return W.Rho * (pRatio + ex.g6) / (pRatio*ex.g6 + 1)
	}
	return W.Rho * math.Pow(pRatio, 1/ex.eq.Gamma())
}

func (ex *Exact) Waves() (w Waves) {
	var (
		L, R = ex.Left, ex.Right
	)
	if ex.vacuum {
		w.LeftHead, w.LeftTail = L.U-ex.cL, L.U+ex.g4*ex.cL
		w.RightTail, w.RightHead = R.U-ex.g4*ex.cR, R.U+ex.cR
		w.Contact = math.NaN()
		return
	}
	w.Contact = ex.uStar
	if ex.pStar > L.P {
		w.LeftHead = L.U - ex.cL*math.Sqrt(ex.g2*ex.pStar/L.P+ex.g1)
		w.LeftTail = w.LeftHead
	} else {
		w.LeftHead = L.U - ex.cL
		w.LeftTail = ex.uStar - ex.cL*math.Pow(ex.pStar/L.P, ex.g1)
	}
	if ex.pStar > R.P {
		w.RightHead = R.U + ex.cR*math.Sqrt(ex.g2*ex.pStar/R.P+ex.g1)
		w.RightTail = w.RightHead
	} else {
		w.RightHead = R.U + ex.cR
		w.RightTail = ex.uStar + ex.cR*math.Pow(ex.pStar/R.P, ex.g1)
	}
	return
}

// Sample returns the self-similar solution at S = x/t
func (ex *Exact) Sample(S float64) (W Primitive) {
	var (
		L, R = ex.Left, ex.Right
		w    = ex.Waves()
	)
	if ex.vacuum {
		switch {
		case S <= w.LeftHead:
			W = L
		case S < w.LeftTail:
			W = ex.leftFan(S)
		case S <= w.RightTail:
			W = Primitive{}
		case S < w.RightHead:
			W = ex.rightFan(S)
		default:
			W = R
		}
		return
	}
	if S <= ex.uStar {
		switch {
		case S <= w.LeftHead:
			W = L
		case S < w.LeftTail: // only reached inside a rarefaction
			W = ex.leftFan(S)
		default:
			W = Primitive{ex.starDensity(L, ex.pStar), ex.uStar, ex.pStar}
		}
		return
	}
	switch {
	case S >= w.RightHead:
		W = R
	case S > w.RightTail:
		W = ex.rightFan(S)
	default:
		W = Primitive{ex.starDensity(R, ex.pStar), ex.uStar, ex.pStar}
	}
	return
}

func (ex *Exact) leftFan(S float64) Primitive {
	var (
		L = ex.Left
		c = ex.g5 * (ex.cL + ex.g7*(L.U-S))
	)
	return Primitive{
		Rho: L.Rho * math.Pow(c/ex.cL, ex.g4),
		U:   ex.g5 * (ex.cL + ex.g7*L.U + S),
		P:   L.P * math.Pow(c/ex.cL, ex.g3),
	}
}

func (ex *Exact) rightFan(S float64) Primitive {
	var (
		R = ex.Right
		c = ex.g5 * (ex.cR - ex.g7*(R.U-S))
	)
	return Primitive{
		Rho: R.Rho * math.Pow(c/ex.cR, ex.g4),
		U:   ex.g5 * (-ex.cR + ex.g7*R.U + S),
		P:   R.P * math.Pow(c/ex.cR, ex.g3),
	}
}

// Conserved converts a sampled state to [rho, rho u, E]
func (ex *Exact) Conserved(W Primitive) utils.Vector {
	return ex.eq.UPRhoToU(W.U, W.P, W.Rho)
}

// FluxOnTimeAxis is the Godunov flux F(W(0)). Vacuum carries no flux.
func (ex *Exact) FluxOnTimeAxis() utils.Vector {
	W := ex.Sample(0)
	if W.Rho == 0 {
		return utils.NewVector(3)
	}
	return ex.eq.F(ex.Conserved(W))
}
