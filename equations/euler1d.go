package equations

import (
	"fmt"
	"math"

	"github.com/notargets/conslaw/utils"
)

/*
Euler equations in one dimension, calorically perfect gas

	U = [ rho  ]    F = [ rho u         ]
	    [ rho u]        [ rho u² + p    ]
	    [ E    ]        [ u (E + p)     ]

	p = (gamma - 1) (E - ½ rho u²)
*/
type Euler1D struct {
	gamma       float64
	gammaMinus1 float64
	gammaMinus3 float64
}

// NewEuler1D takes an optional ratio of specific heats, default 1.4. Gamma = 1
// is not rejected, conversions then divide by zero.
func NewEuler1D(gammaO ...float64) (e *Euler1D) {
	var (
		gamma = 1.4
	)
	if len(gammaO) != 0 {
		gamma = gammaO[0]
	}
	e = &Euler1D{
		gamma:       gamma,
		gammaMinus1: gamma - 1,
		gammaMinus3: gamma - 3,
	}
	return
}

func (e *Euler1D) Gamma() float64 { return e.gamma }

// UPRhoToU builds the conserved state from velocity, pressure and density
func (e *Euler1D) UPRhoToU(u, p, rho float64) (U utils.Vector) {
	U = utils.NewVector(3)
	d := U.Data()
	d[0] = rho
	d[1] = rho * u
	d[2] = p/e.gammaMinus1 + rho*(u*u)/2
	return
}

// UToUPRho inverts UPRhoToU. Density is not checked, zero density gives Inf/NaN.
func (e *Euler1D) UToUPRho(U utils.Vector) (u, p, rho float64) {
	rho = U.AtVec(0)
	u = U.AtVec(1) / U.AtVec(0)
	p = (U.AtVec(2) - rho*(u*u)/2) * e.gammaMinus1
	return
}

func (e *Euler1D) F(U utils.Vector) (F utils.Vector) {
	u, p, _ := e.UToUPRho(U)
	F = U.Copy().Scale(u)
	d := F.Data()
	d[1] += p
	d[2] += p * u
	return
}

// A is the analytic flux Jacobian, entries written in terms of u, gamma and
// gamma E / rho
func (e *Euler1D) A(U utils.Vector) (A utils.Matrix) {
	var (
		u                = U.AtVec(1) / U.AtVec(0)
		uSquare          = u * u
		eKinetic         = uSquare / 2
		gammaTimesETotal = U.AtVec(2) / U.AtVec(0) * e.gamma
	)
	A = utils.NewMatrix(3, 3)
	A.Set(0, 1, 1.0)
	A.Set(1, 0, eKinetic*e.gammaMinus3)
	A.Set(1, 1, -u*e.gammaMinus3)
	A.Set(1, 2, e.gammaMinus1)
	A.Set(2, 0, u*(uSquare*e.gammaMinus1-gammaTimesETotal))
	A.Set(2, 1, gammaTimesETotal-3*eKinetic*e.gammaMinus1)
	A.Set(2, 2, u*e.gamma)
	return
}

// SoundSpeed is sqrt(gamma p / rho)
func (e *Euler1D) SoundSpeed(U utils.Vector) float64 {
	_, p, rho := e.UToUPRho(U)
	return math.Sqrt(e.gamma * p / rho)
}

// Enthalpy is the total enthalpy H = (E + p) / rho
func (e *Euler1D) Enthalpy(U utils.Vector) float64 {
	_, p, rho := e.UToUPRho(U)
	return (U.AtVec(2) + p) / rho
}

// Eigenvalues are u-c, u, u+c
func (e *Euler1D) Eigenvalues(U utils.Vector) []float64 {
	var (
		u, _, _ = e.UToUPRho(U)
		c       = e.SoundSpeed(U)
	)
	return []float64{u - c, u, u + c}
}

// RightEigenvectors returns R with the eigenvectors of A(U) as columns, in the
// order of Eigenvalues, so that A R = R diag(u-c, u, u+c)
func (e *Euler1D) RightEigenvectors(U utils.Vector) (R utils.Matrix) {
	var (
		u, _, _ = e.UToUPRho(U)
		c       = e.SoundSpeed(U)
		H       = e.Enthalpy(U)
	)
	R = utils.NewMatrix(3, 3, []float64{
		1, 1, 1,
		u - c, u, u + c,
		H - u*c, 0.5 * u * u, H + u*c,
	})
	return
}

func (e *Euler1D) String() string {
	return fmt.Sprintf("Euler1D(gamma = %v)", e.gamma)
}
