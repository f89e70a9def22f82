package equations

import (
	"math"

	"github.com/notargets/conslaw/utils"
)

type FlowFunction uint8

func (pm FlowFunction) String() string {
	strings := []string{
		"Density",
		"Momentum",
		"Energy",
		"Velocity",
		"Static Pressure",
		"Dynamic Pressure",
		"Sound Speed",
		"Mach",
		"Enthalpy",
	}
	if int(pm) >= len(strings) {
		return "Unknown"
	}
	return strings[int(pm)]
}

const (
	Density FlowFunction = iota
	Momentum
	Energy
	Velocity        // 3
	StaticPressure  // 4
	DynamicPressure // 5
	SoundSpeed      // 6
	Mach            // 7
	Enthalpy        // 8
)

// GetFlowFunction computes a derived quantity from the conserved state
func (e *Euler1D) GetFlowFunction(U utils.Vector, pf FlowFunction) (f float64) {
	var (
		rho, rhoU, E = U.AtVec(0), U.AtVec(1), U.AtVec(2)
		oorho        = 1. / rho
		q, p         float64
	)
	switch pf {
	case StaticPressure, SoundSpeed, Mach, Enthalpy:
		q = 0.5 * rhoU * rhoU * oorho
		p = e.gammaMinus1 * (E - q)
	}
	switch pf {
	case Density:
		f = rho
	case Momentum:
		f = rhoU
	case Energy:
		f = E
	case Velocity:
		f = rhoU * oorho
	case StaticPressure:
		f = p
	case DynamicPressure:
		f = 0.5 * rhoU * rhoU * oorho
	case SoundSpeed:
		f = math.Sqrt(e.gamma * p * oorho)
	case Mach:
		f = math.Abs(rhoU*oorho) / math.Sqrt(e.gamma*p*oorho)
	case Enthalpy:
		f = (E + p) * oorho
	default:
		f = math.NaN()
	}
	return
}
