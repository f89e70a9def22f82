package equations

import (
	"github.com/notargets/conslaw/utils"
)

// EvaluateFluxes computes F for every state, splitting the states over
// parallelDegree goroutines. Output order matches input order.
func EvaluateFluxes(law ConservationLaw, states []utils.Vector, parallelDegree int) []utils.Vector {
	return evaluate(states, parallelDegree, law.F)
}

// EvaluateJacobians is EvaluateFluxes for A
func EvaluateJacobians(law ConservationLaw, states []utils.Vector, parallelDegree int) []utils.Matrix {
	return evaluate(states, parallelDegree, law.A)
}

func evaluate[T any](states []utils.Vector, parallelDegree int, f func(utils.Vector) T) (out []T) {
	out = make([]T, len(states))
	if len(states) == 0 {
		return
	}
	if parallelDegree > len(states) {
		parallelDegree = len(states)
	}
	pm := utils.NewPartitionMap(parallelDegree, len(states))
	pm.ForEachBucket(func(_, kMin, kMax int) {
		for k := kMin; k < kMax; k++ {
			out[k] = f(states[k])
		}
	})
	return
}
