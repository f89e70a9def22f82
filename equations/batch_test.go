package equations

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/conslaw/utils"
)

func TestEvaluateBatch(t *testing.T) {
	var (
		rng    = rand.New(rand.NewSource(3))
		e      = NewEuler1D()
		K      = 257
		states = make([]utils.Vector, K)
	)
	for k := range states {
		states[k] = e.UPRhoToU(2*rng.Float64()-1, 0.1+rng.Float64(), 0.1+rng.Float64())
	}
	ls, err := NewLinearSystem(utils.NewMatrix(3, 3, []float64{
		1, 0, 0,
		0, 2, 1,
		0, 1, 2,
	}))
	require.NoError(t, err)

	for _, law := range []ConservationLaw{e, ls, NewLinearAdvection(0.5), NewInviscidBurgers()} {
		for _, np := range []int{1, 2, 7, 32, 1000} {
			fluxes := EvaluateFluxes(law, states, np)
			jacobians := EvaluateJacobians(law, states, np)
			require.Len(t, fluxes, K)
			require.Len(t, jacobians, K)
			for k := range states {
				assert.Equal(t, law.F(states[k]).Data(), fluxes[k].Data())
				assert.Equal(t, law.A(states[k]).Data(), jacobians[k].Data())
			}
		}
	}
	assert.Len(t, EvaluateFluxes(e, nil, 4), 0)
}
