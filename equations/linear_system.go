package equations

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/conslaw/utils"
)

// LinearSystem is F(U) = A_const U for a constant square matrix
type LinearSystem struct {
	aConst      utils.Matrix // read only
	aSparse     utils.CSR    // same coefficients, used for the flux product
	eigenvalues []float64
}

// NewLinearSystem copies Aconst, so later changes to the caller's matrix do
// not reach the law. A non-square matrix returns a *ShapeError.
func NewLinearSystem(Aconst mat.Matrix) (ls *LinearSystem, err error) {
	var (
		nr, nc = Aconst.Dims()
		A      = utils.NewMatrix(nr, nc)
		ok     bool
	)
	if !A.IsSquare() {
		err = &ShapeError{Rows: nr, Cols: nc}
		return
	}
	A.M.Copy(Aconst)
	ls = &LinearSystem{
		aConst:  A.SetReadOnly("A_const"),
		aSparse: utils.NewCSR(A),
	}
	if ls.eigenvalues, ok = A.Eigenvalues(); !ok {
		return nil, fmt.Errorf("%w: %d x %d", ErrEigen, nr, nc)
	}
	return
}

func (ls *LinearSystem) Dimension() int {
	n, _ := ls.aConst.Dims()
	return n
}

// F uses the sparse product for finite states. A non-finite entry in U goes
// through the dense product so 0 * Inf and 0 * NaN terms propagate.
func (ls *LinearSystem) F(U utils.Vector) utils.Vector {
	if !utils.IsFinite(U) {
		return ls.aConst.MulVec(U)
	}
	return ls.aSparse.MulVec(U)
}

// A returns a writable copy of A_const, independent of U
func (ls *LinearSystem) A(U utils.Vector) utils.Matrix {
	return ls.aConst.Copy()
}

// Eigenvalues are the real parts of the eigenvalues of A_const
func (ls *LinearSystem) Eigenvalues(U utils.Vector) []float64 {
	lambda := make([]float64, len(ls.eigenvalues))
	copy(lambda, ls.eigenvalues)
	return lambda
}

func (ls *LinearSystem) String() string {
	n := ls.Dimension()
	return fmt.Sprintf("LinearSystem(%d x %d, nnz = %d)", n, n, ls.aSparse.NNZ())
}
