package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Matrix struct {
	M        *mat.Dense
	readOnly bool
	name     string
}

// NewMatrix allocates an nr x nc matrix. Optional data is in row-major order
// and is used as the backing store without copying.
func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v", nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{
		m,
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// NewMatrixFromRows builds a matrix from a slice of rows, all rows must have
// the same length
func NewMatrixFromRows(rows [][]float64) (R Matrix, err error) {
	var (
		nr = len(rows)
		nc int
	)
	if nr == 0 {
		err = fmt.Errorf("no rows to build a matrix from")
		return
	}
	nc = len(rows[0])
	for i, row := range rows {
		if len(row) != nc || nc == 0 {
			err = fmt.Errorf("ragged matrix: row %d has %d entries, row 0 has %d", i, len(row), nc)
			return
		}
	}
	R = NewMatrix(nr, nc)
	for i, row := range rows {
		R.M.SetRow(i, row)
	}
	return
}

func NewDiagMatrix(diag []float64) (R Matrix) {
	var (
		N = len(diag)
	)
	R = NewMatrix(N, N)
	for i, val := range diag {
		R.M.Set(i, i, val)
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface, RawMatrix lets
// gonum take its dense fast paths.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

func (m Matrix) Data() []float64 { return m.M.RawMatrix().Data }

func (m Matrix) IsSquare() bool {
	nr, nc := m.Dims()
	return nr == nc
}

// Chainable methods (extended)
func (m *Matrix) SetReadOnly(name ...string) Matrix {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
		dataR  = make([]float64, nr*nc)
	)
	// Row by row, the receiver may be a view with a stride wider than nc
	for i := 0; i < nr; i++ {
		copy(dataR[i*nc:(i+1)*nc], m.M.RawRowView(i))
	}
	R = NewMatrix(nr, nc, dataR)
	return
}

func (m Matrix) MulVec(v Vector) (R Vector) { // Does not change receiver
	var (
		nr, _ = m.M.Dims()
	)
	R = NewVector(nr)
	R.V.MulVec(m.M, v.V)
	return
}

func (m Matrix) Set(i, j int, val float64) Matrix { // Changes receiver
	m.checkWritable()
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) Print(msgI ...string) (o string) {
	var (
		name = ""
	)
	if len(msgI) != 0 {
		name = msgI[0]
	}
	if len(name) != 0 {
		o = fmt.Sprintf("%s = \n%v\n", name, mat.Formatted(m.M, mat.Squeeze()))
	} else {
		o = fmt.Sprintf("%v\n", mat.Formatted(m.M, mat.Squeeze()))
	}
	return
}

func (m Matrix) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}
