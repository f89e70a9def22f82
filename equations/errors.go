package equations

import (
	"errors"
	"fmt"
)

var (
	ErrShape = errors.New("coefficient matrix is not square")
	ErrEigen = errors.New("eigen decomposition of the coefficient matrix failed")
)

// ShapeError is returned when a LinearSystem is constructed from a non-square
// matrix. It matches ErrShape under errors.Is.
type ShapeError struct {
	Rows, Cols int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%v: have %d x %d", ErrShape, e.Rows, e.Cols)
}

func (e *ShapeError) Unwrap() error { return ErrShape }
