package vector

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidShape = errors.New("vector must have exactly 2 components")
)

// InvalidShapeError is returned when raw data of the wrong length is turned
// into a vector.
type InvalidShapeError struct {
	Len int
}

func newInvalidShapeError(n int) error {
	return errors.WithStack(&InvalidShapeError{Len: n})
}

func (e *InvalidShapeError) Error() string {
	return fmt.Sprintf("%v: got %d", ErrInvalidShape, e.Len)
}

func (e *InvalidShapeError) Unwrap() error {
	return ErrInvalidShape
}
