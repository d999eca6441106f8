package window

import (
	"errors"
	"fmt"
)

var (
	errEmptyCoeffs      = errors.New("window coefficients must not be empty")
	errZeroCoherentGain = errors.New("window coherent gain is zero")
	errMismatchedLength = errors.New("samples and coefficients must have same length")
	errInvalidLength    = errors.New("window size must be > 0")
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", errInvalidLength, size)
	}
	return nil
}
