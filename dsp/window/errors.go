package window

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownType is returned by ParseType for unknown window names.
	ErrUnknownType = errors.New("window: unknown type")

	errEmptyCoeffs = errors.New("window coefficients must not be empty")
)

func validateTukey(alpha float64) error {
	if alpha < 0 || alpha > 1 {
		return fmt.Errorf("tukey alpha must be in [0,1]: %f", alpha)
	}
	return nil
}
