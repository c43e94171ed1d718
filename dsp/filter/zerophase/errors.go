package zerophase

import (
	"errors"
	"fmt"
	"math"
)

// ErrConfiguration classifies every filter design rejection.
var ErrConfiguration = errors.New("zerophase: invalid filter configuration")

// ConfigurationError describes which filter parameter was rejected.
type ConfigurationError struct {
	Field string
	Msg   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("zerophase: invalid %s: %s", e.Field, e.Msg)
}

// Is makes errors.Is(err, ErrConfiguration) match any ConfigurationError.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func validate(order int, sampleRate, cutoffHz float64) error {
	if order < 1 {
		return &ConfigurationError{Field: "order", Msg: fmt.Sprintf("must be >= 1, got %d", order)}
	}
	if !(sampleRate > 0) || math.IsInf(sampleRate, 1) {
		return &ConfigurationError{Field: "sample rate", Msg: fmt.Sprintf("must be > 0, got %g", sampleRate)}
	}
	if !(cutoffHz > 0) {
		return &ConfigurationError{Field: "cutoff", Msg: fmt.Sprintf("must be > 0 Hz, got %g", cutoffHz)}
	}
	if nyquist := sampleRate / 2; cutoffHz >= nyquist {
		return &ConfigurationError{
			Field: "cutoff",
			Msg:   fmt.Sprintf("%g Hz must be below the Nyquist frequency %g Hz", cutoffHz, nyquist),
		}
	}
	return nil
}
