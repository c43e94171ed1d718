package spectrum

import "errors"

var (
	// ErrEmptyInput is returned for series shorter than two samples.
	ErrEmptyInput = errors.New("spectrum: series needs at least two samples")
	// ErrInvalidSampleRate is returned for non-positive or non-finite rates.
	ErrInvalidSampleRate = errors.New("spectrum: sample rate must be positive and finite")
	// ErrInvalidFraction is returned for power fractions outside (0, 1].
	ErrInvalidFraction = errors.New("spectrum: power fraction must be in (0, 1]")
	// ErrNoSignalPower is returned when a series carries no power once its
	// mean is removed.
	ErrNoSignalPower = errors.New("spectrum: series has no power above DC")
)
