package mocap

import (
	"errors"
	"fmt"
)

var (
	// ErrGridShape classifies write-back length mismatches. It signals an
	// internal extraction/write asymmetry, never bad user input.
	ErrGridShape = errors.New("mocap: grid shape mismatch")

	// ErrInvalidSession is returned by Session.Validate.
	ErrInvalidSession = errors.New("mocap: invalid session")
)

// GridShapeError reports a column write whose length does not match the
// row count of the grid, or whose column index is out of range.
type GridShapeError struct {
	Domain string
	Column int
	Got    int
	Want   int
}

func (e *GridShapeError) Error() string {
	if e.Want < 0 {
		return fmt.Sprintf("mocap: %s column %d out of range", e.Domain, e.Column)
	}
	return fmt.Sprintf("mocap: %s column %d: got %d values, want %d", e.Domain, e.Column, e.Got, e.Want)
}

// Is makes errors.Is(err, ErrGridShape) match any GridShapeError.
func (e *GridShapeError) Is(target error) bool {
	return target == ErrGridShape
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidSession, fmt.Sprintf(format, args...))
}
