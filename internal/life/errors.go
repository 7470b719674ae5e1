package life

import (
	"errors"
	"fmt"
)

// Domain errors for grid operations.
var (
	// ErrOutOfBounds indicates an index or coordinate outside the grid.
	ErrOutOfBounds = errors.New("life: index or coordinate out of bounds")

	// ErrCoordLength indicates a coordinate vector whose length is not dim.
	ErrCoordLength = errors.New("life: coordinate length does not match dimensions")

	// ErrDegenerate indicates dim or size below 1.
	ErrDegenerate = errors.New("life: dimensions and size must be at least 1")

	// ErrTooLarge indicates size^dim or 3^dim does not fit in an int.
	ErrTooLarge = errors.New("life: grid too large to address")

	// ErrUnknownRule indicates a rule name or variant that does not exist.
	ErrUnknownRule = errors.New("life: unknown rule variant")
)

// CoordError reports a single coordinate component outside [0, Size).
type CoordError struct {
	Axis  int
	Value int
	Size  int
}

func (e *CoordError) Error() string {
	return fmt.Sprintf("life: coordinate %d on axis %d outside [0, %d)", e.Value, e.Axis, e.Size)
}

func (e *CoordError) Unwrap() error {
	return ErrOutOfBounds
}
