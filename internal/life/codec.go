package life

import (
	"fmt"
	"math"
)

// ipow returns base^exp. ok is false if the result overflows int.
func ipow(base, exp int) (result int, ok bool) {
	if base == 1 {
		return 1, true
	}
	result = 1
	for i := 0; i < exp; i++ {
		if result > math.MaxInt/base {
			return 0, false
		}
		result *= base
	}
	return result, true
}

// CellCount returns size^dim, the number of cells in a grid of that shape.
// dim is also bounded by the neighborhood size 3^dim fitting in an int.
func CellCount(size, dim int) (int, error) {
	if err := checkShape(size, dim); err != nil {
		return 0, err
	}
	if _, ok := ipow(3, dim); !ok {
		return 0, fmt.Errorf("%w: 3^%d neighbors", ErrTooLarge, dim)
	}
	n, ok := ipow(size, dim)
	if !ok {
		return 0, fmt.Errorf("%w: %d^%d cells", ErrTooLarge, size, dim)
	}
	return n, nil
}

// CoordsToIndex encodes coords as sum(size^d * coords[d]), axis 0 least
// significant. Every component must lie in [0, size).
func CoordsToIndex(size, dim int, coords []int) (int, error) {
	if err := checkShape(size, dim); err != nil {
		return 0, err
	}
	if len(coords) != dim {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrCoordLength, len(coords), dim)
	}
	if _, err := CellCount(size, dim); err != nil {
		return 0, err
	}
	if err := checkCoords(size, dim, coords); err != nil {
		return 0, err
	}
	return encode(size, coords), nil
}

// IndexToCoords is the inverse of CoordsToIndex. index must lie in
// [0, size^dim).
func IndexToCoords(size, dim, index int) ([]int, error) {
	n, err := CellCount(size, dim)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= n {
		return nil, fmt.Errorf("%w: index %d not in [0, %d)", ErrOutOfBounds, index, n)
	}
	coords := make([]int, dim)
	decode(size, n, index, coords)
	return coords, nil
}

func checkShape(size, dim int) error {
	if dim < 1 || size < 1 {
		return fmt.Errorf("%w: dim=%d size=%d", ErrDegenerate, dim, size)
	}
	return nil
}

func checkCoords(size, dim int, coords []int) error {
	if len(coords) != dim {
		return fmt.Errorf("%w: got %d, want %d", ErrCoordLength, len(coords), dim)
	}
	for d, c := range coords {
		if c < 0 || c >= size {
			return &CoordError{Axis: d, Value: c, Size: size}
		}
	}
	return nil
}

// encode assumes coords were already checked.
func encode(size int, coords []int) int {
	index, scale := 0, 1
	for _, c := range coords {
		index += scale * c
		scale *= size
	}
	return index
}

// decode writes the digits of index into out, most significant axis first.
// total is size^len(out).
func decode(size, total, index int, out []int) {
	scale := total
	for d := len(out) - 1; d >= 0; d-- {
		scale /= size
		out[d] = index / scale
		index -= out[d] * scale
	}
}
