// Package life implements a generalized N-dimensional Game of Life over a
// dense, finite hypercubic grid.
//
// The package is built from a few small pieces:
//
//   - [Cell]: two-valued cell state
//   - [CoordsToIndex] and [IndexToCoords]: mixed-radix codec between flat
//     storage and coordinate vectors, axis 0 least significant
//   - [Thresholds]: survive/breed/death limits derived from a [RuleVariant]
//   - [Grid]: cell storage plus neighbor enumeration and [Grid.Step]
//
// # Example
//
//	g, _ := life.New(life.Basic, 2, 16)
//	_ = g.SetCellAt([]int{7, 8}, life.Alive)
//	g.Step()
//
// # Boundaries
//
// The grid does not wrap. A neighbor offset that leaves [0, size) on any
// axis is dropped, so edge cells have fewer than 3^dim - 1 neighbors.
//
// # Thread Safety
//
// Grid is NOT safe for concurrent use. Run independent grids in separate
// goroutines instead.
package life
