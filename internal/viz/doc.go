// Package viz draws grids in the terminal.
//
// A grid of any dimensionality is shown as a 2D slice: axis 0 runs left to
// right, axis 1 top to bottom, and axes 2 and up are pinned to a plane.
// A 1D grid is a single row.
//
//   - [Renderer]: slice to string, plain glyphs or lipgloss colors
//   - [PopulationPlot]: asciigraph chart of a run's population
//   - [Model]: bubbletea program for watching a grid evolve
package viz
