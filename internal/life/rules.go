package life

import (
	"fmt"
	"strings"
)

// RuleVariant selects how thresholds scale with the neighborhood size.
//
// With n = 3^dim - 1:
//
//   - Basic: die below floor(n/4) or above floor((n+1)/3), breed at
//     exactly floor((n+1)/3).
//   - Percentage: die below floor(0.25n) or above floor(0.40625n), breed
//     from ceil(0.34375n) up to floor(0.40625n).
type RuleVariant int

const (
	Basic RuleVariant = iota
	Percentage
)

func (v RuleVariant) String() string {
	switch v {
	case Basic:
		return "basic"
	case Percentage:
		return "percentage"
	default:
		return fmt.Sprintf("RuleVariant(%d)", int(v))
	}
}

// ParseRule accepts "basic" or "percentage", case-insensitive.
func ParseRule(name string) (RuleVariant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "basic":
		return Basic, nil
	case "percentage", "percent":
		return Percentage, nil
	default:
		return 0, fmt.Errorf("%w: %q (available: %s)", ErrUnknownRule, name, strings.Join(RuleNames(), ", "))
	}
}

// RuleNames lists the names ParseRule understands.
func RuleNames() []string {
	return []string{Basic.String(), Percentage.String()}
}

// Thresholds are the neighbor-count limits applied by Step.
type Thresholds struct {
	MinNeighbors      int // fewer alive neighbors than this and the cell dies
	MinBreedNeighbors int // at least this many and a cell comes to life
	MaxNeighbors      int // more alive neighbors than this and the cell dies
}

// NeighborCount returns 3^dim - 1, the size of a full Moore neighborhood.
func NeighborCount(dim int) (int, error) {
	if dim < 1 {
		return 0, fmt.Errorf("%w: dim=%d", ErrDegenerate, dim)
	}
	m, ok := ipow(3, dim)
	if !ok {
		return 0, fmt.Errorf("%w: 3^%d neighbors", ErrTooLarge, dim)
	}
	return m - 1, nil
}

// Derive computes the thresholds for a dimensionality and rule variant.
//
// Percentage factors are exact binary fractions (0.34375 = 11/32,
// 0.40625 = 13/32), so they are evaluated in integers.
func Derive(dim int, variant RuleVariant) (Thresholds, error) {
	n, err := NeighborCount(dim)
	if err != nil {
		return Thresholds{}, err
	}
	q, r := n/32, n%32
	switch variant {
	case Basic:
		return Thresholds{
			MinNeighbors:      n / 4,
			MinBreedNeighbors: (n + 1) / 3,
			MaxNeighbors:      (n + 1) / 3,
		}, nil
	case Percentage:
		return Thresholds{
			MinNeighbors:      n / 4,
			MinBreedNeighbors: 11*q + (11*r+31)/32,
			MaxNeighbors:      13*q + (13*r)/32,
		}, nil
	default:
		return Thresholds{}, fmt.Errorf("%w: %v", ErrUnknownRule, variant)
	}
}

// Next applies the transition policy to a cell with the given number of
// alive neighbors. Counts in [MinNeighbors, MinBreedNeighbors) leave the
// cell as it was.
func (t Thresholds) Next(prior Cell, alive int) Cell {
	switch {
	case alive < t.MinNeighbors || alive > t.MaxNeighbors:
		return Dead
	case alive >= t.MinBreedNeighbors:
		return Alive
	default:
		return prior
	}
}
