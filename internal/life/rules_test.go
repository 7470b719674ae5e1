package life

import (
	"errors"
	"strings"
	"testing"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		dim     int
		variant RuleVariant
		want    Thresholds
	}{
		{1, Basic, Thresholds{0, 1, 1}},
		{2, Basic, Thresholds{2, 3, 3}},
		{3, Basic, Thresholds{6, 9, 9}},
		{4, Basic, Thresholds{20, 27, 27}},
		{1, Percentage, Thresholds{0, 1, 0}},
		{2, Percentage, Thresholds{2, 3, 3}},
		{3, Percentage, Thresholds{6, 9, 10}},
		{4, Percentage, Thresholds{20, 28, 32}},
	}

	for _, tt := range tests {
		got, err := Derive(tt.dim, tt.variant)
		if err != nil {
			t.Fatalf("Derive(%d, %v): %v", tt.dim, tt.variant, err)
		}
		if got != tt.want {
			t.Errorf("Derive(%d, %v) = %+v, want %+v", tt.dim, tt.variant, got, tt.want)
		}
	}
}

func TestDerive_Ordering(t *testing.T) {
	for _, v := range []RuleVariant{Basic, Percentage} {
		for dim := 1; dim <= 8; dim++ {
			th, err := Derive(dim, v)
			if err != nil {
				t.Fatal(err)
			}
			n, _ := NeighborCount(dim)
			if th.MinNeighbors < 0 || th.MaxNeighbors > n {
				t.Errorf("%v dim=%d: thresholds %+v outside [0, %d]", v, dim, th, n)
			}
			if th.MinNeighbors > th.MaxNeighbors {
				t.Errorf("%v dim=%d: min %d > max %d", v, dim, th.MinNeighbors, th.MaxNeighbors)
			}
		}
	}
}

func TestDerive_Errors(t *testing.T) {
	if _, err := Derive(0, Basic); !errors.Is(err, ErrDegenerate) {
		t.Errorf("dim 0: got %v", err)
	}
	if _, err := Derive(2, RuleVariant(7)); !errors.Is(err, ErrUnknownRule) {
		t.Errorf("bad variant: got %v", err)
	}
	if _, err := Derive(64, Basic); !errors.Is(err, ErrTooLarge) {
		t.Errorf("dim 64: got %v", err)
	}
}

func TestParseRule(t *testing.T) {
	tests := []struct {
		in      string
		want    RuleVariant
		wantErr bool
	}{
		{"basic", Basic, false},
		{"Basic", Basic, false},
		{" percentage ", Percentage, false},
		{"PERCENT", Percentage, false},
		{"conway", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseRule(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRule(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseRule(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseRule_ErrorListsRules(t *testing.T) {
	_, err := ParseRule("conway")
	if !errors.Is(err, ErrUnknownRule) {
		t.Fatalf("got %v, want ErrUnknownRule", err)
	}
	for _, name := range RuleNames() {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q should mention %q", err, name)
		}
	}
}

func TestThresholdsNext(t *testing.T) {
	th := Thresholds{MinNeighbors: 2, MinBreedNeighbors: 4, MaxNeighbors: 5}

	tests := []struct {
		prior Cell
		alive int
		want  Cell
	}{
		{Alive, 1, Dead},
		{Alive, 6, Dead},
		{Dead, 6, Dead},
		{Alive, 2, Alive},
		{Dead, 2, Dead},
		{Dead, 3, Dead},
		{Dead, 4, Alive},
		{Dead, 5, Alive},
		{Alive, 5, Alive},
	}

	for _, tt := range tests {
		if got := th.Next(tt.prior, tt.alive); got != tt.want {
			t.Errorf("Next(%v, %d) = %v, want %v", tt.prior, tt.alive, got, tt.want)
		}
	}
}

func TestThresholdsNext_BreedAboveMax(t *testing.T) {
	th := Thresholds{MinNeighbors: 1, MinBreedNeighbors: 5, MaxNeighbors: 3}
	for alive := 1; alive <= 3; alive++ {
		if got := th.Next(Dead, alive); got != Dead {
			t.Errorf("dead cell with %d neighbors became %v", alive, got)
		}
		if got := th.Next(Alive, alive); got != Alive {
			t.Errorf("alive cell with %d neighbors became %v", alive, got)
		}
	}
}
