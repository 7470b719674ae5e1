package viz

import (
	"fmt"
	"io"

	"github.com/san-kum/ndlife/internal/life"
	"github.com/san-kum/ndlife/internal/sim"
)

// PrintObserver writes every generation to W as it is produced.
type PrintObserver struct {
	W        io.Writer
	Renderer *Renderer
	err      error
}

func (p *PrintObserver) OnStep(g *life.Grid, s sim.Sample) {
	if p.err != nil {
		return
	}
	body, err := p.Renderer.Render(g)
	if err != nil {
		p.err = err
		return
	}
	_, p.err = fmt.Fprintf(p.W, "generation %d  population %d\n%s\n", s.Generation, s.Population, body)
}

// Err returns the first render or write error, if any.
func (p *PrintObserver) Err() error { return p.err }
