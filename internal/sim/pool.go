package sim

import (
	"sync"

	"github.com/san-kum/ndlife/internal/life"
)

// BufferPool recycles cell snapshot buffers between runs.
type BufferPool struct {
	pool sync.Pool
}

func NewBufferPool() *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new([]life.Cell)
			},
		},
	}
}

func (p *BufferPool) Get() *[]life.Cell {
	return p.pool.Get().(*[]life.Cell)
}

func (p *BufferPool) Put(b *[]life.Cell) {
	*b = (*b)[:0]
	p.pool.Put(b)
}

// GetAndCopy returns a pooled buffer holding the grid's current cells.
func (p *BufferPool) GetAndCopy(g *life.Grid) *[]life.Cell {
	b := p.Get()
	*b = g.CopyCells(*b)
	return b
}
