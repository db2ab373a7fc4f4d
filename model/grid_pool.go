package model

import "sync"

// GridPool recycles generation buffers between steps
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves an all-dead grid from the pool, resized to the given dimensions
func (p *GridPool) Get(height, width int) *Grid {
	g := p.pool.Get().(*Grid)
	g.Reset(height, width)
	return g
}

// Put returns a grid to the pool, clearing its state
func (p *GridPool) Put(g *Grid) {
	if g == nil {
		return
	}
	g.Clear()
	p.pool.Put(g)
}
