package model

import "github.com/sheikhrachel/term-gol/rules"

// Engine owns the current generation and the swap to the next one
type Engine struct {
	current    *Grid
	pool       *GridPool
	generation int

	// Skip row 0 in the update pass, so it stays dead after the first step.
	rowZeroQuirk bool
}

// EngineOption configures an Engine
type EngineOption func(*Engine)

// WithPool recycles discarded generations through pool
func WithPool(pool *GridPool) EngineOption {
	return func(e *Engine) {
		e.pool = pool
	}
}

// WithRowZeroQuirk reproduces the classic update pass that starts at row 1
func WithRowZeroQuirk(enabled bool) EngineOption {
	return func(e *Engine) {
		e.rowZeroQuirk = enabled
	}
}

// NewEngine takes ownership of the seeded grid
func NewEngine(seed *Grid, opts ...EngineOption) *Engine {
	e := &Engine{current: seed}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Current returns the current generation. With a pool it is only valid until the next Step.
func (e *Engine) Current() *Grid {
	return e.current
}

// Generation returns how many steps have been taken
func (e *Engine) Generation() int {
	return e.generation
}

// Step computes the next generation, swaps it in and returns it
func (e *Engine) Step() *Grid {
	next := e.allocate(e.current.height, e.current.width)

	startRow := 0
	if e.rowZeroQuirk {
		startRow = 1
	}
	NextGeneration(e.current, next, startRow)

	old := e.current
	e.current = next
	e.generation++
	if e.pool != nil {
		e.pool.Put(old)
	}
	return e.current
}

func (e *Engine) allocate(height, width int) *Grid {
	if e.pool != nil {
		return e.pool.Get(height, width)
	}
	return NewGrid(height, width)
}

// NextGeneration fills next, which must be all dead and the same size as cur,
// from rows startRow and below of cur.
func NextGeneration(cur, next *Grid, startRow int) {
	for row := startRow; row < cur.height; row++ {
		for col := 0; col < cur.width; col++ {
			next.cells[row][col] = rules.NextCellState(cur.cells[row][col], cur.CountAliveNeighbors(row, col))
		}
	}
}
