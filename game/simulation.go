package game

import (
	"context"
	"time"

	"github.com/sheikhrachel/term-gol/model"
	"github.com/sheikhrachel/term-gol/utils"
)

// Screen is the display collaborator the simulation loop drives
type Screen interface {
	model.Canvas
	HideCursor()
	KeyPressed() bool
	Close()
}

// Simulation is the loop context: it owns the screen handle, the engine,
// the step counter and the run flag for a single run.
type Simulation struct {
	screen   Screen
	engine   *model.Engine
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	config   utils.Config

	step    int
	running bool

	sleep func(time.Duration)
}

// NewSimulation wires a seeded engine to a screen
func NewSimulation(
	screen Screen,
	engine *model.Engine,
	renderer *model.TerminalRenderer,
	config utils.Config,
) *Simulation {
	return &Simulation{
		screen:   screen,
		engine:   engine,
		renderer: renderer,
		stats:    utils.NewStats(),
		config:   config,
		sleep:    time.Sleep,
	}
}

// Step returns the number of completed frames
func (s *Simulation) Step() int {
	return s.step
}

// Stats returns the population statistics gathered so far
func (s *Simulation) Stats() *utils.Stats {
	return s.stats
}

// Run loops until a key is pressed, ctx is done or the generation limit is hit.
// Stop conditions are only checked at the end of a frame.
func (s *Simulation) Run(ctx context.Context) error {
	s.screen.HideCursor()
	s.running = true

	for s.running {
		grid := s.engine.Step()
		s.renderer.Display(s.screen, grid, s.step)

		s.sleep(s.config.FrameRate)
		s.step++
		s.stats.Update(s.step, grid.CountLivingCells())

		if s.screen.KeyPressed() {
			s.running = false
		}
		if s.config.MaxGenerations > 0 && s.step >= s.config.MaxGenerations {
			s.running = false
		}
		select {
		case <-ctx.Done():
			s.running = false
		default:
		}
	}

	if e, ok := s.screen.(errReporter); ok {
		return e.Err()
	}
	return nil
}

// errReporter is implemented by screens that defer write errors
type errReporter interface {
	Err() error
}
