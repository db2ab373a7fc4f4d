package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/term-gol/display"
	"github.com/sheikhrachel/term-gol/game"
	"github.com/sheikhrachel/term-gol/model"
	"github.com/sheikhrachel/term-gol/utils"
)

// openScreen builds the display collaborator selected by the config
func openScreen(config utils.Config) (game.Screen, error) {
	if config.Renderer == utils.RendererText {
		return display.NewTextDisplay(os.Stdout, config.Height, config.Width), nil
	}
	d, err := display.NewTcellDisplay()
	if err != nil {
		return nil, err
	}
	return d, nil
}

// initializeGame seeds a grid sized to the screen and wires the simulation
func initializeGame(config utils.Config, screen game.Screen) (*game.Simulation, error) {
	pattern, err := model.PatternByName(config.Pattern)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to pick seed pattern")
	}

	rows, cols := screen.Size()
	grid := model.NewGrid(rows, cols)
	if err = grid.Seed(pattern); err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to seed grid")
	}

	opts := []model.EngineOption{model.WithRowZeroQuirk(config.PreserveRowZeroQuirk)}
	if config.UseMemoryPool {
		opts = append(opts, model.WithPool(model.NewGridPool()))
	}
	engine := model.NewEngine(grid, opts...)

	footer := config.Footer
	if footer == "" {
		footer = pattern.Name
	}
	renderer := &model.TerminalRenderer{Title: config.Title, Footer: footer}

	return game.NewSimulation(screen, engine, renderer, config), nil
}

// displayFinalStats prints the run summary once the terminal is restored
func displayFinalStats(sim *game.Simulation) {
	stats := sim.Stats()
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, stats.Elapsed().Seconds())
	fmt.Printf("Population: %d | Peak: %d | Avg: %.1f\n",
		stats.Population, stats.PeakPopulation, stats.AveragePopulation)
}
