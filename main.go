package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/term-gol/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			log.Printf("ignoring %s: %v", configFile, err)
		}
		config = utils.DefaultConfig()
	}

	screen, err := openScreen(config)
	if err != nil {
		log.Fatalf("failed to open screen: %v", err)
	}

	sim, err := initializeGame(config, screen)
	if err != nil {
		screen.Close()
		log.Fatalf("failed to initialize game: %v", err)
	}

	// Handle SIGTERM gracefully, the screen reports Ctrl+C as a key press
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runErr := sim.Run(ctx)
	screen.Close()
	if runErr != nil {
		log.Printf("run ended with error: %v", runErr)
	}

	displayFinalStats(sim)
}
