package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	RendererTcell = "tcell"
	RendererText  = "text"
)

// ErrInvalidConfig is returned by Validate for unusable settings
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Width                int           `json:"width"`
	Height               int           `json:"height"`
	FrameRate            time.Duration `json:"frame_rate"`
	Pattern              string        `json:"pattern"`
	Renderer             string        `json:"renderer"`
	MaxGenerations       int           `json:"max_generations"`
	UseMemoryPool        bool          `json:"use_memory_pool"`
	PreserveRowZeroQuirk bool          `json:"preserve_row_zero_quirk"`
	Title                string        `json:"title"`
	Footer               string        `json:"footer"` // defaults to the pattern name
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:          80, // text renderer only, tcell uses the terminal size
		Height:         24,
		FrameRate:      time.Second,
		Pattern:        "r-pentomino",
		Renderer:       RendererTcell,
		MaxGenerations: 0,
		UseMemoryPool:  true,
		Title:          "Conway's Game of Life",
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] file: %+v", filename)
	}

	return config, nil
}

// Validate rejects settings the game cannot run with
func (c Config) Validate() error {
	switch {
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative frame_rate %v", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative max_generations %d", c.MaxGenerations)
	case c.Renderer != RendererTcell && c.Renderer != RendererText:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown renderer %q", c.Renderer)
	case c.Renderer == RendererText && (c.Width <= 0 || c.Height <= 0):
		return errors.Wrapf(ErrInvalidConfig, "[Validate] text renderer needs a positive size, got %dx%d", c.Width, c.Height)
	case c.Renderer == RendererText && c.MaxGenerations == 0:
		// no keyboard to stop it
		return errors.Wrap(ErrInvalidConfig, "[Validate] text renderer needs max_generations")
	}
	return nil
}
