package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	config := DefaultConfig()
	if err := config.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if config.FrameRate != time.Second {
		t.Fatalf("frame rate = %v, expected 1s", config.FrameRate)
	}
	if config.Pattern != "r-pentomino" {
		t.Fatalf("pattern = %q, expected r-pentomino", config.Pattern)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{"pattern": "acorn", "frame_rate": 500000000, "preserve_row_zero_quirk": true}`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Pattern != "acorn" || config.FrameRate != 500*time.Millisecond || !config.PreserveRowZeroQuirk {
		t.Fatalf("overrides not applied: %+v", config)
	}
	if config.Renderer != RendererTcell || !config.UseMemoryPool {
		t.Fatalf("defaults lost: %+v", config)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if !os.IsNotExist(errors.Cause(err)) {
		t.Fatalf("err = %v, expected not exist", err)
	}
}

func TestLoadConfigBadJSON(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, `{"width": "wide"}`)); err == nil {
		t.Fatal("expected unmarshal error")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"negative frame rate", func(c *Config) { c.FrameRate = -time.Second }, false},
		{"negative max generations", func(c *Config) { c.MaxGenerations = -1 }, false},
		{"unknown renderer", func(c *Config) { c.Renderer = "curses" }, false},
		{"text without limit", func(c *Config) { c.Renderer = RendererText }, false},
		{"text without size", func(c *Config) {
			c.Renderer = RendererText
			c.MaxGenerations = 10
			c.Width = 0
		}, false},
		{"bounded text run", func(c *Config) {
			c.Renderer = RendererText
			c.MaxGenerations = 10
		}, true},
		{"zero delay", func(c *Config) { c.FrameRate = 0 }, true},
	}

	for _, tc := range cases {
		config := DefaultConfig()
		tc.mutate(&config)
		err := config.Validate()
		if tc.valid && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.valid && errors.Cause(err) != ErrInvalidConfig {
			t.Errorf("%s: err = %v, expected ErrInvalidConfig", tc.name, err)
		}
	}
}
