package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/matzehuels/runegrid/pkg/errors"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "RUNEGRID_"

// LoadDotEnv loads variables from a .env file into the process environment.
// Variables already set are kept. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	return nil
}

type envVar struct {
	name  string
	apply func(c *Config, v string) error
}

var envVars = []envVar{
	{"DATA_URL", func(c *Config, v string) error { c.Source.DataURL = v; return nil }},
	{"CDN_BASE", func(c *Config, v string) error { c.Source.CDNBase = v; return nil }},
	{"CONCURRENCY", intVar(func(c *Config) *int { return &c.Source.Concurrency })},
	{"FONT", func(c *Config, v string) error { c.Font = v; return nil }},
	{"WIDTH", intVar(func(c *Config) *int { return &c.Canvas.Width })},
	{"HEIGHT", intVar(func(c *Config) *int { return &c.Canvas.Height })},
	{"CELL_SIZE", intVar(func(c *Config) *int { return &c.Grid.CellSize })},
	{"MARGIN", intVar(func(c *Config) *int { return &c.Grid.Margin })},
	{"MAX_FRAMES", intVar(func(c *Config) *int { return &c.Loop.MaxFrames })},
	{"TPS", intVar(func(c *Config) *int { return &c.Loop.TPS })},
	{"STOP_KEY", func(c *Config, v string) error { c.Loop.StopKey = v; return nil }},
	{"DEBUG", func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		c.Debug.Enabled = b
		return nil
	}},
}

func intVar(field func(*Config) *int) func(*Config, string) error {
	return func(c *Config, v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		*field(c) = n
		return nil
	}
}

// EnvNames lists the supported environment variables.
func EnvNames() []string {
	names := make([]string, len(envVars))
	for i, ev := range envVars {
		names[i] = EnvPrefix + ev.name
	}
	return names
}

// ApplyEnv overrides settings from RUNEGRID_* variables found by lookup
// (usually os.LookupEnv). It returns the names that were applied.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) ([]string, error) {
	var applied []string
	for _, ev := range envVars {
		name := EnvPrefix + ev.name
		v, ok := lookup(name)
		if !ok || v == "" {
			continue
		}
		if err := ev.apply(c, v); err != nil {
			return applied, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s=%q", name, v)
		}
		applied = append(applied, name)
	}
	return applied, nil
}
