package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime configuration for the simulator server.
type Config struct {
	Addr             string        `env:"SIM_ADDR" envDefault:":8080"`
	DatabaseURL      string        `env:"SIM_DATABASE_URL"`
	RosterFile       string        `env:"SIM_ROSTER_FILE"`
	DefaultWeeks     int           `env:"SIM_DEFAULT_WEEKS" envDefault:"12"`
	DefaultTrials    int           `env:"SIM_DEFAULT_TRIALS" envDefault:"1000"`
	MaxTrials        int           `env:"SIM_MAX_TRIALS" envDefault:"100000"`
	MajorConferences []string      `env:"SIM_MAJOR_CONFERENCES" envSeparator:"," envDefault:"SEC,Big Ten,Big 12,ACC,Pac-12"`
	ReadTimeout      time.Duration `env:"SIM_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout     time.Duration `env:"SIM_WRITE_TIMEOUT" envDefault:"60s"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string        `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads configuration from environment variables with sensible defaults
// and validates the result.
func Load() (Config, error) {
	cfg, err := Parse()
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse reads the environment without validating, so callers can apply
// command-line overrides before calling Validate.
func Parse() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	for i, c := range cfg.MajorConferences {
		cfg.MajorConferences[i] = strings.TrimSpace(c)
	}
	return cfg, nil
}

// Validate reports settings that cannot work together.
func (c Config) Validate() error {
	var errs []error
	if c.DatabaseURL == "" && c.RosterFile == "" {
		errs = append(errs, errors.New("one of SIM_DATABASE_URL or SIM_ROSTER_FILE is required"))
	}
	if c.DefaultWeeks < 1 {
		errs = append(errs, fmt.Errorf("SIM_DEFAULT_WEEKS must be positive, got %d", c.DefaultWeeks))
	}
	if c.DefaultTrials < 1 {
		errs = append(errs, fmt.Errorf("SIM_DEFAULT_TRIALS must be positive, got %d", c.DefaultTrials))
	}
	if c.MaxTrials < c.DefaultTrials {
		errs = append(errs, fmt.Errorf("SIM_MAX_TRIALS (%d) is below SIM_DEFAULT_TRIALS (%d)", c.MaxTrials, c.DefaultTrials))
	}
	return errors.Join(errs...)
}
