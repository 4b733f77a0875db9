package simulation

import (
	"errors"
	"fmt"

	"github.com/utakatalp/season-simulator/internal/league"
)

const (
	DefaultWeeks        = 12
	MaxWeeks            = 52
	DefaultTrials       = 1000
	DefaultProjectGames = 12
)

// ErrInvalidOptions is wrapped by every parameter validation failure.
var ErrInvalidOptions = errors.New("invalid simulation options")

// Options controls a season run.
type Options struct {
	Weeks            int
	Playoffs         bool
	MajorConferences []string
	FieldSize        int
	OddPolicy        league.OddPolicy
}

// DefaultOptions runs a twelve-week season with the full postseason.
func DefaultOptions() Options {
	return Options{
		Weeks:            DefaultWeeks,
		Playoffs:         true,
		MajorConferences: append([]string(nil), league.DefaultMajorConferences...),
		FieldSize:        league.PlayoffFieldSize,
		OddPolicy:        league.ByeBestSeed,
	}
}

func (o Options) validate() error {
	if o.Weeks < 1 || o.Weeks > MaxWeeks {
		return fmt.Errorf("%w: weeks must be between 1 and %d, got %d", ErrInvalidOptions, MaxWeeks, o.Weeks)
	}
	if o.Playoffs && o.FieldSize < 1 {
		return fmt.Errorf("%w: playoff field size must be positive, got %d", ErrInvalidOptions, o.FieldSize)
	}
	return nil
}
