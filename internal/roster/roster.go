// Package roster loads the season dataset the simulator runs on and turns it
// into league rosters. Raw rows are coerced here: a missing or non-numeric
// prestige becomes league.DefaultPrestige and a missing overall becomes
// league.DefaultOverall, each reported as a Warning.
package roster

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/utakatalp/season-simulator/internal/league"
	"github.com/utakatalp/season-simulator/internal/logging"
)

// Source supplies rosters by season.
type Source interface {
	Seasons(ctx context.Context) ([]string, error)
	Roster(ctx context.Context, season string) (league.Roster, error)
}

// RawRecord is one dataset row before coercion. Every field is text because
// spreadsheets and hand-written files disagree on types.
type RawRecord struct {
	Team       string `yaml:"team"`
	Season     string `yaml:"season"`
	Conference string `yaml:"conference"`
	Overall    string `yaml:"overall"`
	Prestige   string `yaml:"prestige"`
}

// Record is a coerced dataset row.
type Record struct {
	Team       string
	Season     string
	Conference string
	Overall    float64
	Prestige   float64
}

// LeagueTeam converts the record to its league form.
func (r Record) LeagueTeam() league.Team {
	return league.Team{Name: r.Team, Conference: r.Conference, Overall: r.Overall, Prestige: r.Prestige}
}

// Warning describes a row that was repaired or skipped.
type Warning struct {
	Row     int
	Season  string
	Team    string
	Field   string
	Value   string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("row %d (%s %s): %s %q: %s", w.Row, w.Season, w.Team, w.Field, w.Value, w.Message)
}

// Normalize coerces raw rows. Rows without a team name are skipped, as are
// repeats of a season/team pair after the first.
func Normalize(raw []RawRecord, logger *slog.Logger) ([]Record, []Warning) {
	var (
		records  []Record
		warnings []Warning
	)
	warn := func(w Warning) {
		warnings = append(warnings, w)
		logging.Warn(logger, "roster row repaired",
			"row", w.Row,
			logging.FieldSeason, w.Season,
			logging.FieldTeam, w.Team,
			"field", w.Field,
			"value", w.Value,
			"reason", w.Message,
		)
	}

	seen := make(map[string]bool)
	for i, r := range raw {
		row := i + 1
		rec := Record{
			Team:       strings.TrimSpace(r.Team),
			Season:     strings.TrimSpace(r.Season),
			Conference: strings.TrimSpace(r.Conference),
		}
		if rec.Team == "" {
			warn(Warning{Row: row, Season: rec.Season, Field: "team", Message: "missing team name, row skipped"})
			continue
		}
		key := rec.Season + "\x00" + rec.Team
		if seen[key] {
			warn(Warning{Row: row, Season: rec.Season, Team: rec.Team, Field: "team", Value: rec.Team, Message: "duplicate team in season, row skipped"})
			continue
		}
		seen[key] = true

		var ok bool
		if rec.Overall, ok = parseNumber(r.Overall); !ok {
			rec.Overall = league.DefaultOverall
			warn(Warning{Row: row, Season: rec.Season, Team: rec.Team, Field: "overall", Value: r.Overall,
				Message: fmt.Sprintf("not numeric, using %g", league.DefaultOverall)})
		}
		if rec.Prestige, ok = parseNumber(r.Prestige); !ok {
			rec.Prestige = league.DefaultPrestige
			warn(Warning{Row: row, Season: rec.Season, Team: rec.Team, Field: "prestige", Value: r.Prestige,
				Message: fmt.Sprintf("not numeric, using %g", league.DefaultPrestige)})
		}
		records = append(records, rec)
	}
	return records, warnings
}

func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
