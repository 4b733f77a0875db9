package roster

import (
	"context"

	"github.com/utakatalp/season-simulator/internal/league"
)

// Memory is a Source backed by records held in memory.
type Memory struct {
	records []Record
	seasons []string
	teams   map[string][]league.Team
}

// NewMemory indexes records by season, keeping first-seen order for both
// seasons and teams.
func NewMemory(records []Record) *Memory {
	m := &Memory{
		records: append([]Record(nil), records...),
		teams:   make(map[string][]league.Team),
	}
	for _, r := range records {
		if _, ok := m.teams[r.Season]; !ok {
			m.seasons = append(m.seasons, r.Season)
		}
		m.teams[r.Season] = append(m.teams[r.Season], r.LeagueTeam())
	}
	return m
}

// Records returns a copy of the coerced rows.
func (m *Memory) Records() []Record {
	return append([]Record(nil), m.records...)
}

func (m *Memory) Seasons(context.Context) ([]string, error) {
	return append([]string(nil), m.seasons...), nil
}

// Roster returns a fresh copy of the season's teams.
func (m *Memory) Roster(_ context.Context, season string) (league.Roster, error) {
	teams, ok := m.teams[season]
	if !ok || len(teams) == 0 {
		return league.Roster{}, &league.MissingDataError{Season: season}
	}
	return league.NewRoster(season, teams), nil
}
