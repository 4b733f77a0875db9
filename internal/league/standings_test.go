package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func played(home, away Team, homeScore, awayScore int) Game {
	g := Game{Home: home, Away: away, HomeScore: homeScore, AwayScore: awayScore}
	if homeScore > awayScore {
		g.Winner = home
	} else {
		g.Winner = away
	}
	return g
}

func TestComputeStandingsTeamWinsAll(t *testing.T) {
	x, a, b, c := team("X", "SEC", 90), team("A", "SEC", 80), team("B", "ACC", 70), team("C", "ACC", 60)
	games := []Game{
		played(x, a, 30, 10),
		played(b, x, 14, 21),
		played(x, c, 28, 27),
	}

	rows := ComputeStandings([]Team{x, a, b, c}, games)
	require.Len(t, rows, 4)

	assert.Equal(t, "X", rows[0].Team.Name)
	assert.Equal(t, 3, rows[0].Wins)
	assert.Equal(t, 0, rows[0].Losses)
	assert.Equal(t, 1.0, rows[0].WinPct)
	assert.Equal(t, 3, rows[0].Played())

	for _, r := range rows[1:] {
		assert.Equal(t, 0, r.Wins)
		assert.Equal(t, 1, r.Losses)
		assert.Equal(t, 0.0, r.WinPct)
	}
}

func TestComputeStandingsZeroGames(t *testing.T) {
	rows := ComputeStandings([]Team{team("A", "X", 80)}, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].Played())
	assert.Equal(t, 0.0, rows[0].WinPct)
}

func TestComputeStandingsTieCountsForAway(t *testing.T) {
	a, b := team("A", "X", 80), team("B", "X", 80)
	rows := ComputeStandings([]Team{a, b}, []Game{played(a, b, 17, 17)})
	assert.Equal(t, 0, rows[0].Wins)
	assert.Equal(t, 1, rows[1].Wins)
}

func TestSortStandingsStableOnTies(t *testing.T) {
	rows := []StandingsRow{
		{Team: team("A", "X", 0), Wins: 5, WinPct: 0.5},
		{Team: team("B", "X", 0), Wins: 7, WinPct: 0.7},
		{Team: team("C", "X", 0), Wins: 5, WinPct: 0.5},
		{Team: team("D", "X", 0), Wins: 5, WinPct: 0.625},
	}
	sorted := SortStandings(rows)

	var names []string
	for _, r := range sorted {
		names = append(names, r.Team.Name)
	}
	assert.Equal(t, []string{"B", "D", "A", "C"}, names)
	assert.Equal(t, "A", rows[0].Team.Name, "input is not reordered")
}

func TestByConferenceGroupsAndSorts(t *testing.T) {
	rows := []StandingsRow{
		{Team: team("A", "SEC", 0), Conference: "SEC", Wins: 1},
		{Team: team("B", "ACC", 0), Conference: "ACC", Wins: 2},
		{Team: team("C", "SEC", 0), Conference: "SEC", Wins: 3},
	}
	tables := ByConference(rows)
	require.Len(t, tables, 2)
	assert.Equal(t, "ACC", tables[0].Conference)
	assert.Equal(t, "SEC", tables[1].Conference)
	require.Len(t, tables[1].Rows, 2)
	assert.Equal(t, "C", tables[1].Rows[0].Team.Name)
}
