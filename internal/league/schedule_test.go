package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaySeasonFourTeamsOneWeek(t *testing.T) {
	teams := []Team{team("A", "X", 90), team("B", "X", 80), team("C", "Y", 70), team("D", "Y", 60)}
	season := NewSeededSimulator(11).PlaySeason(teams, 1)

	require.Len(t, season, 1)
	require.Len(t, season[0], 2)

	appearances := make(map[string]int)
	for _, g := range season[0] {
		assert.Equal(t, 1, g.Week)
		assert.NotEqual(t, g.Home.Name, g.Away.Name)
		appearances[g.Home.Name]++
		appearances[g.Away.Name]++
	}
	assert.Equal(t, map[string]int{"A": 1, "B": 1, "C": 1, "D": 1}, appearances)
}

func TestPlaySeasonOddTeamSitsOut(t *testing.T) {
	r := buildRoster([]string{"SEC", "ACC"}, 5)
	teams := r.Teams[:9]
	season := NewSeededSimulator(5).PlaySeason(teams, 12)

	require.Len(t, season, 12)
	for week, round := range season {
		require.Len(t, round, 4, "week %d", week+1)
		seen := make(map[string]bool)
		for _, g := range round {
			assert.Equal(t, week+1, g.Week)
			for _, name := range []string{g.Home.Name, g.Away.Name} {
				assert.False(t, seen[name], "%s plays twice in week %d", name, week+1)
				seen[name] = true
			}
		}
	}

	games := Flatten(season)
	assert.Len(t, games, 48)
	for _, row := range ComputeStandings(teams, games) {
		played := 0
		for _, g := range games {
			if g.Involves(row.Team.Name) {
				played++
			}
		}
		assert.Equal(t, played, row.Wins+row.Losses)
	}
}

func TestPlaySeasonZeroWeeks(t *testing.T) {
	season := NewSeededSimulator(1).PlaySeason([]Team{team("A", "X", 80), team("B", "X", 80)}, 0)
	assert.Empty(t, season)
}

func TestTeamCalendarShape(t *testing.T) {
	r := buildRoster([]string{"SEC", "ACC"}, 8)
	const name = "ACC-3"

	calendar, err := NewSeededSimulator(9).TeamCalendar(r, name)
	require.NoError(t, err)
	require.Len(t, calendar, 13)

	confOpponents := make(map[string]bool)
	outside := 0
	for i, g := range calendar[:12] {
		assert.Equal(t, i+1, g.Week)
		assert.Equal(t, name, g.Home.Name)
		assert.NotEqual(t, name, g.Away.Name)
		if g.Away.Conference == "ACC" {
			assert.False(t, confOpponents[g.Away.Name], "conference opponents are drawn without replacement")
			confOpponents[g.Away.Name] = true
		} else {
			outside++
		}
	}
	assert.Len(t, confOpponents, 6)
	assert.Equal(t, 6, outside)

	bowl := calendar[12]
	assert.Equal(t, LabelBowl, bowl.Label)
	assert.Equal(t, "SEC-0", bowl.Away.Name)
}

func TestTeamCalendarLoneConferenceFallsBackToLeague(t *testing.T) {
	r := buildRoster([]string{"SEC"}, 15)
	r.Teams = append(r.Teams, team("Notre Dame", "Independent", 90))

	calendar, err := NewSeededSimulator(2).TeamCalendar(r, "Notre Dame")
	require.NoError(t, err)
	assert.Len(t, calendar, 13)
	for _, g := range calendar {
		assert.Equal(t, "SEC", g.Away.Conference)
	}
}

func TestTeamCalendarLoneTeamInSmallLeagueStillFillsTwelve(t *testing.T) {
	r := buildRoster([]string{"SEC"}, 7)
	r.Teams = append(r.Teams, team("Indy", "Independent", 80))

	calendar, err := NewSeededSimulator(17).TeamCalendar(r, "Indy")
	require.NoError(t, err)
	// Seven league-wide picks plus six outside draws, cut to twelve, then the bowl.
	require.Len(t, calendar, 13)
	for i, g := range calendar[:12] {
		assert.Equal(t, i+1, g.Week)
		assert.Equal(t, "SEC", g.Away.Conference)
	}
	assert.Equal(t, LabelBowl, calendar[12].Label)
}

func TestTeamCalendarSmallConference(t *testing.T) {
	r := NewRoster("2025", []Team{
		team("A", "X", 80), team("B", "X", 70), team("C", "Y", 99),
	})

	calendar, err := NewSeededSimulator(4).TeamCalendar(r, "A")
	require.NoError(t, err)
	// One conference mate, six outside draws from a single team, one bowl.
	require.Len(t, calendar, 8)
	assert.Equal(t, "C", calendar[7].Away.Name)
}

func TestTeamCalendarUnknownTeam(t *testing.T) {
	_, err := NewSeededSimulator(1).TeamCalendar(buildRoster([]string{"SEC"}, 2), "Ghost")
	assert.ErrorIs(t, err, ErrMissingData)
}
