package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectDistribution(t *testing.T) {
	r := buildRoster([]string{"MAC"}, 14)
	star := Team{Name: "Star", Conference: "SEC", Overall: 140, Prestige: 9}

	p := NewSeededSimulator(13).Project(star, r.Teams, 12, 500)

	require.Len(t, p.Distribution, 13)
	sum := 0
	for _, n := range p.Distribution {
		sum += n
	}
	assert.Equal(t, 500, sum)
	assert.Equal(t, 500, p.Trials)
	assert.Equal(t, PlayoffWinThreshold, p.Threshold)
	assert.Greater(t, p.AverageWins, 10.0)
	assert.Greater(t, p.PlayoffProbability, 0.5)
	assert.LessOrEqual(t, p.PlayoffProbability, 1.0)
}

func TestProjectWeakTeamRarelyReachesThreshold(t *testing.T) {
	r := buildRoster([]string{"SEC"}, 12)
	minnow := Team{Name: "Minnow", Overall: 40, Prestige: 1}

	p := NewSeededSimulator(5).Project(minnow, r.Teams, 12, 300)
	assert.Less(t, p.AverageWins, 1.0)
	assert.Equal(t, 0.0, p.PlayoffProbability)
	assert.InDelta(t, 1.0, p.Probability(0)+p.Probability(1)+p.Probability(2)+p.Probability(3), 0.05)
}

func TestProjectCapsGamesAtPoolSize(t *testing.T) {
	pool := []Team{team("A", "X", 80), team("B", "X", 80)}
	p := NewSeededSimulator(1).Project(team("Me", "Y", 80), pool, 12, 10)
	assert.Equal(t, 2, p.Games)
	assert.Len(t, p.Distribution, 3)
	assert.Equal(t, 0.0, p.PlayoffProbability)
}

func TestProjectNoTrials(t *testing.T) {
	p := NewSeededSimulator(1).Project(team("Me", "Y", 80), []Team{team("A", "X", 80)}, 1, 0)
	assert.Equal(t, 0, p.Trials)
	assert.Equal(t, 0.0, p.AverageWins)
	assert.Equal(t, 0.0, p.Probability(0))
}
