package league

import "math"

const (
	prestigeWeight = 0.1
	ratingScale    = 10.0
)

// WinProbability returns the chance the home side wins, in (0, 1).
// Prestige counts for a tenth of a rating point; there is no separate
// home-field bonus.
func WinProbability(homeOverall, awayOverall, homePrestige, awayPrestige float64) float64 {
	home := Team{Overall: homeOverall, Prestige: homePrestige}
	away := Team{Overall: awayOverall, Prestige: awayPrestige}
	return MatchupProbability(home, away)
}

// MatchupProbability is WinProbability for two teams.
func MatchupProbability(home, away Team) float64 {
	diff := home.Strength() - away.Strength()
	return 1 / (1 + math.Exp(-diff/ratingScale))
}
