package league

// PlayoffWinThreshold is the win total counted as a playoff-calibre season.
const PlayoffWinThreshold = 10

// Projection summarises a Monte-Carlo run for one team.
type Projection struct {
	Team  Team `json:"team"`
	Games int  `json:"games"`
	// Trials is the number of sampled seasons.
	Trials int `json:"trials"`
	// Distribution[w] counts the trials that ended with exactly w wins.
	Distribution       []int   `json:"distribution"`
	AverageWins        float64 `json:"average_wins"`
	PlayoffProbability float64 `json:"playoff_probability"`
	Threshold          int     `json:"threshold"`
}

// Probability returns the fraction of trials that ended with exactly wins.
func (p Projection) Probability(wins int) float64 {
	if p.Trials == 0 || wins < 0 || wins >= len(p.Distribution) {
		return 0
	}
	return float64(p.Distribution[wins]) / float64(p.Trials)
}

// Project samples trials seasons for team. Each trial draws games opponents
// from pool without replacement (all of them when the pool is smaller) and
// counts a win whenever a uniform draw falls under the home win probability.
func (s *Simulator) Project(team Team, pool []Team, games, trials int) Projection {
	if games > len(pool) {
		games = len(pool)
	}
	if games < 0 {
		games = 0
	}
	p := Projection{
		Team:         team,
		Games:        games,
		Distribution: make([]int, games+1),
		Threshold:    PlayoffWinThreshold,
	}
	if trials <= 0 {
		return p
	}
	p.Trials = trials

	total, clinched := 0, 0
	for trial := 0; trial < trials; trial++ {
		wins := 0
		for _, opp := range s.sample(pool, games) {
			if s.rng.Float64() < MatchupProbability(team, opp) {
				wins++
			}
		}
		p.Distribution[wins]++
		total += wins
		if wins >= PlayoffWinThreshold {
			clinched++
		}
	}

	p.AverageWins = float64(total) / float64(trials)
	p.PlayoffProbability = float64(clinched) / float64(trials)
	return p
}
