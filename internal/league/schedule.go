package league

const (
	calendarGames           = 12
	calendarConferenceGames = 6
	calendarFallbackGames   = 10
	calendarOutsideGames    = 6
)

// PlaySeason simulates weeks rounds of random pairings over teams. Each week
// the full list is shuffled and consumed two at a time; with an odd count
// the last team sits the week out. Opponents may repeat across weeks.
func (s *Simulator) PlaySeason(teams []Team, weeks int) [][]Game {
	season := make([][]Game, 0, weeks)
	for week := 1; week <= weeks; week++ {
		pairs := s.pairWeek(teams)
		round := make([]Game, 0, len(pairs))
		for _, m := range pairs {
			g := s.Play(m)
			g.Week = week
			round = append(round, g)
		}
		season = append(season, round)
	}
	return season
}

func (s *Simulator) pairWeek(teams []Team) []Matchup {
	pool := make([]Team, len(teams))
	copy(pool, teams)
	s.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	pairs := make([]Matchup, 0, len(pool)/2)
	for len(pool) >= 2 {
		n := len(pool)
		pairs = append(pairs, Matchup{Home: pool[n-1], Away: pool[n-2]})
		pool = pool[:n-2]
	}
	return pairs
}

// Flatten joins week-by-week rounds into one list, preserving order.
func Flatten(rounds [][]Game) []Game {
	var out []Game
	for _, r := range rounds {
		out = append(out, r...)
	}
	return out
}

// TeamCalendar builds and plays a twelve-game calendar for one team followed
// by a bowl game against the highest rated other team in the league.
//
// Up to six opponents come from the team's own conference without
// replacement; a conference with no other members falls back to up to ten
// opponents drawn from the whole league. Six more are drawn with
// replacement from outside the team's conference, so a fallback calendar may
// meet the same opponent twice. The combined list is shuffled and cut to
// twelve.
func (s *Simulator) TeamCalendar(roster Roster, name string) ([]CalendarGame, error) {
	team, err := roster.Team(name)
	if err != nil {
		return nil, err
	}

	var mates []Team
	for _, t := range roster.Conference(team.Conference) {
		if t.Name != team.Name {
			mates = append(mates, t)
		}
	}

	var conf []Team
	if len(mates) > 0 {
		conf = s.sample(mates, calendarConferenceGames)
	} else {
		conf = s.sample(roster.Others(team.Name), calendarFallbackGames)
	}

	var outside []Team
	for _, t := range roster.Others(team.Name) {
		if t.Conference != team.Conference {
			outside = append(outside, t)
		}
	}

	opponents := conf
	for i := 0; i < calendarOutsideGames && len(outside) > 0; i++ {
		opponents = append(opponents, outside[s.rng.IntN(len(outside))])
	}
	s.rng.Shuffle(len(opponents), func(i, j int) {
		opponents[i], opponents[j] = opponents[j], opponents[i]
	})
	if len(opponents) > calendarGames {
		opponents = opponents[:calendarGames]
	}

	calendar := make([]CalendarGame, 0, len(opponents)+1)
	for i, opp := range opponents {
		g := s.PlayCalendar(Matchup{Home: team, Away: opp})
		g.Week = i + 1
		calendar = append(calendar, g)
	}

	if top, ok := roster.Strongest(team.Name); ok {
		g := s.PlayCalendar(Matchup{Home: team, Away: top})
		g.Label = LabelBowl
		calendar = append(calendar, g)
	}
	return calendar, nil
}

// sample draws up to n teams without replacement.
func (s *Simulator) sample(teams []Team, n int) []Team {
	pool := make([]Team, len(teams))
	copy(pool, teams)
	if n > len(pool) {
		n = len(pool)
	}
	for i := 0; i < n; i++ {
		j := i + s.rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}
