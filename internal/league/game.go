package league

import "math/rand/v2"

// scoreModel describes the two normal score distributions used for a game:
// the side the draw favours and the other side.
type scoreModel struct {
	favBase, favMean, favSD float64
	dogBase, dogMean, dogSD float64
}

var (
	seasonScores   = scoreModel{favBase: 20, favMean: 15, favSD: 8, dogBase: 15, dogMean: 10, dogSD: 5}
	calendarScores = scoreModel{favBase: 10, favMean: 10, favSD: 7, dogBase: 7, dogMean: 7, dogSD: 5}
)

// Simulator plays games. All randomness comes from its generator, so two
// simulators built from the same seed produce the same results. A Simulator
// is not safe for concurrent use.
type Simulator struct {
	rng *rand.Rand
}

// NewSimulator wraps rng. A nil rng gets a randomly seeded generator.
func NewSimulator(rng *rand.Rand) *Simulator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Simulator{rng: rng}
}

// NewSeededSimulator returns a simulator with a deterministic PCG source.
func NewSeededSimulator(seed uint64) *Simulator {
	return NewSimulator(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Play simulates one regular or postseason game.
func (s *Simulator) Play(m Matchup) Game {
	return s.play(m, seasonScores)
}

// PlayCalendar simulates a calendar game and tags it with a random site.
// The site never feeds into the score draw.
func (s *Simulator) PlayCalendar(m Matchup) CalendarGame {
	g := s.play(m, calendarScores)
	return CalendarGame{Game: g, Site: sites[s.rng.IntN(len(sites))]}
}

func (s *Simulator) play(m Matchup, model scoreModel) Game {
	prob := MatchupProbability(m.Home, m.Away)
	homeFavoured := s.rng.Float64() < prob

	fav := s.score(model.favBase, model.favMean, model.favSD)
	dog := s.score(model.dogBase, model.dogMean, model.dogSD)

	g := Game{Home: m.Home, Away: m.Away}
	if homeFavoured {
		g.HomeScore, g.AwayScore = fav, dog
	} else {
		g.HomeScore, g.AwayScore = dog, fav
	}

	// Equal scores go to the away side.
	if g.HomeScore > g.AwayScore {
		g.Winner = m.Home
	} else {
		g.Winner = m.Away
	}
	return g
}

func (s *Simulator) score(base, mean, sd float64) int {
	return int(base + mean + s.rng.NormFloat64()*sd)
}
