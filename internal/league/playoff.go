package league

import (
	"fmt"
	"sort"
)

// PlayoffFieldSize is the number of teams invited to the national bracket.
const PlayoffFieldSize = 12

// DefaultMajorConferences receive a guaranteed playoff spot for their champion.
var DefaultMajorConferences = []string{"SEC", "Big Ten", "Big 12", "ACC", "Pac-12"}

// OddPolicy decides what happens to the extra team in an odd bracket round.
type OddPolicy int

const (
	// ByeBestSeed advances the best-ranked team of an odd round without a game.
	ByeBestSeed OddPolicy = iota
	// DropTrailing eliminates whichever team is left unpaired after the shuffle.
	// A round of exactly three still gives the best seed a bye.
	DropTrailing
)

func (p OddPolicy) String() string {
	switch p {
	case ByeBestSeed:
		return "bye"
	case DropTrailing:
		return "drop"
	default:
		return fmt.Sprintf("OddPolicy(%d)", int(p))
	}
}

// ParseOddPolicy accepts the String form of a policy.
func ParseOddPolicy(s string) (OddPolicy, error) {
	switch s {
	case "", "bye":
		return ByeBestSeed, nil
	case "drop":
		return DropTrailing, nil
	}
	return 0, fmt.Errorf("unknown odd-round policy %q", s)
}

// ConferenceFinal is the title game of one conference. Game is nil when the
// conference has a single member, who is champion by default.
type ConferenceFinal struct {
	Conference string `json:"conference"`
	Game       *Game  `json:"game,omitempty"`
	Champion   Team   `json:"champion"`
}

// ConferenceFinals plays the top two teams of every conference against each
// other, the higher seed at home. Conferences are visited in name order.
func (s *Simulator) ConferenceFinals(rows []StandingsRow) []ConferenceFinal {
	tables := ByConference(rows)
	finals := make([]ConferenceFinal, 0, len(tables))
	for _, table := range tables {
		cf := ConferenceFinal{Conference: table.Conference}
		switch {
		case len(table.Rows) >= 2:
			g := s.Play(Matchup{Home: table.Rows[0].Team, Away: table.Rows[1].Team})
			g.Label = LabelConferenceFinal
			cf.Game = &g
			cf.Champion = g.Winner
		case len(table.Rows) == 1:
			cf.Champion = table.Rows[0].Team
		default:
			continue
		}
		finals = append(finals, cf)
	}
	return finals
}

// Champions indexes conference finals by conference.
func Champions(finals []ConferenceFinal) map[string]Team {
	out := make(map[string]Team, len(finals))
	for _, f := range finals {
		out[f.Conference] = f.Champion
	}
	return out
}

// SelectField builds the playoff field. Each listed major conference that
// appears in the standings contributes its champion: the entry in champions
// when present, otherwise its top standings team. Remaining places up to
// size go to the best remaining teams league-wide. The field is smaller when
// there are not enough distinct teams.
func SelectField(rows []StandingsRow, champions map[string]Team, majors []string, size int) []Team {
	ordered := SortStandings(rows)
	field := make([]Team, 0, size)
	in := make(map[string]bool, size)
	add := func(t Team) {
		if len(field) < size && !in[t.Name] {
			in[t.Name] = true
			field = append(field, t)
		}
	}

	for _, conf := range majors {
		if champ, ok := champions[conf]; ok {
			add(champ)
			continue
		}
		for _, r := range ordered {
			if r.Conference == conf {
				add(r.Team)
				break
			}
		}
	}
	for _, r := range ordered {
		add(r.Team)
	}
	return field
}

// Round is one elimination stage of the bracket.
type Round struct {
	Number    int    `json:"number"`
	Games     []Game `json:"games"`
	Bye       *Team  `json:"bye,omitempty"`
	Dropped   *Team  `json:"dropped,omitempty"`
	Survivors []Team `json:"survivors"`
}

// Bracket is the full national playoff. Champion is nil only for an empty field.
type Bracket struct {
	Field    []Team  `json:"field"`
	Rounds   []Round `json:"rounds"`
	Final    *Game   `json:"final,omitempty"`
	Champion *Team   `json:"champion,omitempty"`
}

// Games returns every bracket game including the final.
func (b Bracket) Games() []Game {
	var out []Game
	for _, r := range b.Rounds {
		out = append(out, r.Games...)
	}
	if b.Final != nil {
		out = append(out, *b.Final)
	}
	return out
}

// PlayBracket runs single-elimination rounds over field until two teams are
// left, then plays the national final. Each round shuffles the survivors and
// pairs them in order. rows supplies the seeding used for byes and for home
// side in the final; teams missing from rows rank last.
func (s *Simulator) PlayBracket(field []Team, rows []StandingsRow, policy OddPolicy) Bracket {
	rank := ranking(rows)
	seed := func(t Team) int {
		if r, ok := rank[t.Name]; ok {
			return r
		}
		return len(rank)
	}

	b := Bracket{Field: append([]Team(nil), field...)}
	alive := append([]Team(nil), field...)

	for number := 1; len(alive) > 2; number++ {
		r := Round{Number: number}
		pool := append([]Team(nil), alive...)

		if len(pool)%2 == 1 && (policy == ByeBestSeed || len(pool) == 3) {
			best := 0
			for i := range pool {
				if seed(pool[i]) < seed(pool[best]) {
					best = i
				}
			}
			bye := pool[best]
			r.Bye = &bye
			pool = append(pool[:best], pool[best+1:]...)
		}

		s.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

		var winners []Team
		for i := 0; i+1 < len(pool); i += 2 {
			g := s.Play(Matchup{Home: pool[i], Away: pool[i+1]})
			r.Games = append(r.Games, g)
			winners = append(winners, g.Winner)
		}
		if len(pool)%2 == 1 {
			dropped := pool[len(pool)-1]
			r.Dropped = &dropped
		}
		if r.Bye != nil {
			winners = append(winners, *r.Bye)
		}

		label := fmt.Sprintf("Playoff Round %d", number)
		if len(winners) == 2 {
			label = LabelSemifinal
		}
		for i := range r.Games {
			r.Games[i].Label = label
		}

		r.Survivors = winners
		b.Rounds = append(b.Rounds, r)
		alive = winners
	}

	switch len(alive) {
	case 2:
		home, away := alive[0], alive[1]
		if seed(away) < seed(home) {
			home, away = away, home
		}
		g := s.Play(Matchup{Home: home, Away: away})
		g.Label = LabelNationalFinal
		b.Final = &g
		b.Champion = &g.Winner
	case 1:
		champ := alive[0]
		b.Champion = &champ
	}
	return b
}

// Seeded orders teams by their standings position.
func Seeded(teams []Team, rows []StandingsRow) []Team {
	rank := ranking(rows)
	out := append([]Team(nil), teams...)
	sort.SliceStable(out, func(i, j int) bool {
		ri, iok := rank[out[i].Name]
		rj, jok := rank[out[j].Name]
		if iok != jok {
			return iok
		}
		return ri < rj
	})
	return out
}
