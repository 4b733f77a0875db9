package league

import "fmt"

const (
	// DefaultPrestige is substituted when a roster row carries no usable prestige.
	DefaultPrestige = 3.0
	// DefaultOverall is substituted when a roster row carries no usable overall rating.
	DefaultOverall = 75.0
)

// Team represents a program in one season of the league. Teams are values and
// never change during a simulation run.
type Team struct {
	Name       string  `json:"name"`
	Conference string  `json:"conference"`
	Overall    float64 `json:"overall"`
	Prestige   float64 `json:"prestige"`
}

// Strength is the combined rating compared by MatchupProbability.
func (t Team) Strength() float64 {
	return t.Overall + t.Prestige*prestigeWeight
}

// Roster is the snapshot of every team in one season.
type Roster struct {
	Season string `json:"season"`
	Teams  []Team `json:"teams"`
}

// NewRoster copies teams so later changes by the caller do not leak into a run.
func NewRoster(season string, teams []Team) Roster {
	cp := make([]Team, len(teams))
	copy(cp, teams)
	return Roster{Season: season, Teams: cp}
}

// Len returns the number of teams in the roster.
func (r Roster) Len() int { return len(r.Teams) }

// Team looks a team up by name.
func (r Roster) Team(name string) (Team, error) {
	for _, t := range r.Teams {
		if t.Name == name {
			return t, nil
		}
	}
	return Team{}, &MissingDataError{Season: r.Season, Team: name}
}

// Conferences returns the conference labels in the order they are first seen.
func (r Roster) Conferences() []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range r.Teams {
		if !seen[t.Conference] {
			seen[t.Conference] = true
			out = append(out, t.Conference)
		}
	}
	return out
}

// Conference returns the members of conf in roster order.
func (r Roster) Conference(conf string) []Team {
	var out []Team
	for _, t := range r.Teams {
		if t.Conference == conf {
			out = append(out, t)
		}
	}
	return out
}

// Others returns every team except the named one.
func (r Roster) Others(name string) []Team {
	out := make([]Team, 0, len(r.Teams))
	for _, t := range r.Teams {
		if t.Name != name {
			out = append(out, t)
		}
	}
	return out
}

// Strongest returns the team with the highest overall rating, skipping the
// excluded name. The first team wins ties.
func (r Roster) Strongest(exclude string) (Team, bool) {
	var best Team
	found := false
	for _, t := range r.Teams {
		if t.Name == exclude {
			continue
		}
		if !found || t.Overall > best.Overall {
			best, found = t, true
		}
	}
	return best, found
}

// Site is the venue label shown on a calendar game.
type Site string

const (
	SiteHome    Site = "Home"
	SiteAway    Site = "Away"
	SiteNeutral Site = "Neutral"
)

var sites = []Site{SiteHome, SiteAway, SiteNeutral}

// Labels for games outside the numbered regular season.
const (
	LabelBowl            = "Bowl"
	LabelConferenceFinal = "Conference Final"
	LabelSemifinal       = "Semifinal"
	LabelNationalFinal   = "National Final"
)

// Matchup is an ordered pairing for one contest.
type Matchup struct {
	Home Team `json:"home"`
	Away Team `json:"away"`
}

// Game is a completed contest.
type Game struct {
	Home      Team   `json:"home"`
	Away      Team   `json:"away"`
	HomeScore int    `json:"home_score"`
	AwayScore int    `json:"away_score"`
	Winner    Team   `json:"winner"`
	Week      int    `json:"week,omitempty"`
	Label     string `json:"label,omitempty"`
}

// Stage returns the symbolic label, or "Week N" for regular-season games.
func (g Game) Stage() string {
	if g.Label != "" {
		return g.Label
	}
	return fmt.Sprintf("Week %d", g.Week)
}

// Loser returns the team that did not win.
func (g Game) Loser() Team {
	if g.Winner.Name == g.Home.Name {
		return g.Away
	}
	return g.Home
}

// Involves reports whether the named team played in the game.
func (g Game) Involves(name string) bool {
	return g.Home.Name == name || g.Away.Name == name
}

func (g Game) ScoreLine() string {
	return fmt.Sprintf("%s %d - %d %s",
		g.Home.Name, g.HomeScore,
		g.AwayScore, g.Away.Name,
	)
}

// CalendarGame is a game from a single-team calendar. Site is cosmetic; the
// selected team always occupies the home slot of the underlying game.
type CalendarGame struct {
	Game
	Site Site `json:"site"`
}

// StandingsRow holds one team's record, derived from a set of games.
type StandingsRow struct {
	Team       Team    `json:"team"`
	Conference string  `json:"conference"`
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
	WinPct     float64 `json:"win_pct"`
}

// Played is the number of games the team appeared in.
func (r StandingsRow) Played() int { return r.Wins + r.Losses }
