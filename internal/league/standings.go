package league

import "sort"

// ConferenceTable is one conference's rows in standings order.
type ConferenceTable struct {
	Conference string         `json:"conference"`
	Rows       []StandingsRow `json:"rows"`
}

// ComputeStandings tabulates every team's record from games. Rows come back
// in roster order; teams with no games get a zero row.
func ComputeStandings(teams []Team, games []Game) []StandingsRow {
	wins := make(map[string]int, len(teams))
	played := make(map[string]int, len(teams))
	for _, g := range games {
		played[g.Home.Name]++
		played[g.Away.Name]++
		wins[g.Winner.Name]++
	}

	rows := make([]StandingsRow, 0, len(teams))
	for _, t := range teams {
		w, total := wins[t.Name], played[t.Name]
		row := StandingsRow{
			Team:       t,
			Conference: t.Conference,
			Wins:       w,
			Losses:     total - w,
		}
		if total > 0 {
			row.WinPct = float64(w) / float64(total)
		}
		rows = append(rows, row)
	}
	return rows
}

// SortStandings returns a copy of rows ordered by wins then win percentage,
// both descending. Equal rows keep their input order.
func SortStandings(rows []StandingsRow) []StandingsRow {
	out := make([]StandingsRow, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		return a.WinPct > b.WinPct
	})
	return out
}

// ByConference groups rows into per-conference tables, each in standings
// order, with conferences sorted by name.
func ByConference(rows []StandingsRow) []ConferenceTable {
	index := make(map[string]int)
	var tables []ConferenceTable
	for _, r := range SortStandings(rows) {
		i, ok := index[r.Conference]
		if !ok {
			i = len(tables)
			index[r.Conference] = i
			tables = append(tables, ConferenceTable{Conference: r.Conference})
		}
		tables[i].Rows = append(tables[i].Rows, r)
	}
	sort.Slice(tables, func(i, j int) bool {
		return tables[i].Conference < tables[j].Conference
	})
	return tables
}

// ranking maps team name to its league-wide standings position, zero first.
func ranking(rows []StandingsRow) map[string]int {
	rank := make(map[string]int, len(rows))
	for i, r := range SortStandings(rows) {
		rank[r.Team.Name] = i
	}
	return rank
}
