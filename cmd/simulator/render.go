package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/utakatalp/season-simulator/internal/league"
	"github.com/utakatalp/season-simulator/internal/simulation"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printGames(w io.Writer, games []league.Game) {
	tw := newTable(w)
	fmt.Fprintln(tw, "STAGE\tHOME\tSCORE\tAWAY\tWINNER")
	for _, g := range games {
		fmt.Fprintf(tw, "%s\t%s\t%d-%d\t%s\t%s\n", g.Stage(), g.Home.Name, g.HomeScore, g.AwayScore, g.Away.Name, g.Winner.Name)
	}
	tw.Flush()
}

func printStandings(w io.Writer, tables []league.ConferenceTable) {
	for _, table := range tables {
		fmt.Fprintf(w, "\n%s\n", table.Conference)
		tw := newTable(w)
		fmt.Fprintln(tw, "TEAM\tW\tL\tPCT")
		for _, r := range table.Rows {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%.3f\n", r.Team.Name, r.Wins, r.Losses, r.WinPct)
		}
		tw.Flush()
	}
}

func printReport(w io.Writer, rep simulation.Report) {
	fmt.Fprintf(w, "Season %s (seed %d, %d weeks)\n\n", rep.Season, rep.Seed, rep.Weeks)
	printGames(w, league.Flatten(rep.Schedule))

	fmt.Fprintln(w, "\nStandings")
	printStandings(w, rep.Conferences)

	if len(rep.ConferenceFinals) > 0 {
		fmt.Fprintln(w, "\nConference finals")
		tw := newTable(w)
		for _, f := range rep.ConferenceFinals {
			line := "(unopposed)"
			if f.Game != nil {
				line = f.Game.ScoreLine()
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", f.Conference, f.Champion.Name, line)
		}
		tw.Flush()
	}

	if len(rep.Field) > 0 {
		seeded := league.Seeded(rep.Field, rep.Standings)
		names := make([]string, len(seeded))
		for i, t := range seeded {
			names[i] = fmt.Sprintf("%d. %s", i+1, t.Name)
		}
		fmt.Fprintf(w, "\nPlayoff field: %s\n", strings.Join(names, ", "))
	}
	if rep.Bracket != nil {
		for _, r := range rep.Bracket.Rounds {
			fmt.Fprintf(w, "\nRound %d\n", r.Number)
			for _, g := range r.Games {
				fmt.Fprintf(w, "  %s\n", g.ScoreLine())
			}
			if r.Bye != nil {
				fmt.Fprintf(w, "  bye: %s\n", r.Bye.Name)
			}
			if r.Dropped != nil {
				fmt.Fprintf(w, "  unpaired: %s\n", r.Dropped.Name)
			}
		}
		if rep.Bracket.Final != nil {
			fmt.Fprintf(w, "\n%s: %s\n", league.LabelNationalFinal, rep.Bracket.Final.ScoreLine())
		}
	}
	if rep.Champion != nil {
		fmt.Fprintf(w, "\nChampion: %s\n", rep.Champion.Name)
	}
}

func printCalendar(w io.Writer, cal simulation.Calendar) {
	fmt.Fprintf(w, "%s %s calendar (seed %d)\n\n", cal.Season, cal.Team.Name, cal.Seed)
	tw := newTable(w)
	fmt.Fprintln(tw, "STAGE\tSITE\tOPPONENT\tSCORE\tRESULT")
	for _, g := range cal.Games {
		result := "L"
		if g.Winner.Name == cal.Team.Name {
			result = "W"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d-%d\t%s\n", g.Stage(), g.Site, g.Away.Name, g.HomeScore, g.AwayScore, result)
	}
	tw.Flush()
	fmt.Fprintf(w, "\nRecord: %d-%d\n", cal.Wins, cal.Losses)
}

func printProjection(w io.Writer, p league.Projection) {
	fmt.Fprintf(w, "%s: %d trials of %d games\n", p.Team.Name, p.Trials, p.Games)
	fmt.Fprintf(w, "Average wins: %.2f\n", p.AverageWins)
	fmt.Fprintf(w, "P(%d+ wins): %.1f%%\n\n", p.Threshold, p.PlayoffProbability*100)
	tw := newTable(w)
	fmt.Fprintln(tw, "WINS\tTRIALS\tPROB")
	for wins, n := range p.Distribution {
		fmt.Fprintf(tw, "%d\t%d\t%.3f\n", wins, n, p.Probability(wins))
	}
	tw.Flush()
}
