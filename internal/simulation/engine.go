// Package simulation composes the league stages into complete runs: a
// regular season with standings and an optional postseason, a single-team
// calendar, or a Monte-Carlo projection. Every run builds its own seeded
// generator, so runs share no state and replay exactly from their seed.
package simulation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/utakatalp/season-simulator/internal/league"
	"github.com/utakatalp/season-simulator/internal/logging"
	"github.com/utakatalp/season-simulator/internal/metrics"
	"github.com/utakatalp/season-simulator/internal/random"
	"github.com/utakatalp/season-simulator/internal/roster"
)

// Report is the complete output of one season run.
type Report struct {
	RunID            string                   `json:"run_id"`
	Season           string                   `json:"season"`
	Seed             uint64                   `json:"seed"`
	Weeks            int                      `json:"weeks"`
	Schedule         [][]league.Game          `json:"schedule"`
	Standings        []league.StandingsRow    `json:"standings"`
	Conferences      []league.ConferenceTable `json:"conferences"`
	ConferenceFinals []league.ConferenceFinal `json:"conference_finals,omitempty"`
	Field            []league.Team            `json:"field,omitempty"`
	Bracket          *league.Bracket          `json:"bracket,omitempty"`
	Champion         *league.Team             `json:"champion,omitempty"`
}

// Games returns every game of the run in play order.
func (r Report) Games() []league.Game {
	games := league.Flatten(r.Schedule)
	for _, f := range r.ConferenceFinals {
		if f.Game != nil {
			games = append(games, *f.Game)
		}
	}
	if r.Bracket != nil {
		games = append(games, r.Bracket.Games()...)
	}
	return games
}

// Calendar is the output of a single-team calendar run.
type Calendar struct {
	RunID  string                `json:"run_id"`
	Season string                `json:"season"`
	Seed   uint64                `json:"seed"`
	Team   league.Team           `json:"team"`
	Games  []league.CalendarGame `json:"games"`
	Wins   int                   `json:"wins"`
	Losses int                   `json:"losses"`
}

// Engine runs simulations and reports them to its logger and recorder.
// It holds no per-run state and is safe for concurrent use.
type Engine struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// New returns an engine. Both arguments may be nil.
func New(logger *slog.Logger, rec *metrics.Recorder) *Engine {
	return &Engine{logger: logger, metrics: rec}
}

// Season plays the regular season, tabulates standings and, when
// opts.Playoffs is set, runs conference finals, field selection and the
// national bracket.
func (e *Engine) Season(r league.Roster, seed uint64, opts Options) (Report, error) {
	if err := opts.validate(); err != nil {
		return Report{}, err
	}
	if r.Len() == 0 {
		return Report{}, &league.MissingDataError{Season: r.Season}
	}
	start := time.Now()
	sim := league.NewSeededSimulator(seed)

	rep := Report{
		RunID:  uuid.NewString(),
		Season: r.Season,
		Seed:   seed,
		Weeks:  opts.Weeks,
	}
	rep.Schedule = sim.PlaySeason(r.Teams, opts.Weeks)
	rep.Standings = league.ComputeStandings(r.Teams, league.Flatten(rep.Schedule))
	rep.Conferences = league.ByConference(rep.Standings)

	if opts.Playoffs {
		rep.ConferenceFinals = sim.ConferenceFinals(rep.Standings)
		rep.Field = league.SelectField(rep.Standings, league.Champions(rep.ConferenceFinals), opts.MajorConferences, opts.FieldSize)
		bracket := sim.PlayBracket(rep.Field, rep.Standings, opts.OddPolicy)
		rep.Bracket = &bracket
		rep.Champion = bracket.Champion
	}

	games := len(rep.Games())
	e.metrics.RecordRun(metrics.KindSeason, games, time.Since(start))
	args := []any{
		logging.FieldRunID, rep.RunID,
		logging.FieldSeason, rep.Season,
		logging.FieldSeed, seed,
		logging.FieldWeeks, opts.Weeks,
		logging.FieldGames, games,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	}
	if rep.Champion != nil {
		args = append(args, logging.FieldChampion, rep.Champion.Name)
	}
	logging.Info(e.logger, "season simulated", args...)
	return rep, nil
}

// Calendar plays a twelve-game calendar plus bowl for one team.
func (e *Engine) Calendar(r league.Roster, team string, seed uint64) (Calendar, error) {
	start := time.Now()
	sim := league.NewSeededSimulator(seed)

	t, err := r.Team(team)
	if err != nil {
		return Calendar{}, err
	}
	games, err := sim.TeamCalendar(r, t.Name)
	if err != nil {
		return Calendar{}, err
	}

	cal := Calendar{RunID: uuid.NewString(), Season: r.Season, Seed: seed, Team: t, Games: games}
	for _, g := range games {
		if g.Loser().Name == t.Name {
			cal.Losses++
		} else {
			cal.Wins++
		}
	}

	e.metrics.RecordRun(metrics.KindCalendar, len(games), time.Since(start))
	logging.Info(e.logger, "calendar simulated",
		logging.FieldRunID, cal.RunID,
		logging.FieldSeason, r.Season,
		logging.FieldTeam, team,
		logging.FieldSeed, seed,
		logging.FieldGames, len(games),
		"wins", cal.Wins,
	)
	return cal, nil
}

// Project runs trials Monte-Carlo seasons of games for one team against the
// rest of the roster.
func (e *Engine) Project(r league.Roster, team string, games, trials int, seed uint64) (league.Projection, error) {
	if games < 1 {
		return league.Projection{}, fmt.Errorf("%w: games must be positive, got %d", ErrInvalidOptions, games)
	}
	if trials < 1 {
		return league.Projection{}, fmt.Errorf("%w: trials must be positive, got %d", ErrInvalidOptions, trials)
	}
	t, err := r.Team(team)
	if err != nil {
		return league.Projection{}, err
	}
	start := time.Now()

	p := league.NewSeededSimulator(seed).Project(t, r.Others(team), games, trials)

	e.metrics.RecordRun(metrics.KindProjection, p.Games*p.Trials, time.Since(start))
	logging.Info(e.logger, "projection simulated",
		logging.FieldSeason, r.Season,
		logging.FieldTeam, team,
		logging.FieldSeed, seed,
		logging.FieldTrials, trials,
		"average_wins", p.AverageWins,
		"playoff_probability", p.PlayoffProbability,
	)
	return p, nil
}

// RunSeasons simulates several seasons concurrently. Each season loads its
// own roster from src and plays with a seed derived from base and its
// position, so the batch is reproducible. Reports keep the order of seasons.
func (e *Engine) RunSeasons(ctx context.Context, src roster.Source, seasons []string, base uint64, opts Options) ([]Report, error) {
	reports := make([]Report, len(seasons))
	g, ctx := errgroup.WithContext(ctx)
	for i, season := range seasons {
		g.Go(func() error {
			r, err := src.Roster(ctx, season)
			if err != nil {
				return fmt.Errorf("loading season %s: %w", season, err)
			}
			rep, err := e.Season(r, random.Derive(base, i), opts)
			if err != nil {
				return fmt.Errorf("simulating season %s: %w", season, err)
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
