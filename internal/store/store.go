package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"github.com/utakatalp/season-simulator/internal/league"
	"github.com/utakatalp/season-simulator/internal/logging"
	"github.com/utakatalp/season-simulator/internal/roster"
)

// Store wraps a Postgres connection holding the season dataset. It serves
// rosters to the simulator; simulation results are never written back.
type Store struct {
	DB     *sql.DB
	logger *slog.Logger
}

// NewStore opens a Postgres connection using the given connection string.
func NewStore(ctx context.Context, connStr string, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// verify early
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	logging.Debug(logger, "database connection established")
	return &Store{DB: db, logger: logger}, nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.DB.Close()
}

// Migrate creates the necessary tables if they do not exist.
func (s *Store) Migrate(ctx context.Context) error {
	queries := []string{
		`
		CREATE TABLE IF NOT EXISTS team_seasons (
        id         SERIAL PRIMARY KEY,
        season     TEXT             NOT NULL,
        team       TEXT             NOT NULL,
        conference TEXT             NOT NULL DEFAULT '',
        overall    DOUBLE PRECISION NOT NULL DEFAULT 75,
        prestige   DOUBLE PRECISION NOT NULL DEFAULT 3,
        UNIQUE (season, team)
    );
    `,
		`CREATE INDEX IF NOT EXISTS team_seasons_season_idx ON team_seasons (season);`,
	}
	for _, q := range queries {
		if _, err := s.DB.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("migrating: %w", err)
		}
	}
	return nil
}

// UpsertRecords writes dataset rows in one transaction, replacing the
// ratings of any season/team pair that already exists.
func (s *Store) UpsertRecords(ctx context.Context, records []roster.Record) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin upsert tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
    INSERT INTO team_seasons (season, team, conference, overall, prestige)
    VALUES ($1, $2, $3, $4, $5)
    ON CONFLICT (season, team) DO UPDATE
    SET conference = EXCLUDED.conference,
        overall    = EXCLUDED.overall,
        prestige   = EXCLUDED.prestige
    `)
	if err != nil {
		return fmt.Errorf("preparing upsert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx, r.Season, r.Team, r.Conference, r.Overall, r.Prestige); err != nil {
			return fmt.Errorf("upserting team %s (%s): %w", r.Team, r.Season, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert tx: %w", err)
	}
	logging.Info(s.logger, "roster imported", logging.FieldCount, len(records))
	return nil
}

// Seasons lists seasons in the order they were first imported.
func (s *Store) Seasons(ctx context.Context) ([]string, error) {
	const q = `
    SELECT season
    FROM team_seasons
    GROUP BY season
    ORDER BY MIN(id)
    `
	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("querying seasons: %w", err)
	}
	defer rows.Close()

	var seasons []string
	for rows.Next() {
		var season string
		if err := rows.Scan(&season); err != nil {
			return nil, fmt.Errorf("scanning season: %w", err)
		}
		seasons = append(seasons, season)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating seasons: %w", err)
	}
	return seasons, nil
}

// Roster loads one season. A season with no rows is reported as missing data.
func (s *Store) Roster(ctx context.Context, season string) (league.Roster, error) {
	const q = `
        SELECT
            team,
            conference,
            overall,
            prestige
        FROM team_seasons
        WHERE season = $1
        ORDER BY id
    `
	rows, err := s.DB.QueryContext(ctx, q, season)
	if err != nil {
		return league.Roster{}, fmt.Errorf("querying roster %s: %w", season, err)
	}
	defer rows.Close()

	var teams []league.Team
	for rows.Next() {
		var t league.Team
		if err := rows.Scan(&t.Name, &t.Conference, &t.Overall, &t.Prestige); err != nil {
			return league.Roster{}, fmt.Errorf("scanning team row: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return league.Roster{}, fmt.Errorf("iterating roster rows: %w", err)
	}
	if len(teams) == 0 {
		return league.Roster{}, &league.MissingDataError{Season: season}
	}
	return league.NewRoster(season, teams), nil
}

// DeleteSeason removes every row of one season.
func (s *Store) DeleteSeason(ctx context.Context, season string) error {
	if _, err := s.DB.ExecContext(ctx, `DELETE FROM team_seasons WHERE season = $1`, season); err != nil {
		return fmt.Errorf("deleting season %s: %w", season, err)
	}
	return nil
}
