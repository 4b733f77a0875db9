package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/utakatalp/season-simulator/internal/league"
	"github.com/utakatalp/season-simulator/internal/random"
	"github.com/utakatalp/season-simulator/internal/roster"
	"github.com/utakatalp/season-simulator/internal/simulation"
)

var errBadParam = errors.New("bad request parameter")

// Defaults fills in parameters a request leaves out.
type Defaults struct {
	Weeks            int
	Trials           int
	MaxTrials        int
	MajorConferences []string
}

// Handler serves simulations over a roster source.
type Handler struct {
	src      roster.Source
	engine   *simulation.Engine
	defaults Defaults
	logger   *slog.Logger
}

// NewHandler wires the HTTP handlers. Zero defaults fall back to the
// simulation package defaults.
func NewHandler(src roster.Source, engine *simulation.Engine, defaults Defaults, logger *slog.Logger) *Handler {
	if defaults.Weeks == 0 {
		defaults.Weeks = simulation.DefaultWeeks
	}
	if defaults.Trials == 0 {
		defaults.Trials = simulation.DefaultTrials
	}
	if defaults.MaxTrials == 0 {
		defaults.MaxTrials = 100 * simulation.DefaultTrials
	}
	if len(defaults.MajorConferences) == 0 {
		defaults.MajorConferences = league.DefaultMajorConferences
	}
	return &Handler{src: src, engine: engine, defaults: defaults, logger: logger}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.log(r))
}

func (h *Handler) Seasons(w http.ResponseWriter, r *http.Request) {
	seasons, err := h.src.Seasons(r.Context())
	if err != nil {
		writeFailure(w, r, err, h.log(r))
		return
	}
	if seasons == nil {
		seasons = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"seasons": seasons}, h.log(r))
}

func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	ros, err := h.src.Roster(r.Context(), mux.Vars(r)["season"])
	if err != nil {
		writeFailure(w, r, err, h.log(r))
		return
	}
	writeJSON(w, http.StatusOK, ros, h.log(r))
}

// Simulate runs a season. Query: weeks, seed, playoffs (default true), odd (bye|drop).
func (h *Handler) Simulate(w http.ResponseWriter, r *http.Request) {
	logger := h.log(r)
	q := r.URL.Query()

	opts := simulation.DefaultOptions()
	opts.MajorConferences = h.defaults.MajorConferences
	var err error
	if opts.Weeks, err = intParam(q.Get("weeks"), h.defaults.Weeks); err != nil {
		writeFailure(w, r, err, logger)
		return
	}
	if raw := q.Get("playoffs"); raw != "" {
		if opts.Playoffs, err = strconv.ParseBool(raw); err != nil {
			writeFailure(w, r, fmt.Errorf("%w: playoffs %q", errBadParam, raw), logger)
			return
		}
	}
	if opts.OddPolicy, err = league.ParseOddPolicy(q.Get("odd")); err != nil {
		writeFailure(w, r, fmt.Errorf("%w: %v", errBadParam, err), logger)
		return
	}
	seed, err := seedParam(q.Get("seed"))
	if err != nil {
		writeFailure(w, r, err, logger)
		return
	}

	ros, err := h.src.Roster(r.Context(), mux.Vars(r)["season"])
	if err != nil {
		writeFailure(w, r, err, logger)
		return
	}
	rep, err := h.engine.Season(ros, seed, opts)
	if err != nil {
		writeFailure(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusOK, rep, logger)
}

// Calendar runs one team's calendar. Query: seed.
func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	logger := h.log(r)
	seed, err := seedParam(r.URL.Query().Get("seed"))
	if err != nil {
		writeFailure(w, r, err, logger)
		return
	}
	vars := mux.Vars(r)
	ros, err := h.src.Roster(r.Context(), vars["season"])
	if err != nil {
		writeFailure(w, r, err, logger)
		return
	}
	cal, err := h.engine.Calendar(ros, vars["team"], seed)
	if err != nil {
		writeFailure(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusOK, cal, logger)
}

// Projection runs a Monte-Carlo projection. Query: games, trials, seed.
func (h *Handler) Projection(w http.ResponseWriter, r *http.Request) {
	logger := h.log(r)
	q := r.URL.Query()

	games, err := intParam(q.Get("games"), simulation.DefaultProjectGames)
	if err != nil {
		writeFailure(w, r, err, logger)
		return
	}
	trials, err := intParam(q.Get("trials"), h.defaults.Trials)
	if err != nil {
		writeFailure(w, r, err, logger)
		return
	}
	if trials > h.defaults.MaxTrials {
		writeFailure(w, r, fmt.Errorf("%w: trials may not exceed %d", errBadParam, h.defaults.MaxTrials), logger)
		return
	}
	seed, err := seedParam(q.Get("seed"))
	if err != nil {
		writeFailure(w, r, err, logger)
		return
	}

	vars := mux.Vars(r)
	ros, err := h.src.Roster(r.Context(), vars["season"])
	if err != nil {
		writeFailure(w, r, err, logger)
		return
	}
	p, err := h.engine.Project(ros, vars["team"], games, trials, seed)
	if err != nil {
		writeFailure(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusOK, p, logger)
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	return loggerFromContext(r.Context(), h.logger)
}

func intParam(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", errBadParam, raw)
	}
	return v, nil
}

// seedParam parses an explicit seed or draws a fresh one.
func seedParam(raw string) (uint64, error) {
	if raw == "" {
		return random.NewSeed()
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: seed %q", errBadParam, raw)
	}
	return v, nil
}
