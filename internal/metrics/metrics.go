package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Run kinds used as the "kind" label.
const (
	KindSeason     = "season"
	KindCalendar   = "calendar"
	KindProjection = "projection"
)

// Recorder holds the simulator's Prometheus instruments on a private
// registry. A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry     *prometheus.Registry
	runs         *prometheus.CounterVec
	runDuration  *prometheus.HistogramVec
	games        prometheus.Counter
	httpRequests *prometheus.CounterVec
}

// NewRecorder registers every instrument on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		registry: reg,
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "season_sim_runs_total",
			Help: "Simulation runs completed, by kind.",
		}, []string{"kind"}),
		runDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "season_sim_run_duration_seconds",
			Help:    "Wall time of one simulation run, by kind.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
		}, []string{"kind"}),
		games: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "season_sim_games_total",
			Help: "Games simulated across all runs.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "season_sim_http_requests_total",
			Help: "HTTP requests served, by route and status code.",
		}, []string{"route", "code"}),
	}
	reg.MustRegister(r.runs, r.runDuration, r.games, r.httpRequests)
	return r
}

// RecordRun counts one finished run and the games it produced.
func (r *Recorder) RecordRun(kind string, games int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.runs.WithLabelValues(kind).Inc()
	r.runDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
	if games > 0 {
		r.games.Add(float64(games))
	}
}

// RecordRequest counts one HTTP response.
func (r *Recorder) RecordRequest(route string, status int) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
