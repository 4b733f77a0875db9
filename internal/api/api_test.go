package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utakatalp/season-simulator/internal/league"
	"github.com/utakatalp/season-simulator/internal/metrics"
	"github.com/utakatalp/season-simulator/internal/roster"
	"github.com/utakatalp/season-simulator/internal/simulation"
)

func testSource() *roster.Memory {
	var records []roster.Record
	rating := 95.0
	for _, conf := range []string{"SEC", "Big Ten", "ACC", "MAC"} {
		for i := 0; i < 4; i++ {
			records = append(records, roster.Record{
				Team:       fmt.Sprintf("%s Team %d", conf, i),
				Season:     "2025",
				Conference: conf,
				Overall:    rating,
				Prestige:   3,
			})
			rating--
		}
	}
	return roster.NewMemory(records)
}

type failingSource struct{}

func (failingSource) Seasons(context.Context) ([]string, error) {
	return nil, errors.New("database unavailable")
}

func (failingSource) Roster(context.Context, string) (league.Roster, error) {
	return league.Roster{}, errors.New("database unavailable")
}

func newTestServer(t *testing.T, src roster.Source) (http.Handler, *metrics.Recorder) {
	t.Helper()
	rec := metrics.NewRecorder()
	h := NewHandler(src, simulation.New(nil, rec), Defaults{MaxTrials: 5000}, nil)
	return NewRouter(h, rec, nil), rec
}

func do(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func TestHealthSetsRequestID(t *testing.T) {
	h, _ := newTestServer(t, testSource())
	rec := do(t, h, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRequestIDIsEchoedWhenValid(t *testing.T) {
	h, _ := newTestServer(t, testSource())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))

	req.Header.Set("X-Request-ID", "bad id with spaces")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.NotEqual(t, "bad id with spaces", rec.Header().Get("X-Request-ID"))
}

func TestSeasonsAndTeams(t *testing.T) {
	h, _ := newTestServer(t, testSource())

	rec := do(t, h, http.MethodGet, "/seasons")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"seasons":["2025"]}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/seasons/2025/teams")
	require.Equal(t, http.StatusOK, rec.Code)
	var r league.Roster
	decode(t, rec, &r)
	assert.Len(t, r.Teams, 16)

	rec = do(t, h, http.MethodGet, "/seasons/1999/teams")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSimulate(t *testing.T) {
	h, _ := newTestServer(t, testSource())

	res := do(t, h, http.MethodPost, "/seasons/2025/simulate?weeks=4&seed=17")
	require.Equal(t, http.StatusOK, res.Code, res.Body.String())

	var rep simulation.Report
	decode(t, res, &rep)
	assert.Equal(t, uint64(17), rep.Seed)
	assert.Len(t, rep.Schedule, 4)
	assert.Len(t, rep.Standings, 16)
	require.NotNil(t, rep.Champion)
	assert.Len(t, rep.Field, 12)

	again := do(t, h, http.MethodPost, "/seasons/2025/simulate?weeks=4&seed=17")
	var rep2 simulation.Report
	decode(t, again, &rep2)
	assert.Equal(t, rep.Champion.Name, rep2.Champion.Name)

	m := do(t, h, http.MethodGet, "/metrics")
	assert.Contains(t, m.Body.String(), `season_sim_http_requests_total{code="200",route="/seasons/{season}/simulate"} 2`)
}

func TestSimulateWithoutPlayoffs(t *testing.T) {
	h, _ := newTestServer(t, testSource())
	res := do(t, h, http.MethodPost, "/seasons/2025/simulate?playoffs=false&seed=1")
	require.Equal(t, http.StatusOK, res.Code)

	var body map[string]any
	decode(t, res, &body)
	assert.NotContains(t, body, "bracket")
	assert.NotContains(t, body, "champion")
}

func TestSimulateRejectsBadParams(t *testing.T) {
	h, _ := newTestServer(t, testSource())
	for _, q := range []string{"weeks=0", "weeks=x", "seed=-1", "playoffs=maybe", "odd=coin"} {
		res := do(t, h, http.MethodPost, "/seasons/2025/simulate?"+q)
		assert.Equal(t, http.StatusBadRequest, res.Code, q)
		var body map[string]string
		decode(t, res, &body)
		assert.NotEmpty(t, body["error"])
		assert.NotEmpty(t, body["requestId"])
	}

	res := do(t, h, http.MethodPost, "/seasons/1999/simulate")
	assert.Equal(t, http.StatusNotFound, res.Code)

	res = do(t, h, http.MethodGet, "/seasons/2025/simulate")
	assert.Equal(t, http.StatusMethodNotAllowed, res.Code)
}

func TestCalendar(t *testing.T) {
	h, _ := newTestServer(t, testSource())

	res := do(t, h, http.MethodGet, "/seasons/2025/teams/"+url.PathEscape("MAC Team 1")+"/calendar?seed=3")
	require.Equal(t, http.StatusOK, res.Code, res.Body.String())

	var cal simulation.Calendar
	decode(t, res, &cal)
	assert.Equal(t, "MAC Team 1", cal.Team.Name)
	// Three conference mates, six outside draws, one bowl.
	require.Len(t, cal.Games, 10)
	assert.Equal(t, league.LabelBowl, cal.Games[9].Label)

	res = do(t, h, http.MethodGet, "/seasons/2025/teams/Nobody/calendar")
	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestProjection(t *testing.T) {
	h, _ := newTestServer(t, testSource())

	res := do(t, h, http.MethodGet, "/seasons/2025/teams/"+url.PathEscape("SEC Team 0")+"/projection?trials=200&seed=9")
	require.Equal(t, http.StatusOK, res.Code, res.Body.String())

	var p league.Projection
	decode(t, res, &p)
	assert.Equal(t, 200, p.Trials)
	assert.Equal(t, 12, p.Games)
	assert.Len(t, p.Distribution, 13)

	res = do(t, h, http.MethodGet, "/seasons/2025/teams/"+url.PathEscape("SEC Team 0")+"/projection?trials=999999")
	assert.Equal(t, http.StatusBadRequest, res.Code)

	res = do(t, h, http.MethodGet, "/seasons/2025/teams/"+url.PathEscape("SEC Team 0")+"/projection?games=0")
	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestSourceFailureIsInternalError(t *testing.T) {
	h, _ := newTestServer(t, failingSource{})

	res := do(t, h, http.MethodGet, "/seasons")
	assert.Equal(t, http.StatusInternalServerError, res.Code)
	assert.NotContains(t, res.Body.String(), "database unavailable")
}
