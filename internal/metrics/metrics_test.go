package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRun(t *testing.T) {
	r := NewRecorder()
	r.RecordRun(KindSeason, 48, 3*time.Millisecond)
	r.RecordRun(KindSeason, 2, time.Millisecond)
	r.RecordRun(KindProjection, 0, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.runs.WithLabelValues(KindSeason)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.runs.WithLabelValues(KindProjection)))
	assert.Equal(t, 50.0, testutil.ToFloat64(r.games))
}

func TestRecordRequestAndHandler(t *testing.T) {
	r := NewRecorder()
	r.RecordRequest("/seasons", http.StatusOK)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `season_sim_http_requests_total{code="200",route="/seasons"} 1`)
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.RecordRun(KindSeason, 1, time.Second)
		r.RecordRequest("/", 200)
	})
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
