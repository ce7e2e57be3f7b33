package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func probe(err error) func(context.Context) error {
	return func(context.Context) error { return err }
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) HealthResponse {
	t.Helper()
	var resp HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestLive_Always200(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler("test-version", Check{Name: "database", Critical: true, Probe: probe(errors.New("down"))})

	rec := httptest.NewRecorder()
	h.Live(rec, httptest.NewRequest(http.MethodGet, "/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, StatusOK, resp.Status)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestReady(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		checks []Check
		code   int
		status string
	}{
		{
			name:   "critical up",
			checks: []Check{{Name: "database", Critical: true, Probe: probe(nil)}},
			code:   http.StatusOK,
			status: StatusOK,
		},
		{
			name:   "critical down",
			checks: []Check{{Name: "database", Critical: true, Probe: probe(errors.New("connection refused"))}},
			code:   http.StatusServiceUnavailable,
			status: StatusDown,
		},
		{
			name: "optional down is ignored",
			checks: []Check{
				{Name: "database", Critical: true, Probe: probe(nil)},
				{Name: "gemini", Probe: probe(errors.New("no key"))},
			},
			code:   http.StatusOK,
			status: StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			NewHealthHandler("v", tt.checks...).Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.status, decode(t, rec).Status)
		})
	}
}

func TestHealth_AllOK(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler("v1.0.0",
		Check{Name: "database", Critical: true, Probe: probe(nil)},
		Check{Name: "gemini", Probe: probe(nil)},
	)

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, StatusOK, resp.Status)
	assert.Equal(t, "v1.0.0", resp.Version)
	require.Contains(t, resp.Components, "database")
	assert.Equal(t, StatusOK, resp.Components["database"].Status)
	assert.NotEmpty(t, resp.Components["database"].Latency)
}

func TestHealth_CriticalDown(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler("v1.0.0", Check{Name: "database", Critical: true, Probe: probe(errors.New("connection refused"))})

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, StatusDown, resp.Status)
	assert.Equal(t, CompStatus{Status: StatusDown, Error: "connection refused"}, resp.Components["database"])
}

func TestHealth_OptionalDownDegrades(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler("v1.0.0",
		Check{Name: "database", Critical: true, Probe: probe(nil)},
		Check{Name: "gemini", Probe: probe(errors.New("GEMINI_API_KEY is not set"))},
	)

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, StatusDegraded, resp.Status)
	assert.Equal(t, StatusDown, resp.Components["gemini"].Status)
	assert.Equal(t, StatusOK, resp.Components["database"].Status)
}
