package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"studentdash/internal/infrastructure/storage"
)

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestAPI_StudentLifecycle(t *testing.T) {
	mux := New(storage.NewMemory(), slog.Default())

	w := do(t, mux, http.MethodGet, "/students", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = do(t, mux, http.MethodPost, "/students", map[string]any{
		"firstname": "Ann", "lastname": "Lee", "age": 20,
		"phone": "555-1234", "mail": "ann@x.io", "role": "student",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "1", created["id"])
	assert.NotContains(t, created, "$schema")
	assert.NotEmpty(t, created["date"])

	w = do(t, mux, http.MethodPut, "/students/1", map[string]any{
		"firstname": "Anna", "lastname": "Lee", "age": "21",
		"phone": "555-1234", "mail": "ann@x.io", "role": "student",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"firstname":"Anna"`)

	w = do(t, mux, http.MethodPut, "/students/99", map[string]any{
		"firstname": "Anna", "lastname": "Lee", "age": "21",
		"phone": "555-1234", "mail": "ann@x.io", "role": "student",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, mux, http.MethodDelete, "/students/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, mux, http.MethodDelete, "/students/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_HealthAndMetrics(t *testing.T) {
	mux := New(storage.NewMemory(), slog.Default())

	w := do(t, mux, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	do(t, mux, http.MethodGet, "/students", nil)

	w = do(t, mux, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `studentdash_http_requests_total{method="GET",path="/students",status="200"} 1`)
}
