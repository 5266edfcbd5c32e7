package httpapi_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/finder"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/httpapi"
	"github.com/katalvlaran/gridpath/scenario"
)

// teeScenario is the four-cell T used by the cli tests.
const teeScenario = `{
  "name": "tee",
  "start": {"x": 0, "y": 0},
  "goal": {"x": 2, "y": 0},
  "available": [{"rect": {"x_min": 0, "y_min": 0, "x_max": 2, "y_max": 0}}, {"cells": [{"x": 1, "y": 1}]}],
  "duplicate_allowed": [{"cells": [{"x": 1, "y": 0}]}],
  "duplicate_limit": 1
}`

type searchBody struct {
	Scenario string              `json:"scenario"`
	Found    bool                `json:"found"`
	Length   int                 `json:"length"`
	Shortest []grid.Coordinate   `json:"shortest"`
	Text     string              `json:"text"`
	Paths    int                 `json:"paths"`
	AllPaths [][]grid.Coordinate `json:"all_paths"`
	Stats    finder.Stats        `json:"stats"`
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestHealthz(t *testing.T) {
	rec := do(t, httpapi.NewHandler(), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestDefaultScenario(t *testing.T) {
	rec := do(t, httpapi.NewHandler(), http.MethodGet, "/v1/scenarios/default", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var sc scenario.Scenario
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sc))
	assert.Equal(t, scenario.Default(), &sc)
}

func TestSearch_Shortest(t *testing.T) {
	rec := do(t, httpapi.NewHandler(), http.MethodPost, "/v1/search", teeScenario)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got searchBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "tee", got.Scenario)
	assert.True(t, got.Found)
	assert.Equal(t, 3, got.Length)
	assert.Equal(t, []grid.Coordinate{grid.C(0, 0), grid.C(1, 0), grid.C(2, 0)}, got.Shortest)
	assert.Equal(t, "[(0,0) (1,0) (2,0)]", got.Text)
	assert.Equal(t, 2, got.Paths)
	assert.Nil(t, got.AllPaths)
	assert.Equal(t, 2, got.Stats.Accepted)
}

func TestSearch_All(t *testing.T) {
	rec := do(t, httpapi.NewHandler(), http.MethodPost, "/v1/search?all=true", teeScenario)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got searchBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.AllPaths, 2)
	assert.Equal(t, []grid.Coordinate{
		grid.C(0, 0), grid.C(1, 0), grid.C(1, 1), grid.C(1, 0), grid.C(2, 0),
	}, got.AllPaths[0])
}

func TestSearch_NoPath(t *testing.T) {
	body := `{"name":"split","start":{"x":0,"y":0},"goal":{"x":2,"y":0},
"available":[{"cells":[{"x":0,"y":0},{"x":2,"y":0}]}]}`
	rec := do(t, httpapi.NewHandler(), http.MethodPost, "/v1/search", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got searchBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.False(t, got.Found)
	assert.Equal(t, "[]", got.Text)
	assert.Nil(t, got.Shortest)
	assert.True(t, got.Stats.ShortCircuited)
}

func TestSearch_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"name":`},
		{"negative limit", `{"name":"n","available":[{"cells":[{"x":0,"y":0}]}],"duplicate_limit":-1}`},
		{"empty available", `{"name":"e"}`},
		{"goal outside", `{"name":"g","goal":{"x":5,"y":5},"available":[{"cells":[{"x":0,"y":0}]}]}`},
	}
	h := httpapi.NewHandler()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/v1/search", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

// TestSearch_Oversized: huge regions and bodies are rejected before any
// allocation proportional to their size.
func TestSearch_Oversized(t *testing.T) {
	h := httpapi.NewHandler()

	rect := `{"name":"huge","goal":{"x":1,"y":0},
"available":[{"rect":{"x_min":0,"y_min":0,"x_max":4294967296,"y_max":4294967296}}]}`
	rec := do(t, h, http.MethodPost, "/v1/search", rect)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "too many cells")

	wide := `{"name":"wide","available":[{"rect":{"x_min":0,"y_min":0,"x_max":2048,"y_max":1024}}]}`
	rec = do(t, h, http.MethodPost, "/v1/search", wide)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	big := `{"name":"` + strings.Repeat("a", httpapi.MaxBodyBytes) + `"}`
	rec = do(t, h, http.MethodPost, "/v1/search", big)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "too large")
}

func TestSearch_BudgetExceeded(t *testing.T) {
	h := httpapi.NewHandler(httpapi.WithMaxSteps(100))
	body, err := json.Marshal(scenario.Default())
	require.NoError(t, err)

	rec := do(t, h, http.MethodPost, "/v1/search", string(body))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "step budget exceeded")
}

func TestMetrics(t *testing.T) {
	h := httpapi.NewHandler()
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/v1/search", teeScenario).Code)

	rec := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `gridpath_searches_total{outcome="found"} 1`)
	assert.Contains(t, rec.Body.String(), "gridpath_paths_accepted_total 2")
}

func TestMethodNotAllowed(t *testing.T) {
	rec := do(t, httpapi.NewHandler(), http.MethodGet, "/v1/search", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
