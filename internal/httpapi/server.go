// Package httpapi exposes path searches over HTTP.
//
// Routes:
//
//	GET  /healthz                 liveness probe, "ok"
//	GET  /v1/scenarios/default    the built-in driver scenario as JSON
//	POST /v1/search[?all=true]    run the scenario in the request body
//	GET  /metrics                 Prometheus metrics for this server
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/finder"
	"github.com/katalvlaran/gridpath/metrics"
	"github.com/katalvlaran/gridpath/route"
	"github.com/katalvlaran/gridpath/scenario"
)

// Defaults applied when the corresponding option is not given.
const (
	DefaultMaxSteps = 50_000_000
	DefaultTimeout  = 30 * time.Second

	// MaxBodyBytes bounds the size of a search request body.
	MaxBodyBytes = 1 << 20
)

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMaxSteps caps the step budget of every search; n <= 0 keeps the default.
func WithMaxSteps(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxSteps = n
		}
	}
}

// WithTimeout bounds the wall time of every search; d <= 0 keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// Server answers search requests. Each request gets its own finder.Finder.
type Server struct {
	logger   *zap.Logger
	maxSteps int
	timeout  time.Duration
	registry *prometheus.Registry
	metrics  *metrics.Collector
}

// NewServer builds a Server with its own metrics registry.
// It panics if the metrics cannot be registered, like prometheus.MustRegister.
func NewServer(opts ...Option) *Server {
	s := &Server{
		logger:   zap.NewNop(),
		maxSteps: DefaultMaxSteps,
		timeout:  DefaultTimeout,
		registry: prometheus.NewRegistry(),
		metrics:  metrics.NewCollector("gridpath"),
	}
	for _, fn := range opts {
		fn(s)
	}
	s.metrics.MustRegister(s.registry)

	return s
}

// NewHandler creates the HTTP handler for a new Server.
func NewHandler(opts ...Option) http.Handler {
	return NewServer(opts...).Routes()
}

// Routes returns the chi router serving s.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		render.PlainText(w, r, "ok")
	})
	r.Get("/v1/scenarios/default", s.getDefaultScenario)
	r.Post("/v1/search", s.search)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return r
}

// SearchResponse is the body of a successful POST /v1/search.
type SearchResponse struct {
	Scenario string        `json:"scenario"`
	Found    bool          `json:"found"`
	Length   int           `json:"length"`
	Shortest *route.Path   `json:"shortest"`
	Text     string        `json:"text"`
	Paths    int           `json:"paths"`
	AllPaths []*route.Path `json:"all_paths,omitempty"`
	Stats    finder.Stats  `json:"stats"`
}

// ErrorResponse is the body of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) getDefaultScenario(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, scenario.Default())
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	var sc scenario.Scenario
	if err := render.DecodeJSON(http.MaxBytesReader(w, r.Body, MaxBodyBytes), &sc); err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}
	if sc.Name == "" {
		sc.Name = "request"
	}
	if err := sc.Validate(); err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}
	all, _ := strconv.ParseBool(r.URL.Query().Get("all"))

	maxSteps := s.maxSteps
	if sc.MaxSteps > 0 && sc.MaxSteps < maxSteps {
		maxSteps = sc.MaxSteps
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	f, err := finder.New(sc.Config(),
		finder.WithContext(ctx),
		finder.WithMaxSteps(maxSteps),
		finder.WithLogger(s.logger),
		finder.WithObserver(s.metrics.Observe),
	)
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}
	if err = f.GeneratePaths(sc.Start, sc.Goal); err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, finder.ErrInvalidConfig) {
			status = http.StatusBadRequest
		}
		s.fail(w, r, status, err)
		return
	}

	resp := SearchResponse{
		Scenario: sc.Name,
		Paths:    f.Len(),
		Text:     "[]",
		Stats:    f.Stats(),
	}
	if p, ok := f.ShortestPath(); ok {
		resp.Found = true
		resp.Length = p.Len()
		resp.Shortest = p
		resp.Text = p.String()
	}
	if all {
		resp.AllPaths = f.AllPaths()
	}
	s.logger.Info("search served",
		zap.String("scenario", sc.Name),
		zap.Bool("found", resp.Found),
		zap.Int("paths", resp.Paths),
		zap.Int("steps", resp.Stats.Steps),
	)
	render.JSON(w, r, &resp)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.logger.Info("search rejected", zap.Int("status", status), zap.Error(err))
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Error: err.Error()})
}
