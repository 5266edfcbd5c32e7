package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/gridpath/finder"
)

// Search outcomes used as the "outcome" label value.
const (
	OutcomeFound = "found"
	OutcomeNone  = "none"
	OutcomeError = "error"
)

// Collector groups the search metrics. It is safe for concurrent use.
type Collector struct {
	searches *prometheus.CounterVec
	steps    prometheus.Counter
	accepted prometheus.Counter
	duration prometheus.Histogram
	maxDepth prometheus.Gauge
}

// NewCollector creates unregistered metrics under namespace.
func NewCollector(namespace string) *Collector {
	return &Collector{
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "searches_total",
				Help:      "Total number of path searches by outcome",
			},
			[]string{"outcome"},
		),
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_steps_total",
			Help:      "Total number of search steps (frames pushed)",
		}),
		accepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "paths_accepted_total",
			Help:      "Total number of accepted paths",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time of path searches",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		maxDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "search_max_depth",
			Help:      "Longest partial path seen by the most recent search",
		}),
	}
}

// Register registers every metric with reg.
func (c *Collector) Register(reg prometheus.Registerer) error {
	for _, m := range []prometheus.Collector{c.searches, c.steps, c.accepted, c.duration, c.maxDepth} {
		if err := reg.Register(m); err != nil {
			return err
		}
	}

	return nil
}

// MustRegister is Register that panics on error.
func (c *Collector) MustRegister(reg prometheus.Registerer) {
	if err := c.Register(reg); err != nil {
		panic(err)
	}
}

// Observe records one finished search. Its signature matches finder.WithObserver.
func (c *Collector) Observe(stats finder.Stats, err error) {
	outcome := OutcomeNone
	switch {
	case err != nil:
		outcome = OutcomeError
	case stats.Accepted > 0:
		outcome = OutcomeFound
	}
	c.searches.WithLabelValues(outcome).Inc()
	c.steps.Add(float64(stats.Steps))
	c.accepted.Add(float64(stats.Accepted))
	c.duration.Observe(stats.Elapsed.Seconds())
	c.maxDepth.Set(float64(stats.MaxDepth))
}
