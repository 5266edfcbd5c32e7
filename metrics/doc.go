// Package metrics exports path-search diagnostics as Prometheus metrics.
//
// A Collector is fed through finder.WithObserver:
//
//	c := metrics.NewCollector("gridpath")
//	_ = c.Register(prometheus.DefaultRegisterer)
//	f, _ := finder.New(cfg, finder.WithObserver(c.Observe))
//
// Metrics (with namespace prefix):
//
//   - searches_total{outcome}      outcome is found, none or error.
//   - search_steps_total           frames pushed across all searches.
//   - paths_accepted_total         accepted paths across all searches.
//   - search_duration_seconds      histogram of search wall time.
//   - search_max_depth             deepest partial path of the last search.
package metrics
