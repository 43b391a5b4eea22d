// Package metrics exposes Prometheus metrics for form validation traffic.
//
// A Collector owns a private registry so tests and multiple servers never
// share global state. Metric families are grouped by concern:
//
//   - ValidationMetrics counts form validations, failing fields and live
//     field checks.
//   - HTTPMetrics observes request durations by chi route pattern.
//
//	c := metrics.NewCollector().WithRuntime()
//	vm := metrics.NewValidationMetrics(c)
//	hm := metrics.NewHTTPMetrics(c)
//
//	r.Use(hm.Middleware)
//	r.Handle("/metrics", c.Handler())
//
// Recording methods are safe on a nil receiver, so metrics can be switched
// off by not constructing them.
package metrics
