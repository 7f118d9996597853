// Package metrics exposes Prometheus counters for citation validation and
// HTTP traffic.
//
// Each Metrics owns its own registry, so several instances (one per test,
// for example) never collide on metric names.
package metrics
