// Package metrics exposes Prometheus instrumentation for evaluations and a
// runtime memory snapshot used by verbose output.
package metrics
