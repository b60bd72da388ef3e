// Package observability defines the shared observer contract used by the
// other packages in this module to report operations for metrics collection.
//
// Packages that perform database work (v1/namespace, v1/postgres) accept an
// optional Observer and notify it about every operation they execute. The
// v1/metrics package provides a Prometheus-backed implementation.
//
// Keeping the contract in its own package avoids an import cycle between the
// instrumented packages and the metrics backend.
package observability
