// SPDX-License-Identifier: MIT

// Package metrics exposes tokenization counters over a Prometheus
// endpoint.
//
// The scanner never touches this package; callers notify it once per
// completed scan.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var scanTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "tokenization_requests_total",
	Help: "Total number of tokenization requests",
})

// ObserveScan records one completed tokenization.
func ObserveScan() { scanTotal.Inc() }

// Serve blocks, exposing the collected metrics on addr under /metrics.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return http.ListenAndServe(addr, mux)
}
