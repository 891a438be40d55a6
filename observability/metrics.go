// Copyright 2025 The StoreLocator Authors
// SPDX-License-Identifier: Apache-2.0

// Package observability holds the Prometheus metrics of the admin backend.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "storelocator"

// Metrics holds the counters updated by geocoding, store writes and
// settings saves. A nil *Metrics is valid and records nothing.
type Metrics struct {
	GeocodeRequests   *prometheus.CounterVec // labels: status={OK,ZERO_RESULTS,OVER_QUERY_LIMIT,...,transport_error}
	StoreWrites       *prometheus.CounterVec // labels: operation={create,update,delete}, outcome={success,validation_error,geocode_error,persistence_error,unauthorized}
	SettingsDefaulted *prometheus.CounterVec // labels: field
}

func newMetrics() *Metrics {
	return &Metrics{
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_requests_total",
			Help:      "Geocoding API requests by provider status.",
		}, []string{"status"}),
		StoreWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_writes_total",
			Help:      "Store create, update and delete attempts by outcome.",
		}, []string{"operation", "outcome"}),
		SettingsDefaulted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settings_defaulted_total",
			Help:      "Settings fields replaced by their default on save.",
		}, []string{"field"}),
	}
}

// NewMetrics creates the metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := newMetrics()
	reg.MustRegister(m.GeocodeRequests, m.StoreWrites, m.SettingsDefaulted)

	return m
}

// NewMetricsForTesting creates Metrics that are not registered anywhere, so
// tests can build as many as they need.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

// GeocodeRequest counts one provider call.
func (m *Metrics) GeocodeRequest(status string) {
	if m == nil {
		return
	}

	m.GeocodeRequests.WithLabelValues(status).Inc()
}

// StoreWrite counts one store write attempt.
func (m *Metrics) StoreWrite(operation, outcome string) {
	if m == nil {
		return
	}

	m.StoreWrites.WithLabelValues(operation, outcome).Inc()
}

// SettingDefaulted counts a settings field replaced by its default.
func (m *Metrics) SettingDefaulted(field string) {
	if m == nil {
		return
	}

	m.SettingsDefaulted.WithLabelValues(field).Inc()
}
