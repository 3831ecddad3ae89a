// Clipdeck - Short-Video Performance Analytics
// Copyright 2026 Clipdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clipdeck/clipdeck

// Package metrics provides Prometheus metrics for observability.
//
// Metrics are exposed at /metrics in Prometheus text format:
//
//	api_requests_total{method,endpoint,status_code}
//	api_request_duration_seconds{method,endpoint}
//	api_active_requests
//	dataset_loads_total{status}
//	dataset_load_duration_seconds
//	dataset_records
//	dataset_hot_videos
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API endpoint metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Dataset load metrics
	DatasetLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_loads_total",
			Help: "Total number of dataset load attempts",
		},
		[]string{"status"}, // "success" or "error"
	)

	DatasetLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dataset_load_duration_seconds",
			Help:    "Duration of dataset loads in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	DatasetRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_records",
			Help: "Number of records in the current snapshot",
		},
	)

	DatasetHotVideos = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_hot_videos",
			Help: "Number of hot videos in the current snapshot",
		},
	)
)

// RecordAPIRequest records one completed HTTP request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordDatasetLoad records a load attempt and its outcome.
func RecordDatasetLoad(duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	DatasetLoadsTotal.WithLabelValues(status).Inc()
	DatasetLoadDuration.Observe(duration.Seconds())
}

// UpdateSnapshotGauges publishes the size and hot-video count of the
// current snapshot. Called after every successful load; a failed load
// resets both to zero since the engine reverts to Unloaded.
func UpdateSnapshotGauges(records, hotVideos int) {
	DatasetRecords.Set(float64(records))
	DatasetHotVideos.Set(float64(hotVideos))
}
