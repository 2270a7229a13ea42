// Package metrics holds Prometheus instruments that are used across the
// service.  All collectors are registered with the global registry, so
// importing this package in main.go is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ValidationAcceptTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "validation_accept_total",
			Help: "Cumulative number of proposed values accepted by their rule.",
		})

	ValidationRejectTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "validation_reject_total",
			Help: "Cumulative number of proposed values rejected by their rule.",
		})

	UnknownKeyTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "unknown_key_total",
			Help: "Cumulative number of writes to keys with no registered rule.",
		})

	SettingReadTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "setting_read_total",
			Help: "Cumulative number of setting reads served from the database.",
		})

	SettingWriteTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "setting_write_total",
			Help: "Cumulative number of setting writes persisted.",
		})

	CacheHitTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "setting_cache_hit_total",
			Help: "Cumulative number of setting reads served from the in-memory cache.",
		})
)

func init() {
	prometheus.MustRegister(
		ValidationAcceptTotal,
		ValidationRejectTotal,
		UnknownKeyTotal,
		SettingReadTotal,
		SettingWriteTotal,
		CacheHitTotal,
	)
}
