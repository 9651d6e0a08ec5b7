package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipebox_cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"namespace"},
	)
	cacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipebox_cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"namespace"},
	)
	cacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipebox_cache_evictions_total",
			Help: "Total number of entries evicted to stay within limits",
		},
		[]string{"namespace"},
	)
)
