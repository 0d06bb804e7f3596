package generator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generateDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "relmat_generate_duration_seconds",
			Help:    "Duration of full matrix generation runs in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	generatedFiles = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "relmat_generated_files_total",
			Help: "Total number of configuration files written by the generator",
		},
	)
)
