// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package matrix

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Derived-set build metrics
	sliceBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "relmat_slice_build_duration_seconds",
			Help:    "Duration of slice set derivation in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	pairBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "relmat_pair_build_duration_seconds",
			Help:    "Duration of upgrade pairing derivation in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	requestVersionsRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "relmat_request_versions_rejected_total",
			Help: "Total number of API requests rejected for malformed version strings",
		},
	)
)
