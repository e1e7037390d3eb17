// Copyright (c) 2026, The CSemVer Go Authors.  All rights reserved.
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

package csemver

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/csemver/csemver/pkg/errors"
)

var (
	// Version construction metrics
	computeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "csemver_compute_duration_seconds",
			Help:    "Duration of version construction in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	computeTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "csemver_compute_total",
			Help: "Total number of version constructions attempted",
		},
	)
	computeErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "csemver_compute_errors_total",
			Help: "Total number of failed version constructions by error code",
		},
		[]string{"code"},
	)
)

func observeCompute(start time.Time, err error) {
	computeDuration.Observe(time.Since(start).Seconds())
	computeTotal.Inc()
	if err != nil {
		computeErrors.WithLabelValues(string(errors.CodeOf(err))).Inc()
	}
}
