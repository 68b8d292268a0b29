// Copyright © 2021 Kaleido, Inc.
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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var AllowanceSubmittedCounter *prometheus.CounterVec
var AllowanceSucceededCounter *prometheus.CounterVec
var AllowanceFailedCounter prometheus.Counter
var AllowanceHistogram prometheus.Histogram

// AllowanceSubmittedCounterName is the prometheus metric for tracking the total number of allowance changes submitted
var AllowanceSubmittedCounterName = "cw20_allowance_submitted_total"

// AllowanceSucceededCounterName is the prometheus metric for tracking the total number of allowance changes that succeeded
var AllowanceSucceededCounterName = "cw20_allowance_succeeded_total"

// AllowanceFailedCounterName is the prometheus metric for tracking the total number of allowance changes that failed
var AllowanceFailedCounterName = "cw20_allowance_failed_total"

// AllowanceHistogramName is the prometheus metric for tracking the time from submission to result
var AllowanceHistogramName = "cw20_allowance_histogram"

var OperationLabelName = "operation"

func InitAllowanceMetrics() {
	AllowanceSubmittedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: AllowanceSubmittedCounterName,
		Help: "Number of submitted allowance changes",
	}, []string{OperationLabelName})
	AllowanceSucceededCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: AllowanceSucceededCounterName,
		Help: "Number of allowance changes that succeeded",
	}, []string{OperationLabelName})
	AllowanceFailedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: AllowanceFailedCounterName,
		Help: "Number of allowance changes that failed",
	})
	AllowanceHistogram = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name: AllowanceHistogramName,
		Help: "Histogram of allowance changes, bucketed by time to result",
	})
}

func RegisterAllowanceMetrics() {
	registry.MustRegister(AllowanceSubmittedCounter)
	registry.MustRegister(AllowanceSucceededCounter)
	registry.MustRegister(AllowanceFailedCounter)
	registry.MustRegister(AllowanceHistogram)
}
