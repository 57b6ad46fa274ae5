// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package supervised

import (
	"github.com/orbs-network/threadkit/instrumentation/metric"
	"time"
)

type Metrics struct {
	ExecutionTime *metric.Histogram
	Running       *metric.Gauge
	Failed        *metric.Gauge
	Finished      *metric.Rate
}

func NewMetrics(factory metric.Factory, maxExecutionTime time.Duration) *Metrics {
	return &Metrics{
		ExecutionTime: factory.NewLatency("Threads.ExecutionTime", maxExecutionTime),
		Running:       factory.NewGauge("Threads.Running"),
		Failed:        factory.NewGauge("Threads.Failed"),
		Finished:      factory.NewRate("Threads.FinishedPerSecond"),
	}
}

func (m *Metrics) started() {
	if m == nil {
		return
	}
	m.Running.Inc()
}

func (m *Metrics) finished(o Outcome) {
	if m == nil {
		return
	}
	m.Running.Dec()
	m.ExecutionTime.Record(o.Elapsed)
	m.Finished.Measure(1)
	if o.Failed() {
		m.Failed.Inc()
	}
}
