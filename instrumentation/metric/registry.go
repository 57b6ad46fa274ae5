// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"context"
	"fmt"
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/threadkit/synchronization"
	"sort"
	"strings"
	"sync"
	"time"
)

type Factory interface {
	NewLatency(name string, maxDuration time.Duration) *Histogram
	NewGauge(name string) *Gauge
	NewRate(name string) *Rate
}

type Registry interface {
	Factory
	Get(name string) metric
	String() string
	ExportAll() map[string]exportedMetric
	ReportEvery(ctx context.Context, interval time.Duration, logger log.Logger) *synchronization.PeriodicalTrigger
}

type exportedMetric interface {
	LogRow() []*log.Field
}

type metric interface {
	fmt.Stringer
	Name() string
	Export() exportedMetric
}

type namedMetric struct {
	name string
}

func (m *namedMetric) Name() string {
	return m.name
}

func NewRegistry() Registry {
	return &inMemoryRegistry{}
}

type inMemoryRegistry struct {
	mu struct {
		sync.Mutex
		metrics map[string]metric
	}
}

// registering the same name twice returns the metric that is already registered
func (r *inMemoryRegistry) register(m metric) metric {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.mu.metrics == nil {
		r.mu.metrics = make(map[string]metric)
	}
	if existing, found := r.mu.metrics[m.Name()]; found {
		return existing
	}
	r.mu.metrics[m.Name()] = m
	return m
}

func (r *inMemoryRegistry) NewRate(name string) *Rate {
	return r.register(newRate(name)).(*Rate)
}

func (r *inMemoryRegistry) NewGauge(name string) *Gauge {
	return r.register(&Gauge{namedMetric: namedMetric{name: name}}).(*Gauge)
}

func (r *inMemoryRegistry) NewLatency(name string, maxDuration time.Duration) *Histogram {
	return r.register(newHistogram(name, maxDuration.Nanoseconds())).(*Histogram)
}

func (r *inMemoryRegistry) Get(name string) metric {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mu.metrics[name]
}

func (r *inMemoryRegistry) sorted() []metric {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]metric, 0, len(r.mu.metrics))
	for _, m := range r.mu.metrics {
		all = append(all, m)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Name() < all[j].Name()
	})
	return all
}

func (r *inMemoryRegistry) String() string {
	var b strings.Builder
	for _, m := range r.sorted() {
		b.WriteString(m.String())
	}
	return b.String()
}

func (r *inMemoryRegistry) ExportAll() map[string]exportedMetric {
	all := make(map[string]exportedMetric)
	for _, m := range r.sorted() {
		all[m.Name()] = m.Export()
	}
	return all
}

func (r *inMemoryRegistry) report(logger log.Logger) {
	for _, m := range r.sorted() {
		if logRow := m.Export().LogRow(); logRow != nil {
			logger.Metric(logRow...)
		}
	}
}

func (r *inMemoryRegistry) rotate() {
	for _, m := range r.sorted() {
		if h, ok := m.(*Histogram); ok {
			h.Rotate()
		}
	}
}

func (r *inMemoryRegistry) ReportEvery(ctx context.Context, interval time.Duration, logger log.Logger) *synchronization.PeriodicalTrigger {
	return synchronization.NewPeriodicalTrigger(ctx, "metric-reporter", interval, logger, func() {
		r.report(logger)
		r.rotate()
	}, func() {
		r.report(logger)
	})
}
