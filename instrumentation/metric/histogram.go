// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"fmt"
	"github.com/codahale/hdrhistogram"
	"github.com/orbs-network/scribe/log"
	"sync"
	"sync/atomic"
	"time"
)

// windowed so that a periodic report shows recent executions rather than the whole process lifetime
type Histogram struct {
	namedMetric
	mu            sync.Mutex
	histo         *hdrhistogram.WindowedHistogram
	overflowCount int64
}

type histogramExport struct {
	Name     string
	Min      time.Duration
	P50      time.Duration
	P95      time.Duration
	P99      time.Duration
	Max      time.Duration
	Avg      time.Duration
	Samples  int64
	Overflow int64
}

func newHistogram(name string, max int64) *Histogram {
	return &Histogram{
		namedMetric: namedMetric{name: name},
		histo:       hdrhistogram.NewWindowed(5, 1, max, 3),
	}
}

func (h *Histogram) Record(d time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.histo.Current.RecordValue(int64(d)); err != nil {
		atomic.AddInt64(&h.overflowCount, 1)
	}
}

func (h *Histogram) RecordSince(t time.Time) {
	h.Record(time.Since(t))
}

func (h *Histogram) Rotate() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.histo.Rotate()
}

func (h *Histogram) snapshot() histogramExport {
	h.mu.Lock()
	defer h.mu.Unlock()
	histo := h.histo.Merge()

	return histogramExport{
		Name:     h.name,
		Min:      time.Duration(histo.Min()),
		P50:      time.Duration(histo.ValueAtQuantile(50)),
		P95:      time.Duration(histo.ValueAtQuantile(95)),
		P99:      time.Duration(histo.ValueAtQuantile(99)),
		Max:      time.Duration(histo.Max()),
		Avg:      time.Duration(histo.Mean()),
		Samples:  histo.TotalCount(),
		Overflow: atomic.LoadInt64(&h.overflowCount),
	}
}

func (h *Histogram) Samples() int64 {
	return h.snapshot().Samples
}

func (h *Histogram) String() string {
	e := h.snapshot()
	return fmt.Sprintf(
		"metric %s: [min=%s, p50=%s, p95=%s, p99=%s, max=%s, avg=%s, samples=%d, overflow=%d]\n",
		e.Name, e.Min, e.P50, e.P95, e.P99, e.Max, e.Avg, e.Samples, e.Overflow)
}

func (h *Histogram) Export() exportedMetric {
	return h.snapshot()
}

func (h histogramExport) LogRow() []*log.Field {
	return []*log.Field{
		log.String("metric", h.Name),
		log.String("metric-type", "histogram"),
		log.Stringable("min", h.Min),
		log.Stringable("p50", h.P50),
		log.Stringable("p95", h.P95),
		log.Stringable("p99", h.P99),
		log.Stringable("max", h.Max),
		log.Stringable("avg", h.Avg),
		log.Int64("samples", h.Samples),
		log.Int64("overflow", h.Overflow),
	}
}
