// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"fmt"
	"github.com/orbs-network/scribe/log"
	"sync/atomic"
)

// Gauge holds a current value and the highest value it has reached, e.g. the number of running threads
// and the most that ever ran at once.
type Gauge struct {
	namedMetric
	value int64
	peak  int64
}

type gaugeExport struct {
	Name  string
	Value int64
	Peak  int64
}

func (g *Gauge) Export() exportedMetric {
	return gaugeExport{g.name, g.Value(), g.Peak()}
}

func (g *Gauge) String() string {
	return fmt.Sprintf("metric %s: %d (peak %d)\n", g.name, g.Value(), g.Peak())
}

func (g *Gauge) Inc() {
	g.Add(1)
}

func (g *Gauge) Dec() {
	g.Add(-1)
}

func (g *Gauge) Add(i int64) {
	g.raisePeak(atomic.AddInt64(&g.value, i))
}

func (g *Gauge) Update(i int64) {
	atomic.StoreInt64(&g.value, i)
	g.raisePeak(i)
}

func (g *Gauge) raisePeak(v int64) {
	for {
		peak := atomic.LoadInt64(&g.peak)
		if v <= peak || atomic.CompareAndSwapInt64(&g.peak, peak, v) {
			return
		}
	}
}

func (g *Gauge) Value() int64 {
	return atomic.LoadInt64(&g.value)
}

func (g *Gauge) Peak() int64 {
	return atomic.LoadInt64(&g.peak)
}

func (g gaugeExport) LogRow() []*log.Field {
	return []*log.Field{
		log.String("metric", g.Name),
		log.String("metric-type", "gauge"),
		log.Int64("gauge", g.Value),
		log.Int64("gauge-peak", g.Peak),
	}
}
