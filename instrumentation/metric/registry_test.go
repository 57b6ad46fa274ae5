// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"context"
	"github.com/orbs-network/threadkit/test"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
	"time"
)

func TestRegistry_SameNameReturnsTheRegisteredMetric(t *testing.T) {
	r := NewRegistry()

	g1 := r.NewGauge("Threads.Running")
	g2 := r.NewGauge("Threads.Running")
	g1.Inc()

	require.True(t, g1 == g2, "expected the same gauge instance")
	require.EqualValues(t, 1, g2.Value())
	require.Len(t, r.ExportAll(), 1)
}

func TestRegistry_StringListsMetricsByName(t *testing.T) {
	r := NewRegistry()
	r.NewGauge("b")
	r.NewGauge("a")

	s := r.String()
	require.True(t, strings.Index(s, "metric a") < strings.Index(s, "metric b"), "expected sorted output, got %s", s)
}

func TestGauge_KeepsItsPeak(t *testing.T) {
	g := NewRegistry().NewGauge("Threads.Running")

	g.Inc()
	g.Inc()
	g.Inc()
	g.Dec()
	g.Dec()

	require.EqualValues(t, 1, g.Value())
	require.EqualValues(t, 3, g.Peak())
	require.Contains(t, g.String(), "peak 3")

	g.Update(7)
	g.Update(0)
	require.EqualValues(t, 7, g.Peak())
}

func TestHistogram_RecordsDurations(t *testing.T) {
	h := NewRegistry().NewLatency("Threads.ExecutionTime", time.Minute)

	h.Record(10 * time.Millisecond)
	h.Record(20 * time.Millisecond)
	h.Record(2 * time.Minute) // above max

	e := h.Export().(histogramExport)
	require.EqualValues(t, 2, e.Samples)
	require.EqualValues(t, 1, e.Overflow)
	require.InDelta(t, float64(20*time.Millisecond), float64(e.Max), float64(time.Millisecond))
}

func TestHistogram_RotateKeepsRecentWindows(t *testing.T) {
	h := NewRegistry().NewLatency("latency", time.Minute)
	h.Record(time.Millisecond)
	h.Rotate()
	h.Record(time.Millisecond)

	require.EqualValues(t, 2, h.Samples(), "samples of previous windows are still reported")
}

func TestRate_CountsEventsPerTick(t *testing.T) {
	r := newRate("rate")
	r.Measure(5)

	require.EqualValues(t, 0, r.Value(), "no tick elapsed yet")

	r.nextTick = time.Now().Add(-time.Millisecond)
	require.True(t, r.Value() > 0, "expected a positive rate after a tick elapsed")
}

func TestRegistry_ReportEveryLogsMetrics(t *testing.T) {
	logger, buf := test.BufferedLogger()
	r := NewRegistry()
	r.NewGauge("Threads.Running").Inc()

	test.WithContext(func(ctx context.Context) {
		trigger := r.ReportEvery(ctx, 5*time.Millisecond, logger)
		defer trigger.Stop()

		require.True(t, test.Eventually(time.Second, func() bool {
			return len(buf.LinesContaining("Threads.Running")) > 0
		}), "expected a metric report")
	})
}
