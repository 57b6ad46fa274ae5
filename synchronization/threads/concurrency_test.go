// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package threads

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/google/go-cmp/cmp"
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/threadkit/instrumentation/metric"
	"github.com/orbs-network/threadkit/synchronization/supervised"
	"github.com/orbs-network/threadkit/test"
	"github.com/orbs-network/threadkit/test/with"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

// one second of the sleeping workload, scaled down for unit tests
const unit = 20 * time.Millisecond

type sleepingWorkload struct {
	sleepUnits    int
	numIterations int
}

func (w sleepingWorkload) duration() time.Duration {
	return time.Duration(w.sleepUnits*w.numIterations) * unit
}

func (w sleepingWorkload) task(logger log.Logger) supervised.Task {
	return func() error {
		for i := 0; i < w.numIterations; i++ {
			logger.Info("in iteration", log.Int("iteration", i+1), log.Stringable("sleep", time.Duration(w.sleepUnits)*unit))
			time.Sleep(time.Duration(w.sleepUnits) * unit)
		}
		return nil
	}
}

var workloads = []sleepingWorkload{
	{sleepUnits: 1, numIterations: 5},
	{sleepUnits: 4, numIterations: 2},
	{sleepUnits: 3, numIterations: 3},
	{sleepUnits: 5, numIterations: 2},
	{sleepUnits: 2, numIterations: 6},
}

func TestBatch_RunsConcurrentlyInTheTimeOfTheLongestTask(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		var longest, sum time.Duration
		for _, w := range workloads {
			sum += w.duration()
			if w.duration() > longest {
				longest = w.duration()
			}
		}

		sequentialStart := time.Now()
		for i, w := range workloads {
			supervised.Run(harness.Logger, fmt.Sprintf("Sequential %d", i+1), w.task(harness.Logger))
		}
		sequential := time.Since(sequentialStart)

		metrics := supervised.NewMetrics(metric.NewRegistry(), time.Minute)
		var handles []*Handle
		for i, w := range workloads {
			h, err := Build(harness.Logger, fmt.Sprintf("Thread %d", i+1), w.task(harness.Logger), WithMetrics(metrics))
			require.NoError(t, err)
			handles = append(handles, h)
		}

		concurrentStart := time.Now()
		require.NoError(t, StartAll(harness.Logger, handles))
		test.WithContext(func(ctx context.Context) {
			require.NoError(t, JoinAll(ctx, harness.Logger, handles, DefaultJoinTimeout, JoinStrict))
		})
		concurrent := time.Since(concurrentStart)

		require.True(t, sequential >= sum, "sequential run took %s, expected at least %s", sequential, sum)
		require.True(t, concurrent >= longest, "concurrent run took %s, expected at least %s", concurrent, longest)
		require.True(t, concurrent < sum/2, "concurrent run took %s, expected well below the sequential %s", concurrent, sequential)

		require.EqualValues(t, len(workloads), metrics.Running.Peak(), "every thread should have been running at once")
		require.EqualValues(t, 0, metrics.Running.Value())

		for i, o := range Outcomes(handles) {
			require.NoError(t, o.Err)
			require.True(t, o.Elapsed >= workloads[i].duration(), "%s finished too early", o.Name)
		}
	})
}

func TestStartAll_StartsInCallerOrder(t *testing.T) {
	logger, buf := test.BufferedLogger()
	g := newGate()
	order := []string{"Thread 3", "Thread 1", "Thread 2"}
	tasks := map[string]supervised.Task{"Thread 1": g.task(), "Thread 2": g.task(), "Thread 3": g.task()}
	handles := buildAll(t, logger, tasks, order...)

	require.NoError(t, StartAll(logger, handles))
	for _, h := range handles {
		require.True(t, h.IsAlive(), "%s should have been started", h.Name())
	}

	g.open()
	waitForAll(t, handles...)

	var started []string
	for _, line := range buf.LinesContaining(`"message":"starting thread"`) {
		var fields map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &fields))
		started = append(started, fields["thread"].(string))
	}
	if diff := cmp.Diff(order, started); diff != "" {
		t.Fatalf("unexpected start order (-want +got):\n%s", diff)
	}
}
