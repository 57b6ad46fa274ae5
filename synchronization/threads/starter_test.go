// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package threads

import (
	"context"
	"github.com/orbs-network/threadkit/synchronization/supervised"
	"github.com/orbs-network/threadkit/test"
	"github.com/orbs-network/threadkit/test/with"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"runtime"
	"testing"
	"time"
)

func TestStart_RunsTheTaskOnItsOwnThread(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		g := newGate()
		h, err := Build(harness.Logger, "Thread 1", g.task())
		require.NoError(t, err)

		require.NoError(t, Start(harness.Logger, h))
		require.True(t, h.IsAlive(), "thread should be running right after start")

		g.open()
		waitForAll(t, h)

		require.Equal(t, Finished, h.State())
		o, finished := h.Outcome()
		require.True(t, finished)
		require.NoError(t, o.Err)
	})
}

func TestStart_FailsWhenAlreadyRunning(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		harness.AllowErrorsMatching("error starting thread")
		g := newGate()
		h, err := Build(harness.Logger, "Thread 1", g.task())
		require.NoError(t, err)

		require.NoError(t, Start(harness.Logger, h))
		harness.Supervise(h)
		err = Start(harness.Logger, h)

		require.Equal(t, ErrAlreadyRunning, errors.Cause(err))
		require.True(t, h.IsAlive(), "failed start must not disturb the running thread")

		g.open()
	})
}

func TestStart_FailsOnceFinished(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		harness.AllowErrorsMatching("error starting thread")
		h, err := Build(harness.Logger, "Thread 1", noop)
		require.NoError(t, err)

		require.NoError(t, Start(harness.Logger, h))
		waitForAll(t, h)

		err = Start(harness.Logger, h)
		require.Equal(t, ErrAlreadyStarted, errors.Cause(err))
	})
}

func TestStart_NilHandle(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		harness.AllowErrorsMatching("error starting thread")

		require.Error(t, Start(harness.Logger, nil))
	})
}

func TestStart_RejectsHandleNotCreatedByBuild(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		harness.AllowErrorsMatching("error starting thread")
		h := &Handle{name: "hand-made", task: noop}

		err := Start(harness.Logger, h)

		require.Equal(t, ErrConstruction, errors.Cause(err))
		require.Equal(t, NotStarted, h.State(), "a rejected handle must not be left running")
	})
}

func TestThreadThatEndsItsGoroutine_StillFinishes(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		harness.AllowErrorsMatching("exception in thread")
		h, err := Build(harness.Logger, "exiter", func() error {
			runtime.Goexit()
			return nil
		})
		require.NoError(t, err)
		require.NoError(t, Start(harness.Logger, h))

		test.WithContext(func(ctx context.Context) {
			require.NoError(t, h.Join(ctx, time.Second))
		})

		require.Equal(t, Finished, h.State())
		require.Equal(t, supervised.ErrExitedWithoutReturning, errors.Cause(h.Err()))
	})
}

func TestStartAll_StartsInOrderAndStopsAtFirstFailure(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		harness.AllowErrorsMatching("error starting thread")
		g := newGate()
		tasks := map[string]supervised.Task{"first": g.task(), "second": g.task(), "last": g.task()}
		handles := buildAll(t, harness.Logger, tasks, "first", "second", "last")
		first, second, last := handles[0], handles[1], handles[2]

		// the third start fails because "first" is already running
		err := StartAll(harness.Logger, []*Handle{first, second, first, last})

		require.Equal(t, ErrAlreadyRunning, errors.Cause(err))
		require.Contains(t, err.Error(), "starting thread 3 of 4")
		require.True(t, first.IsAlive())
		require.True(t, second.IsAlive())
		require.Equal(t, NotStarted, last.State(), "threads after the failure must never be started")

		g.open()
		waitForAll(t, first, second)
	})
}
