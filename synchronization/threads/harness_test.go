// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package threads

import (
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/threadkit/synchronization/supervised"
	"github.com/orbs-network/threadkit/test"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

// gate blocks the tasks built from it until it is opened
type gate chan struct{}

func newGate() gate {
	return make(gate)
}

func (g gate) open() {
	close(g)
}

func (g gate) task() supervised.Task {
	return func() error {
		<-g
		return nil
	}
}

func noop() error {
	return nil
}

func sleeping(d time.Duration) supervised.Task {
	return func() error {
		time.Sleep(d)
		return nil
	}
}

func buildAll(t testing.TB, logger log.Logger, tasks map[string]supervised.Task, names ...string) []*Handle {
	var handles []*Handle
	for _, name := range names {
		h, err := Build(logger, name, tasks[name])
		require.NoError(t, err)
		handles = append(handles, h)
	}
	return handles
}

func waitForAll(t testing.TB, handles ...*Handle) {
	waiters := make([]govnr.ShutdownWaiter, 0, len(handles))
	for _, h := range handles {
		waiters = append(waiters, h)
	}
	require.True(t, test.WaitForShutdown(waiters...), "threads did not finish in time")
	for _, h := range handles {
		require.NotEqual(t, Running, h.State(), "thread %s did not finish", h.Name())
	}
}
