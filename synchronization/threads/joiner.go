// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package threads

import (
	"context"
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/threadkit/instrumentation/logfields"
	"github.com/orbs-network/threadkit/synchronization/supervised"
	"github.com/pkg/errors"
	"time"
)

const DefaultJoinTimeout = 300 * time.Second

type JoinPolicy int

const (
	// JoinStrict reports every thread still alive after its timeout, once all threads were waited for.
	JoinStrict JoinPolicy = iota
	// JoinBestEffort logs a timed out thread and moves on to the next one.
	JoinBestEffort
)

func (p JoinPolicy) String() string {
	if p == JoinBestEffort {
		return "best-effort"
	}
	return "strict"
}

// JoinAll waits for the threads in order, giving each one up to timeout.
// A timeout never shortens the wait for the following threads; any other join failure aborts the batch.
func JoinAll(ctx context.Context, logger log.Logger, handles []*Handle, timeout time.Duration, policy JoinPolicy) error {
	var timeouts []*TimeoutError

	for i, h := range handles {
		if h == nil {
			err := errors.Wrapf(ErrNotStarted, "cannot join a nil thread at position %d of %d", i+1, len(handles))
			logger.Error("failure waiting for thread", log.Error(err))
			return err
		}
		logger.Info("waiting for thread to complete", logfields.Thread(h.name), logfields.Timeout(timeout))

		err := h.Join(ctx, timeout)
		if timedOut, ok := err.(*TimeoutError); ok {
			if policy == JoinStrict {
				logger.Error("timed out waiting for thread", logfields.Thread(h.name), log.Error(timedOut))
				timeouts = append(timeouts, timedOut)
			} else {
				logger.Info("timed out waiting for thread, moving on", logfields.Thread(h.name), logfields.Timeout(timeout))
			}
			continue
		}
		if err != nil {
			logger.Error("failure waiting for thread", logfields.Thread(h.name), log.Error(err))
			return err
		}

		logger.Info("thread complete", logfields.Thread(h.name))
	}

	if len(timeouts) > 0 {
		return &JoinTimeoutError{Timeouts: timeouts}
	}
	return nil
}

// Outcomes returns the outcomes of the threads that finished, in the given order.
func Outcomes(handles []*Handle) []supervised.Outcome {
	var outcomes []supervised.Outcome
	for _, h := range handles {
		if h == nil {
			continue
		}
		if o, finished := h.Outcome(); finished {
			outcomes = append(outcomes, o)
		}
	}
	return outcomes
}

// FirstFailure returns the failure of the first finished thread whose task failed.
func FirstFailure(handles []*Handle) error {
	for _, o := range Outcomes(handles) {
		if o.Failed() {
			return errors.Wrapf(o.Err, "thread %s failed", o.Name)
		}
	}
	return nil
}
