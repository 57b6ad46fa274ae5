// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package threads

import (
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/threadkit/instrumentation/logfields"
	"github.com/pkg/errors"
	"sync/atomic"
)

// Start launches the thread. A thread that is running or already finished is not started again.
func Start(logger log.Logger, h *Handle) error {
	if h == nil {
		err := errors.Wrap(ErrConstruction, "cannot start a nil thread")
		logger.Error("error starting thread", log.Error(err))
		return err
	}
	if h.done == nil {
		err := errors.Wrapf(ErrConstruction, "cannot start %s, it was not created by Build", h.name)
		logger.Error("error starting thread", logfields.Thread(h.name), log.Error(err))
		return err
	}

	logger.Info("starting thread", logfields.Thread(h.name))

	if !atomic.CompareAndSwapInt32(&h.state, int32(NotStarted), int32(Running)) {
		var err error
		if h.IsAlive() {
			err = errors.Wrapf(ErrAlreadyRunning, "cannot start %s", h.name)
		} else {
			err = errors.Wrapf(ErrAlreadyStarted, "cannot start %s", h.name)
		}
		logger.Error("error starting thread", logfields.Thread(h.name), log.Error(err))
		return err
	}

	govnr.Once(logfields.GovnrErrorer(logger), func() {
		h.run(logger)
	})

	return nil
}

// StartAll starts the threads in order and stops at the first failure.
// Threads started before the failure keep running.
func StartAll(logger log.Logger, handles []*Handle) error {
	for i, h := range handles {
		if err := Start(logger, h); err != nil {
			return errors.Wrapf(err, "starting thread %d of %d", i+1, len(handles))
		}
	}
	return nil
}
