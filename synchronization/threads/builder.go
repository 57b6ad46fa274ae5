// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package threads

import (
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/threadkit/instrumentation/logfields"
	"github.com/orbs-network/threadkit/synchronization/supervised"
	"github.com/pkg/errors"
)

type Option func(*Handle)

// WithDaemon marks whether the thread may be left running when the process shuts down (default: true).
func WithDaemon(daemon bool) Option {
	return func(h *Handle) {
		h.daemon = daemon
	}
}

func WithMetrics(m *supervised.Metrics) Option {
	return func(h *Handle) {
		if m != nil {
			h.runOpts = append(h.runOpts, supervised.WithMetrics(m))
		}
	}
}

// Build creates an unstarted thread that runs task under supervision.
func Build(logger log.Logger, name string, task supervised.Task, opts ...Option) (*Handle, error) {
	logger.Info("building thread", logfields.Thread(name))

	var err error
	switch {
	case name == "":
		err = errors.Wrap(ErrConstruction, "thread name is empty")
	case task == nil:
		err = errors.Wrapf(ErrConstruction, "thread %s has no task", name)
	}
	if err != nil {
		logger.Error("error building thread", logfields.Thread(name), log.Error(err))
		return nil, err
	}

	h := &Handle{
		name:   name,
		daemon: true,
		task:   task,
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}

	return h, nil
}
