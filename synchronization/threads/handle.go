// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package threads

import (
	"context"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/threadkit/synchronization/supervised"
	"github.com/pkg/errors"
	"sync/atomic"
	"time"
)

type State int32

const (
	NotStarted State = iota
	Running
	Finished
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

var _ govnr.ShutdownWaiter = (*Handle)(nil)

// Handle is a named thread bound to a single task. It is started at most once and is not reused
// after it finishes.
type Handle struct {
	name    string
	daemon  bool
	task    supervised.Task
	runOpts []supervised.Option

	state   int32
	done    chan struct{}
	outcome supervised.Outcome // written once, before done is closed
}

func (h *Handle) Name() string {
	return h.name
}

// IsDaemon reports whether the thread is left behind when the process shuts down.
func (h *Handle) IsDaemon() bool {
	return h.daemon
}

func (h *Handle) State() State {
	return State(atomic.LoadInt32(&h.state))
}

func (h *Handle) IsAlive() bool {
	return h.State() == Running
}

// Done is closed when the task has returned.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Outcome returns the result of the task once the thread finished.
func (h *Handle) Outcome() (supervised.Outcome, bool) {
	select {
	case <-h.done:
		return h.outcome, true
	default:
		return supervised.Outcome{}, false
	}
}

// Err returns the task failure, nil while the thread has not finished.
func (h *Handle) Err() error {
	if o, finished := h.Outcome(); finished {
		return o.Err
	}
	return nil
}

// Join waits until the thread finishes, timeout elapses or ctx is done.
// A timeout of zero or less waits without a bound.
// If the thread is still alive once the wait is over, a *TimeoutError is returned.
func (h *Handle) Join(ctx context.Context, timeout time.Duration) error {
	if h.State() == NotStarted {
		return errors.Wrapf(ErrNotStarted, "cannot join %s", h.name)
	}

	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case <-h.done:
		return nil
	case <-ctx.Done():
		return errors.Wrapf(ctx.Err(), "interrupted while waiting for %s", h.name)
	case <-expired:
	}

	if h.IsAlive() {
		return &TimeoutError{Name: h.name, Timeout: timeout}
	}
	return nil
}

// WaitUntilShutdown blocks until the thread finishes or shutdownContext is done; a thread that was never
// started has nothing to wait for.
func (h *Handle) WaitUntilShutdown(shutdownContext context.Context) {
	if h.State() == NotStarted {
		return
	}
	select {
	case <-h.done:
	case <-shutdownContext.Done():
	}
}

func (h *Handle) run(logger log.Logger) {
	defer func() {
		atomic.StoreInt32(&h.state, int32(Finished))
		close(h.done)
	}()

	opts := append([]supervised.Option{supervised.OnOutcome(func(o supervised.Outcome) {
		h.outcome = o
	})}, h.runOpts...)
	supervised.Run(logger, h.name, h.task, opts...)
}
