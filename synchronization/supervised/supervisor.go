// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package supervised

import (
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/threadkit/instrumentation/logfields"
	"github.com/pkg/errors"
	"time"
)

// A Task is a unit of work bound to its own arguments, usually a closure.
type Task func() error

// TaskOf adapts a function that reports failure only by panicking.
func TaskOf(f func()) Task {
	if f == nil {
		return nil
	}
	return func() error {
		f()
		return nil
	}
}

// ErrExitedWithoutReturning is the failure recorded for a task that neither returned nor panicked with a value,
// e.g. one that called runtime.Goexit or panicked with nil.
var ErrExitedWithoutReturning = errors.New("thread exited without returning")

type Outcome struct {
	Name    string
	Started time.Time
	Elapsed time.Duration
	Err     error
}

func (o Outcome) Failed() bool {
	return o.Err != nil
}

type Option func(*options)

type options struct {
	metrics   *Metrics
	onOutcome func(Outcome)
}

func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// OnOutcome registers f to receive the Outcome before Run returns. It is also called when the task ends the
// goroutine with runtime.Goexit, in which case Run never returns to its caller.
func OnOutcome(f func(Outcome)) Option {
	return func(o *options) {
		o.onOutcome = f
	}
}

// Run executes task on the calling goroutine. Execution time is logged whether or not the task failed;
// a failure is logged once and returned in the Outcome.
func Run(logger log.Logger, name string, task Task, opts ...Option) (outcome Outcome) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	threadLogger := logger.WithTags(logfields.Thread(name))
	outcome.Name = name
	outcome.Started = time.Now()
	o.metrics.started()

	returned := false
	defer func() {
		if !returned && outcome.Err == nil {
			outcome.Err = ErrExitedWithoutReturning
		}
		outcome.Elapsed = time.Since(outcome.Started)
		if outcome.Err != nil {
			logFailure(threadLogger, outcome.Err)
		}
		threadLogger.Info("execution time of thread", logfields.Elapsed(outcome.Elapsed), logfields.ElapsedSeconds(outcome.Elapsed))
		o.metrics.finished(outcome)
		if o.onOutcome != nil {
			o.onOutcome(outcome)
		}
	}()

	outcome.Err = runTask(threadLogger, task)
	returned = true
	return
}

// this function is needed so that a panic is converted to an error before Run's deferred logging
func runTask(logger logfields.Errorer, task Task) (err error) {
	if task == nil {
		return errors.New("no task to run")
	}
	returned := false
	defer func() {
		if !returned && err == nil {
			err = ErrExitedWithoutReturning
		}
	}()
	defer recoverPanics(logger, &err)

	err = task()
	returned = true
	return
}

func logFailure(logger log.Logger, err error) {
	if p, ok := errors.Cause(err).(*PanicError); ok {
		logger.Error("exception in thread", log.Error(err), log.String("stack-trace", string(p.Stack)))
		return
	}
	logger.Error("exception in thread", log.Error(err))
}
