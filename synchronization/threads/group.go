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
	"github.com/orbs-network/threadkit/config"
	"github.com/orbs-network/threadkit/instrumentation/logfields"
	"github.com/orbs-network/threadkit/instrumentation/metric"
	"github.com/orbs-network/threadkit/synchronization/supervised"
	"github.com/pkg/errors"
	"sync"
)

var _ govnr.ShutdownWaiter = (*Group)(nil)

// Group carries the logger, config and metrics shared by the threads of a process.
// Goroutines never keep a process alive, so non-daemon threads are tracked here and
// waited for by the entry point before it exits.
type Group struct {
	logger  log.Logger
	config  config.ThreadsConfig
	metrics *supervised.Metrics

	mu struct {
		sync.Mutex
		nonDaemons []*Handle
	}
}

// NewGroup creates a Group; metrics are recorded only when factory is not nil.
func NewGroup(logger log.Logger, cfg config.ThreadsConfig, factory metric.Factory) *Group {
	g := &Group{
		logger: logger,
		config: cfg,
	}
	if factory != nil {
		g.metrics = supervised.NewMetrics(factory, cfg.ThreadsMaxExecutionTime())
	}
	return g
}

func (g *Group) Build(name string, task supervised.Task, opts ...Option) (*Handle, error) {
	defaults := []Option{WithDaemon(g.config.ThreadsDaemonByDefault()), WithMetrics(g.metrics)}
	return Build(g.logger, name, task, append(defaults, opts...)...)
}

func (g *Group) Start(h *Handle) error {
	if err := Start(g.logger, h); err != nil {
		return err
	}
	if !h.IsDaemon() {
		g.mu.Lock()
		g.mu.nonDaemons = append(g.mu.nonDaemons, h)
		g.mu.Unlock()
	}
	return nil
}

func (g *Group) StartAll(handles []*Handle) error {
	for i, h := range handles {
		if err := g.Start(h); err != nil {
			return errors.Wrapf(err, "starting thread %d of %d", i+1, len(handles))
		}
	}
	return nil
}

func (g *Group) JoinPolicy() JoinPolicy {
	if g.config.ThreadsStrictJoin() {
		return JoinStrict
	}
	return JoinBestEffort
}

func (g *Group) JoinAll(ctx context.Context, handles []*Handle) error {
	return JoinAll(ctx, g.logger, handles, g.config.ThreadsJoinTimeout(), g.JoinPolicy())
}

func (g *Group) nonDaemons() []*Handle {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]*Handle(nil), g.mu.nonDaemons...)
}

// WaitUntilShutdown waits for every started non-daemon thread, bounded by shutdownContext.
func (g *Group) WaitUntilShutdown(shutdownContext context.Context) {
	var tree govnr.TreeSupervisor
	for _, h := range g.nonDaemons() {
		tree.Supervise(h)
	}
	tree.WaitUntilShutdown(shutdownContext)
}

// Shutdown waits up to the configured shutdown timeout for the non-daemon threads and reports those
// that are still running.
func (g *Group) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), g.config.ThreadsShutdownTimeout())
	defer cancel()

	nonDaemons := g.nonDaemons()
	g.logger.Info("waiting for non-daemon threads before shutdown", log.Int("threads", len(nonDaemons)), logfields.Timeout(g.config.ThreadsShutdownTimeout()))
	g.WaitUntilShutdown(ctx)

	var timeouts []*TimeoutError
	for _, h := range nonDaemons {
		if h.IsAlive() {
			timeouts = append(timeouts, &TimeoutError{Name: h.Name(), Timeout: g.config.ThreadsShutdownTimeout()})
		}
	}
	if len(timeouts) > 0 {
		err := &JoinTimeoutError{Timeouts: timeouts}
		g.logger.Error("non-daemon threads still running at shutdown", log.Error(err))
		return err
	}
	return nil
}
