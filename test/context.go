// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package test

import (
	"context"
	"github.com/orbs-network/govnr"
	"time"
)

const ShutdownTimeout = 5 * time.Second

func WithContext(f func(ctx context.Context)) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f(ctx)
}

func WithContextWithTimeout(d time.Duration, f func(ctx context.Context)) {
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	f(ctx)
}

// WaitForShutdown waits for every waiter, e.g. the threads a test started, and reports whether they all
// shut down before ShutdownTimeout.
func WaitForShutdown(waiters ...govnr.ShutdownWaiter) bool {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	ShutdownWaiters(waiters).WaitUntilShutdown(ctx)
	return ctx.Err() == nil
}
