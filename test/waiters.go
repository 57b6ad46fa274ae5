// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"context"
	"github.com/orbs-network/govnr"
)

// ShutdownWaiters lets a test wait for several waiters at once, e.g. every thread it started.
type ShutdownWaiters []govnr.ShutdownWaiter

func (w ShutdownWaiters) WaitUntilShutdown(shutdownContext context.Context) {
	for _, waiter := range w {
		waiter.WaitUntilShutdown(shutdownContext)
	}
}
