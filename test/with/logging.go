// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package with

import (
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/threadkit/test"
	"sync"
	"testing"
)

type LoggingHarness struct {
	Logger     log.Logger
	T          testing.TB
	testOutput *log.TestOutput

	mu struct {
		sync.Mutex
		threads []govnr.ShutdownWaiter
	}
}

func (h *LoggingHarness) AllowErrorsMatching(pattern string) {
	h.testOutput.AllowErrorsMatching(pattern)
}

// Supervise makes the harness wait for the given threads once the test body returns.
func (h *LoggingHarness) Supervise(threads ...govnr.ShutdownWaiter) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.mu.threads = append(h.mu.threads, threads...)
}

func (h *LoggingHarness) supervised() []govnr.ShutdownWaiter {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]govnr.ShutdownWaiter(nil), h.mu.threads...)
}

// Logging fails the test on error lines that were not allowed, and on supervised threads still running
// after the test body. Lines logged by threads that outlive the test are dropped.
func Logging(tb testing.TB, f func(harness *LoggingHarness)) {
	testOutput := log.NewTestOutput(tb, log.NewHumanReadableFormatter())
	h := &LoggingHarness{
		Logger:     log.GetLogger().WithOutput(testOutput),
		T:          tb,
		testOutput: testOutput,
	}
	defer testOutput.TestTerminated()

	f(h)

	if !test.WaitForShutdown(h.supervised()...) {
		tb.Fatalf("supervised threads still running %s after the test ended", test.ShutdownTimeout)
	}
	if testOutput.HasErrors() {
		tb.Fatal("Test failed; encountered unexpected errors")
	}
}
