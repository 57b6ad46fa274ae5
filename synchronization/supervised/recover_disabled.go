// +build norecover

// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package supervised

import (
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/threadkit/instrumentation/logfields"
	"os"
	"runtime/debug"
)

func recoverPanics(logger logfields.Errorer, _ *error) {
	if p := recover(); p != nil {
		e := &PanicError{Value: p, Location: identifyPanic()}
		stack := string(debug.Stack())
		logger.Error("Fatal error", log.Error(e), log.String("stack-trace", stack))
		println("Exited brutally due to panicking thread: ", e.Error())
		println(stack)
		os.Exit(42) // because otherwise the system might be a zombie with partial functionality
	}
}
