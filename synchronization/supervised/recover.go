// +build !norecover

// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package supervised

import (
	"github.com/orbs-network/threadkit/instrumentation/logfields"
	"runtime/debug"
)

func recoverPanics(_ logfields.Errorer, err *error) {
	if p := recover(); p != nil {
		*err = &PanicError{
			Value:    p,
			Location: identifyPanic(),
			Stack:    debug.Stack(),
		}
	}
}
