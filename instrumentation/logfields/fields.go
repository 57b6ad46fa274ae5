// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package logfields

import (
	"fmt"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/scribe/log"
	"runtime/debug"
	"time"
)

type Errorer interface {
	Error(message string, fields ...*log.Field)
}

func Thread(name string) *log.Field {
	return log.String("thread", name)
}

func Elapsed(d time.Duration) *log.Field {
	return log.Stringable("elapsed", d)
}

// seconds with two decimals, the way operators read execution times
func ElapsedSeconds(d time.Duration) *log.Field {
	return log.String("elapsed-seconds", fmt.Sprintf("%.2f", d.Seconds()))
}

func Timeout(d time.Duration) *log.Field {
	return log.Stringable("timeout", d)
}

func StackTrace() *log.Field {
	return log.String("stack-trace", string(debug.Stack()))
}

type govnrErrorer struct {
	logger Errorer
}

func (h *govnrErrorer) Error(err error) {
	h.logger.Error("recovered panic", log.Error(err), StackTrace())
}

func GovnrErrorer(logger Errorer) govnr.Errorer {
	return &govnrErrorer{logger}
}
