// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package threads

import (
	"fmt"
	"github.com/pkg/errors"
	"strings"
	"time"
)

var (
	ErrConstruction   = errors.New("failed to build thread")
	ErrAlreadyRunning = errors.New("thread is already running")
	ErrAlreadyStarted = errors.New("thread can only be started once")
	ErrNotStarted     = errors.New("thread was never started")
)

// TimeoutError is returned when a thread is still alive after its join timeout elapsed.
type TimeoutError struct {
	Name    string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("thread %s still running after waiting %s", e.Name, e.Timeout)
}

// JoinTimeoutError lists every thread of a batch that timed out, in join order.
type JoinTimeoutError struct {
	Timeouts []*TimeoutError
}

func (e *JoinTimeoutError) Names() []string {
	names := make([]string, 0, len(e.Timeouts))
	for _, t := range e.Timeouts {
		names = append(names, t.Name)
	}
	return names
}

func (e *JoinTimeoutError) Error() string {
	return fmt.Sprintf("%d thread(s) did not complete in time: %s", len(e.Timeouts), strings.Join(e.Names(), ", "))
}

func IsTimeout(err error) bool {
	switch errors.Cause(err).(type) {
	case *TimeoutError, *JoinTimeoutError:
		return true
	default:
		return false
	}
}
