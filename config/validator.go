// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"github.com/orbs-network/scribe/log"
	"reflect"
	"runtime"
	"strings"
	"time"
)

type validator struct {
	logger log.Logger
}

func NewValidator(logger log.Logger) *validator {
	return &validator{logger: logger}
}

func (v *validator) Validate(cfg Config) {
	v.requirePositive(cfg.ThreadsJoinTimeout, "join timeout must be positive")
	v.requirePositive(cfg.ThreadsShutdownTimeout, "shutdown timeout must be positive")
	v.requirePositive(cfg.ThreadsMaxExecutionTime, "max execution time must be positive")
	v.requirePositive(cfg.MetricsReportInterval, "metrics report interval must be positive")
}

func (v *validator) requirePositive(d func() time.Duration, msg string) {
	if d() <= 0 {
		v.logger.Error(msg, log.Stringable(funcName(d), d()))
		panic(msg)
	}
}

func funcName(i interface{}) string {
	fullName := runtime.FuncForPC(reflect.ValueOf(i).Pointer()).Name()
	lastDot := strings.LastIndex(fullName, ".")
	return strings.TrimSuffix(fullName[lastDot+1:], "-fm")
}
