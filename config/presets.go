// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import "time"

// all other configs are variations from the production one
func defaultProductionConfig() *config {
	cfg := &config{kv: make(map[string]Value)}

	// applied to each thread of a batch separately
	cfg.SetDuration(THREADS_JOIN_TIMEOUT, 300*time.Second)
	cfg.SetBool(THREADS_STRICT_JOIN, true)
	cfg.SetBool(THREADS_DAEMON_BY_DEFAULT, true)
	cfg.SetDuration(THREADS_SHUTDOWN_TIMEOUT, 30*time.Second)

	// longest execution the latency histogram can record, longer ones are counted as overflow
	cfg.SetDuration(THREADS_MAX_EXECUTION_TIME, 24*time.Hour)

	cfg.SetDuration(METRICS_REPORT_INTERVAL, 30*time.Second)

	cfg.SetBool(LOGGER_JSON_FORMAT, false)
	cfg.SetDuration(LOGGER_FILE_TRUNCATION_INTERVAL, 24*time.Hour)

	return cfg
}

func ForProduction() OverridableConfig {
	return defaultProductionConfig()
}

func ForTests() OverridableConfig {
	cfg := defaultProductionConfig()

	cfg.SetDuration(THREADS_JOIN_TIMEOUT, 5*time.Second)
	cfg.SetDuration(THREADS_SHUTDOWN_TIMEOUT, 5*time.Second)
	cfg.SetDuration(THREADS_MAX_EXECUTION_TIME, 1*time.Minute)
	cfg.SetDuration(METRICS_REPORT_INTERVAL, 50*time.Millisecond)

	return cfg
}
