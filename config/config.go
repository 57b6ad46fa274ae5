// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import "time"

type ThreadsConfig interface {
	ThreadsJoinTimeout() time.Duration
	ThreadsStrictJoin() bool
	ThreadsDaemonByDefault() bool
	ThreadsShutdownTimeout() time.Duration
	ThreadsMaxExecutionTime() time.Duration
}

type MetricsConfig interface {
	MetricsReportInterval() time.Duration
}

type LoggerConfig interface {
	LoggerJsonFormat() bool
	LoggerFileTruncationInterval() time.Duration
}

type Config interface {
	ThreadsConfig
	MetricsConfig
	LoggerConfig
}

// OverridableConfig is handed to tests and tools that need a variation of a preset
type OverridableConfig interface {
	Config
	With(overrides ...KeyValue) OverridableConfig
}

type mutableConfig interface {
	Config
	SetDuration(key string, value time.Duration) mutableConfig
	SetBool(key string, value bool) mutableConfig
}

type Value struct {
	DurationValue time.Duration
	BoolValue     bool
}

type KeyValue struct {
	Key   string
	Value Value
}

const (
	THREADS_JOIN_TIMEOUT            = "THREADS_JOIN_TIMEOUT"
	THREADS_STRICT_JOIN             = "THREADS_STRICT_JOIN"
	THREADS_DAEMON_BY_DEFAULT       = "THREADS_DAEMON_BY_DEFAULT"
	THREADS_SHUTDOWN_TIMEOUT        = "THREADS_SHUTDOWN_TIMEOUT"
	THREADS_MAX_EXECUTION_TIME      = "THREADS_MAX_EXECUTION_TIME"
	METRICS_REPORT_INTERVAL         = "METRICS_REPORT_INTERVAL"
	LOGGER_JSON_FORMAT              = "LOGGER_JSON_FORMAT"
	LOGGER_FILE_TRUNCATION_INTERVAL = "LOGGER_FILE_TRUNCATION_INTERVAL"
)

type config struct {
	kv map[string]Value
}

func (c *config) SetDuration(key string, value time.Duration) mutableConfig {
	c.kv[key] = Value{DurationValue: value}
	return c
}

func (c *config) SetBool(key string, value bool) mutableConfig {
	c.kv[key] = Value{BoolValue: value}
	return c
}

func (c *config) Modify(newValues ...KeyValue) {
	for _, kv := range newValues {
		c.kv[kv.Key] = kv.Value
	}
}

// With returns a copy of the config with the overrides applied, the receiver is left untouched
func (c *config) With(overrides ...KeyValue) OverridableConfig {
	cloned := &config{kv: make(map[string]Value, len(c.kv))}
	for k, v := range c.kv {
		cloned.kv[k] = v
	}
	cloned.Modify(overrides...)
	return cloned
}

func DurationSetting(key string, value time.Duration) KeyValue {
	return KeyValue{Key: key, Value: Value{DurationValue: value}}
}

func BoolSetting(key string, value bool) KeyValue {
	return KeyValue{Key: key, Value: Value{BoolValue: value}}
}

func (c *config) ThreadsJoinTimeout() time.Duration {
	return c.kv[THREADS_JOIN_TIMEOUT].DurationValue
}

func (c *config) ThreadsStrictJoin() bool {
	return c.kv[THREADS_STRICT_JOIN].BoolValue
}

func (c *config) ThreadsDaemonByDefault() bool {
	return c.kv[THREADS_DAEMON_BY_DEFAULT].BoolValue
}

func (c *config) ThreadsShutdownTimeout() time.Duration {
	return c.kv[THREADS_SHUTDOWN_TIMEOUT].DurationValue
}

func (c *config) ThreadsMaxExecutionTime() time.Duration {
	return c.kv[THREADS_MAX_EXECUTION_TIME].DurationValue
}

func (c *config) MetricsReportInterval() time.Duration {
	return c.kv[METRICS_REPORT_INTERVAL].DurationValue
}

func (c *config) LoggerJsonFormat() bool {
	return c.kv[LOGGER_JSON_FORMAT].BoolValue
}

func (c *config) LoggerFileTruncationInterval() time.Duration {
	return c.kv[LOGGER_FILE_TRUNCATION_INTERVAL].DurationValue
}
