// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"encoding/json"
	"github.com/pkg/errors"
	"io/ioutil"
	"os"
	"strings"
	"time"
)

func convertKeyName(key string) string {
	return strings.ToUpper(strings.Replace(key, "-", "_", -1))
}

func modifyFromJson(cfg mutableConfig, source string) error {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(source), &data); err != nil {
		return errors.Wrap(err, "could not parse config json")
	}

	return populateConfig(cfg, data)
}

type kind int

const (
	durationKind kind = iota
	boolKind
)

var knownKeys = map[string]kind{
	THREADS_JOIN_TIMEOUT:            durationKind,
	THREADS_STRICT_JOIN:             boolKind,
	THREADS_DAEMON_BY_DEFAULT:       boolKind,
	THREADS_SHUTDOWN_TIMEOUT:        durationKind,
	THREADS_MAX_EXECUTION_TIME:      durationKind,
	METRICS_REPORT_INTERVAL:         durationKind,
	LOGGER_JSON_FORMAT:              boolKind,
	LOGGER_FILE_TRUNCATION_INTERVAL: durationKind,
}

// durations are given as strings ("30s"), numbers are taken as seconds; both must be positive
func populateConfig(cfg mutableConfig, data map[string]interface{}) error {
	for key, value := range data {
		name := convertKeyName(key)
		expected, known := knownKeys[name]
		if !known {
			return errors.Errorf("unknown config key %s", key)
		}

		switch expected {
		case boolKind:
			v, ok := value.(bool)
			if !ok {
				return errors.Errorf("config key %s expects a boolean, got %T %v", key, value, value)
			}
			cfg.SetBool(name, v)
		case durationKind:
			d, err := decodeDuration(value)
			if err != nil {
				return errors.Wrapf(err, "could not decode value for config key %s", key)
			}
			cfg.SetDuration(name, d)
		}
	}

	return nil
}

func decodeDuration(value interface{}) (time.Duration, error) {
	var d time.Duration
	switch v := value.(type) {
	case float64:
		d = time.Duration(v * float64(time.Second))
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return 0, err
		}
		d = parsed
	default:
		return 0, errors.Errorf("expected a duration, got %T %v", value, value)
	}

	if d <= 0 {
		return 0, errors.Errorf("duration must be positive, got %s", d)
	}
	return d, nil
}

// For main reading several files into one config

type FilesPaths []string

func (i *FilesPaths) String() string {
	return strings.Join(*i, ",")
}

func (i *FilesPaths) Set(value string) error {
	*i = append(*i, value)
	return nil
}

func GetConfigFromFiles(configFiles FilesPaths) (Config, error) {
	cfg := defaultProductionConfig()

	for _, configFile := range configFiles {
		if _, err := os.Stat(configFile); os.IsNotExist(err) {
			return nil, errors.Errorf("could not open config file: %s", err)
		}

		contents, err := ioutil.ReadFile(configFile)
		if err != nil {
			return nil, err
		}

		if err := modifyFromJson(cfg, string(contents)); err != nil {
			return nil, errors.Wrapf(err, "in config file %s", configFile)
		}
	}

	return cfg, nil
}

func GetConfigFromJson(source string) (Config, error) {
	cfg := defaultProductionConfig()
	if err := modifyFromJson(cfg, source); err != nil {
		return nil, err
	}
	return cfg, nil
}
