// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package instrumentation

import (
	"github.com/orbs-network/scribe/log"
	"github.com/orbs-network/threadkit/config"
	"github.com/pkg/errors"
	"io"
	"os"
)

// GetLogger is called once by the process entry point; the returned logger is then passed to every component.
func GetLogger(path string, silent bool, cfg config.LoggerConfig) (log.Logger, error) {
	return getLogger(os.Stdout, path, silent, cfg)
}

func getLogger(stdout io.Writer, path string, silent bool, cfg config.LoggerConfig) (log.Logger, error) {
	outputs := make([]log.Output, 0, 2)

	if !silent {
		outputs = append(outputs, log.NewFormattingOutput(stdout, formatter(cfg)))
	}

	if path != "" {
		logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, errors.Wrapf(err, "could not open log file %s", path)
		}

		fileWriter := log.NewTruncatingFileWriter(logFile, cfg.LoggerFileTruncationInterval())
		outputs = append(outputs, log.NewFormattingOutput(fileWriter, log.NewJsonFormatter()))
	}

	return log.GetLogger().WithOutput(outputs...), nil
}

func formatter(cfg config.LoggerConfig) log.LogFormatter {
	if cfg.LoggerJsonFormat() {
		return log.NewJsonFormatter()
	}
	return log.NewHumanReadableFormatter()
}
