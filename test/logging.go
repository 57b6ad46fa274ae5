// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"bytes"
	"github.com/orbs-network/scribe/log"
	"strings"
	"sync"
)

// LogBuffer collects formatted log lines from any number of goroutines.
type LogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *LogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *LogBuffer) Lines() []string {
	return strings.Split(strings.TrimSpace(b.String()), "\n")
}

// LinesContaining returns the lines holding every one of parts, in the order they were logged.
func (b *LogBuffer) LinesContaining(parts ...string) []string {
	var matching []string
	for _, line := range b.Lines() {
		matched := true
		for _, part := range parts {
			if !strings.Contains(line, part) {
				matched = false
				break
			}
		}
		if matched {
			matching = append(matching, line)
		}
	}
	return matching
}

// BufferedLogger returns a json logger whose output, errors included, can be inspected by the test.
func BufferedLogger() (log.Logger, *LogBuffer) {
	buf := &LogBuffer{}
	return log.GetLogger().WithOutput(log.NewFormattingOutput(buf, log.NewJsonFormatter())), buf
}
