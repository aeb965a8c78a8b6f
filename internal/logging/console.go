// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

var (
	infoColor  = color.New(color.FgCyan)
	debugColor = color.New(color.FgHiBlack)
	errorColor = color.New(color.FgRed, color.Bold)
)

const (
	infoPrefix  = "[info]"
	errorPrefix = "[error]"
)

const verboseEnv = "VERBOSE_LOGGING"

// GetVerbose returns whether verbose logging is enabled
func GetVerbose() bool {
	verbose := os.Getenv(verboseEnv)
	return verbose != ""
}

// NewConsole returns a console logger writing to the given writer
func NewConsole(writer io.Writer, verbose bool) *Console {
	return &Console{
		writer:  writer,
		verbose: verbose || GetVerbose(),
	}
}

// Console writes informational lines to a terminal, and debug lines when verbose
type Console struct {
	writer  io.Writer
	verbose bool
	mu      sync.Mutex
}

// Log logs a debug message
func (c *Console) Log(message string) {
	if !c.verbose {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = debugColor.Fprintf(c.writer, "  %s %s\n", time.Now().Format(time.RFC3339), message)
}

// Logf logs a formatted debug message
func (c *Console) Logf(message string, args ...any) {
	c.Log(fmt.Sprintf(message, args...))
}

// Infof logs a formatted informational message
func (c *Console) Infof(message string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = infoColor.Fprintf(c.writer, "%s %s\n", infoPrefix, fmt.Sprintf(message, args...))
}

// Errorf logs a formatted error message
func (c *Console) Errorf(message string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = errorColor.Fprintf(c.writer, "%s %s\n", errorPrefix, fmt.Sprintf(message, args...))
}
