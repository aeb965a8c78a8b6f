// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package logging

// Logger is an interface for logging job progress
type Logger interface {
	// Log logs a debug message
	Log(message string)
	// Logf logs a formatted debug message
	Logf(message string, args ...any)
	// Infof logs a formatted informational message
	Infof(message string, args ...any)
}

// Nop returns a Logger that discards everything
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Log(string)           {}
func (nopLogger) Logf(string, ...any)  {}
func (nopLogger) Infof(string, ...any) {}
