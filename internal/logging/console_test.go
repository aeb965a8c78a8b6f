// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func TestConsoleInfo(t *testing.T) {
	buf := &bytes.Buffer{}
	console := NewConsole(buf, false)
	console.Infof("Created pod '%s'", "hello")
	console.Log("hidden")
	console.Logf("hidden %d", 1)
	assert.Equal(t, "[info] Created pod 'hello'\n", buf.String())
}

func TestConsoleVerbose(t *testing.T) {
	buf := &bytes.Buffer{}
	NewConsole(buf, true).Logf("Retrying in %s", "500ms")
	assert.Contains(t, buf.String(), "Retrying in 500ms")
}

func TestConsoleVerboseEnv(t *testing.T) {
	t.Setenv(verboseEnv, "true")
	assert.True(t, GetVerbose())

	buf := &bytes.Buffer{}
	NewConsole(buf, false).Log("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestConsoleError(t *testing.T) {
	buf := &bytes.Buffer{}
	NewConsole(buf, false).Errorf("%s", errors.New("forbidden"))
	assert.Equal(t, "[error] forbidden\n", buf.String())
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Log("nothing")
	log.Infof("nothing %d", 1)
}
