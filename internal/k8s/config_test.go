// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package k8s

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKubeconfig = `apiVersion: v1
kind: Config
clusters:
- name: dev
  cluster:
    server: https://dev.example.com:6443
- name: prod
  cluster:
    server: https://prod.example.com:6443
contexts:
- name: dev
  context:
    cluster: dev
    user: admin
- name: prod
  context:
    cluster: prod
    user: admin
current-context: dev
users:
- name: admin
  user:
    token: secret
`

func writeKubeconfig(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(testKubeconfig), 0600))
	return path
}

func TestGetConfig(t *testing.T) {
	path := writeKubeconfig(t)

	config, err := GetConfig(path, "")
	require.NoError(t, err)
	assert.Equal(t, "https://dev.example.com:6443", config.Host)
	assert.Equal(t, "secret", config.BearerToken)

	config, err = GetConfig(path, "prod")
	require.NoError(t, err)
	assert.Equal(t, "https://prod.example.com:6443", config.Host)
}

func TestGetConfigUnknownContext(t *testing.T) {
	_, err := GetConfig(writeKubeconfig(t), "staging")
	assert.Error(t, err)
}

func TestGetConfigMissingFile(t *testing.T) {
	_, err := GetConfig(filepath.Join(t.TempDir(), "missing"), "")
	assert.Error(t, err)
}

func TestNewClient(t *testing.T) {
	client, err := NewClient(writeKubeconfig(t), "")
	require.NoError(t, err)
	assert.NotNil(t, client)
}
