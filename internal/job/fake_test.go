// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package job

import (
	"context"
	"errors"
	"io"
	"strings"

	corev1 "k8s.io/api/core/v1"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

var podsResource = schema.GroupResource{Resource: "pods"}

func notFound(name string) error {
	return k8serrors.NewNotFound(podsResource, name)
}

func badRequest() error {
	return k8serrors.NewBadRequest(`container "main" in pod "hello" is waiting to start: ContainerCreating`)
}

func forbidden(name string) error {
	return k8serrors.NewForbidden(podsResource, name, errors.New(`User "dev" cannot get resource "pods/log"`))
}

// fakeCluster plays back scripted API responses and records the calls made
type fakeCluster struct {
	createErr  error
	logErrs    []error
	logs       string
	phase      string
	phaseErr   error
	deleteErrs []error

	created    []*corev1.Pod
	logCalls   int
	phaseCalls int
	deleted    []string
	calls      []string
}

func (c *fakeCluster) CreatePod(ctx context.Context, pod *corev1.Pod) error {
	c.calls = append(c.calls, "create")
	if c.createErr != nil {
		return c.createErr
	}
	c.created = append(c.created, pod)
	return nil
}

func (c *fakeCluster) StreamLogs(ctx context.Context, name, namespace, container string) (io.ReadCloser, error) {
	c.calls = append(c.calls, "logs")
	c.logCalls++
	if len(c.logErrs) > 0 {
		err := c.logErrs[0]
		c.logErrs = c.logErrs[1:]
		return nil, err
	}
	return io.NopCloser(strings.NewReader(c.logs)), nil
}

func (c *fakeCluster) GetPhase(ctx context.Context, name, namespace string) (string, error) {
	c.calls = append(c.calls, "status")
	c.phaseCalls++
	return c.phase, c.phaseErr
}

func (c *fakeCluster) DeletePod(ctx context.Context, name, namespace string) error {
	c.calls = append(c.calls, "delete")
	if len(c.deleteErrs) > 0 {
		err := c.deleteErrs[0]
		c.deleteErrs = c.deleteErrs[1:]
		if err != nil {
			return err
		}
	}
	c.deleted = append(c.deleted, name)
	return nil
}
