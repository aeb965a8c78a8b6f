// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package job

import (
	"context"
	"io"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

// Cluster is the subset of the Kubernetes API used to run a job.
// Errors are returned as the API server reported them so callers can
// classify them with k8s.io/apimachinery/pkg/api/errors.
type Cluster interface {
	// CreatePod submits the given pod
	CreatePod(ctx context.Context, pod *corev1.Pod) error
	// StreamLogs opens a follow stream on the logs of a pod's container
	StreamLogs(ctx context.Context, name, namespace, container string) (io.ReadCloser, error)
	// GetPhase reads the current phase of a pod
	GetPhase(ctx context.Context, name, namespace string) (string, error)
	// DeletePod requests immediate deletion of a pod
	DeletePod(ctx context.Context, name, namespace string) error
}

// NewCluster returns a Cluster backed by the given Kubernetes client
func NewCluster(client kubernetes.Interface) Cluster {
	return &kubeCluster{client: client}
}

type kubeCluster struct {
	client kubernetes.Interface
}

func (c *kubeCluster) CreatePod(ctx context.Context, pod *corev1.Pod) error {
	_, err := c.client.CoreV1().Pods(pod.Namespace).Create(ctx, pod, metav1.CreateOptions{})
	return err
}

func (c *kubeCluster) StreamLogs(ctx context.Context, name, namespace, container string) (io.ReadCloser, error) {
	req := c.client.CoreV1().Pods(namespace).GetLogs(name, &corev1.PodLogOptions{
		Container: container,
		Follow:    true,
	})
	return req.Stream(ctx)
}

func (c *kubeCluster) GetPhase(ctx context.Context, name, namespace string) (string, error) {
	pod, err := c.client.CoreV1().Pods(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return "", err
	}
	return string(pod.Status.Phase), nil
}

func (c *kubeCluster) DeletePod(ctx context.Context, name, namespace string) error {
	return c.client.CoreV1().Pods(namespace).Delete(ctx, name, getDeleteOptions())
}

func getDeleteOptions() metav1.DeleteOptions {
	gracePeriod := int64(0)
	return metav1.DeleteOptions{
		GracePeriodSeconds: &gracePeriod,
	}
}
