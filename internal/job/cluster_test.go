// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package job

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes/fake"
	k8stesting "k8s.io/client-go/testing"
)

func TestClusterCreatePod(t *testing.T) {
	client := fake.NewSimpleClientset()
	cluster := NewCluster(client)

	require.NoError(t, cluster.CreatePod(context.Background(), Default().Pod()))

	pod, err := client.CoreV1().Pods("default").Get(context.Background(), "hello", metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, "busybox:1.36", pod.Spec.Containers[0].Image)

	err = cluster.CreatePod(context.Background(), Default().Pod())
	assert.True(t, k8serrors.IsAlreadyExists(err))
}

func TestClusterGetPhase(t *testing.T) {
	client := fake.NewSimpleClientset(&corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Name:      "hello",
			Namespace: "default",
		},
		Status: corev1.PodStatus{
			Phase: corev1.PodSucceeded,
		},
	})
	cluster := NewCluster(client)

	phase, err := cluster.GetPhase(context.Background(), "hello", "default")
	require.NoError(t, err)
	assert.Equal(t, "Succeeded", phase)

	_, err = cluster.GetPhase(context.Background(), "goodbye", "default")
	assert.True(t, k8serrors.IsNotFound(err))
}

func TestClusterDeletePod(t *testing.T) {
	client := fake.NewSimpleClientset(Default().Pod())
	cluster := NewCluster(client)

	var gracePeriod *int64
	client.PrependReactor("delete", "pods", func(action k8stesting.Action) (bool, runtime.Object, error) {
		gracePeriod = action.(k8stesting.DeleteActionImpl).GetDeleteOptions().GracePeriodSeconds
		return false, nil, nil
	})

	require.NoError(t, cluster.DeletePod(context.Background(), "hello", "default"))
	require.NotNil(t, gracePeriod)
	assert.Equal(t, int64(0), *gracePeriod)

	err := cluster.DeletePod(context.Background(), "hello", "default")
	assert.True(t, k8serrors.IsNotFound(err))
}

func TestClusterStreamLogs(t *testing.T) {
	cluster := NewCluster(fake.NewSimpleClientset(Default().Pod()))

	stream, err := cluster.StreamLogs(context.Background(), "hello", "default", "main")
	require.NoError(t, err)
	defer stream.Close()

	bytes, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Equal(t, "fake logs", string(bytes))
}

func TestClusterRunner(t *testing.T) {
	client := fake.NewSimpleClientset()
	// The log stream is a get on the pods/log subresource and must fall through.
	client.PrependReactor("get", "pods", func(action k8stesting.Action) (bool, runtime.Object, error) {
		get, ok := action.(k8stesting.GetAction)
		if !ok || get.GetSubresource() != "" {
			return false, nil, nil
		}
		return true, &corev1.Pod{
			ObjectMeta: metav1.ObjectMeta{
				Name:      get.GetName(),
				Namespace: get.GetNamespace(),
			},
			Status: corev1.PodStatus{
				Phase: corev1.PodFailed,
			},
		}, nil
	})

	code, err := NewRunner(NewCluster(client), WithOutput(io.Discard)).Run(context.Background(), Default())
	require.NoError(t, err)
	assert.Equal(t, 1, code)

	pods, err := client.CoreV1().Pods("default").List(context.Background(), metav1.ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, pods.Items)
}
