// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package job

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

const (
	// DefaultName is the name of the pod when none is configured
	DefaultName = "hello"
	// DefaultNamespace is the namespace in which the pod is created when none is configured
	DefaultNamespace = "default"
	// DefaultContainer is the name of the pod's only container
	DefaultContainer = "main"
	// DefaultImage is the container image run when none is configured
	DefaultImage = "busybox:1.36"
)

// DefaultCommand is the container command run when none is configured
var DefaultCommand = []string{"sh", "-c", "echo Hello world"}

const jobLabel = "job"

// Job describes a single short-lived pod to run
type Job struct {
	Name          string
	Namespace     string
	Container     string
	Image         string
	Command       []string
	RestartPolicy corev1.RestartPolicy
	Labels        map[string]string
}

// Default returns the job run when nothing is configured
func Default() Job {
	return Job{
		Name:          DefaultName,
		Namespace:     DefaultNamespace,
		Container:     DefaultContainer,
		Image:         DefaultImage,
		Command:       append([]string(nil), DefaultCommand...),
		RestartPolicy: corev1.RestartPolicyNever,
	}
}

// Pod returns the pod submitted for the job
func (j Job) Pod() *corev1.Pod {
	labels := make(map[string]string, len(j.Labels)+1)
	for key, value := range j.Labels {
		labels[key] = value
	}
	labels[jobLabel] = j.Name

	restartPolicy := j.RestartPolicy
	if restartPolicy == "" {
		restartPolicy = corev1.RestartPolicyNever
	}

	return &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Name:      j.Name,
			Namespace: j.Namespace,
			Labels:    labels,
		},
		Spec: corev1.PodSpec{
			RestartPolicy: restartPolicy,
			Containers: []corev1.Container{
				{
					Name:    j.Container,
					Image:   j.Image,
					Command: j.Command,
				},
			},
		},
	}
}

// ExitCode returns the process exit code for the given terminal phase
func ExitCode(phase string) int {
	if phase == string(corev1.PodSucceeded) {
		return 0
	}
	return 1
}
