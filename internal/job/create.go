// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package job

import (
	"context"

	"github.com/pkg/errors"
)

// Submit creates the job's pod. Creation is never retried.
func (r *Runner) Submit(ctx context.Context, job Job) error {
	pod := job.Pod()
	r.log.Logf("Creating pod '%s' in namespace '%s' with image %s", pod.Name, pod.Namespace, job.Image)
	if err := r.cluster.CreatePod(ctx, pod); err != nil {
		return errors.Wrapf(err, "failed to create pod '%s'", job.Name)
	}
	r.log.Infof("Created pod '%s'", job.Name)
	return nil
}
