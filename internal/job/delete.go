// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package job

import (
	"context"

	"github.com/pkg/errors"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
)

// Cleanup deletes the job's pod with a zero grace period. A pod that is
// already gone is not an error.
func (r *Runner) Cleanup(ctx context.Context, job Job) error {
	r.log.Logf("Deleting pod '%s'", job.Name)
	err := r.cluster.DeletePod(ctx, job.Name, job.Namespace)
	if err != nil {
		if k8serrors.IsNotFound(err) {
			r.log.Logf("Pod '%s' is already deleted", job.Name)
			return nil
		}
		return errors.Wrapf(err, "failed to delete pod '%s'", job.Name)
	}
	r.log.Infof("Deleted pod '%s'", job.Name)
	return nil
}
