// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package job

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// AwaitTerminalStatus reads the phase of the job's pod once. The log stream
// only closes after the container stops, so the phase read here is terminal.
func (r *Runner) AwaitTerminalStatus(ctx context.Context, job Job) (string, error) {
	phase, err := r.cluster.GetPhase(ctx, job.Name, job.Namespace)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read status of pod '%s'", job.Name)
	}
	phase = strings.TrimSpace(phase)
	fmt.Fprintln(r.out)
	r.log.Infof("Pod '%s' completed with phase: %s", job.Name, phase)
	return phase, nil
}
