// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package job

import (
	"context"
	"io"

	"github.com/buildkite/roko"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
)

// IsNotReady returns whether a log stream error means the container has not started yet
func IsNotReady(err error) bool {
	return k8serrors.IsBadRequest(err) || k8serrors.IsNotFound(err)
}

// StreamLogs follows the logs of the job's container and copies them to the
// runner's output until the container exits. Opening the stream is retried
// while the API reports the container is not ready; any other error is returned.
func (r *Runner) StreamLogs(ctx context.Context, job Job) error {
	stream, err := r.openLogs(ctx, job)
	if err != nil {
		return errors.Wrapf(err, "failed to stream logs of pod '%s'", job.Name)
	}
	defer stream.Close()

	// Invalid UTF-8 is replaced with U+FFFD, including runes split across reads.
	reader := transform.NewReader(stream, unicode.UTF8.NewDecoder())
	if _, err := io.Copy(r.out, reader); err != nil {
		return errors.Wrapf(err, "failed to read logs of pod '%s'", job.Name)
	}
	return nil
}

func (r *Runner) openLogs(ctx context.Context, job Job) (io.ReadCloser, error) {
	var stream io.ReadCloser
	err := r.retry.newRetrier(r.sleep).DoWithContext(ctx, func(retrier *roko.Retrier) error {
		if err := ctx.Err(); err != nil {
			retrier.Break()
			return err
		}
		s, err := r.cluster.StreamLogs(ctx, job.Name, job.Namespace, job.Container)
		if err != nil {
			if !IsNotReady(err) {
				retrier.Break()
				return err
			}
			r.log.Logf("Pod '%s' is not ready: %s (%s)", job.Name, err, retrier)
			return err
		}
		stream = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stream, nil
}
