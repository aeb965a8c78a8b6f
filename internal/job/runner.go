// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package job

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/onosproject/kubejob/internal/logging"
)

// Option configures a Runner
type Option func(*Runner)

// WithOutput sets the writer receiving the pod's logs
func WithOutput(writer io.Writer) Option {
	return func(r *Runner) {
		r.out = writer
	}
}

// WithLogger sets the logger receiving progress messages
func WithLogger(log logging.Logger) Option {
	return func(r *Runner) {
		r.log = log
	}
}

// WithRetryPolicy sets the policy used to reopen the log stream
func WithRetryPolicy(policy RetryPolicy) Option {
	return func(r *Runner) {
		r.retry = policy.normalize()
	}
}

// WithSleepFunc sets the function used to wait between log stream attempts
func WithSleepFunc(sleep func(time.Duration)) Option {
	return func(r *Runner) {
		r.sleep = sleep
	}
}

// WithNoTeardown leaves the pod in place once it completes
func WithNoTeardown() Option {
	return func(r *Runner) {
		r.noTeardown = true
	}
}

// NewRunner returns a new job runner
func NewRunner(cluster Cluster, opts ...Option) *Runner {
	r := &Runner{
		cluster: cluster,
		out:     os.Stdout,
		log:     logging.Nop(),
		retry:   DefaultRetryPolicy(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Runner runs a job to completion: it creates the pod, streams its logs,
// reads its terminal phase and deletes it.
type Runner struct {
	cluster    Cluster
	out        io.Writer
	log        logging.Logger
	retry      RetryPolicy
	sleep      func(time.Duration)
	noTeardown bool
}

// Run runs the job and returns the exit code for its terminal phase.
// Any error is fatal, and no cleanup is attempted past the failing step.
func (r *Runner) Run(ctx context.Context, job Job) (int, error) {
	if err := r.Submit(ctx, job); err != nil {
		return 1, err
	}
	if err := r.StreamLogs(ctx, job); err != nil {
		return 1, err
	}
	phase, err := r.AwaitTerminalStatus(ctx, job)
	if err != nil {
		return 1, err
	}
	if r.noTeardown {
		r.log.Logf("Leaving pod '%s' in namespace '%s'", job.Name, job.Namespace)
	} else if err := r.Cleanup(ctx, job); err != nil {
		return 1, err
	}
	return ExitCode(phase), nil
}
