// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"

	"github.com/onosproject/kubejob/internal/config"
	"github.com/onosproject/kubejob/internal/job"
	"github.com/onosproject/kubejob/internal/k8s"
	"github.com/onosproject/kubejob/internal/logging"
	"github.com/spf13/cobra"
)

// newCluster connects to the cluster named by the configuration
var newCluster = func(config config.Config) (job.Cluster, error) {
	client, err := k8s.NewClient(config.Kubeconfig, config.Context)
	if err != nil {
		return nil, err
	}
	return job.NewCluster(client), nil
}

func getRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Create a pod, stream its logs until it completes, then delete it",
		Args:  cobra.NoArgs,
		RunE:  runRunCommand,
	}
}

func runRunCommand(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")

	config, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	console := logging.NewConsole(cmd.OutOrStdout(), verbose)

	cluster, err := newCluster(config)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, config.Timeout)
		defer cancel()
	}

	opts := []job.Option{
		job.WithOutput(cmd.OutOrStdout()),
		job.WithLogger(console),
		job.WithRetryPolicy(config.RetryPolicy()),
	}
	if config.NoTeardown {
		opts = append(opts, job.WithNoTeardown())
	}

	code, err := job.NewRunner(cluster, opts...).Run(ctx, config.Job())
	if err != nil {
		return err
	}
	if code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}
