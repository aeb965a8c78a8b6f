// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/onosproject/kubejob/internal/config"
	"github.com/spf13/cobra"
)

const rootExamples = `
  # Run the default busybox pod in the default namespace.
  kubejob

  # Run a command in a specific image and namespace.
  kubejob run -i alpine:3.19 -n batch --command sh,-c,'date; uname -a'

  # Give up waiting for the pod to start after 20 attempts, and on the whole run after 5 minutes.
  kubejob run --max-attempts 20 --timeout 5m

  # Keep the pod once it completes.
  kubejob run --generate-name --no-teardown

  # Load settings from a file; flags and KUBEJOB_* environment variables take precedence.
  kubejob run --config ./kubejob.yaml
`

// GetRootCommand returns the root kubejob command
func GetRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "kubejob [command]",
		Short:         "Run a single pod on Kubernetes to completion and stream its logs",
		Example:       rootExamples,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRunCommand,
	}
	cmd.AddCommand(getRunCommand())
	cmd.AddCommand(getConfigCommand())
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().String("config", "", "the path to a YAML config file")
	cmd.PersistentFlags().String(config.KubeconfigKey, "", "the path to the kubeconfig file (defaults to $KUBECONFIG or ~/.kube/config)")
	cmd.PersistentFlags().String(config.ContextKey, "", "the kubeconfig context to use")
	config.AddFlags(cmd.PersistentFlags())
	return cmd
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	file, _ := cmd.Flags().GetString("config")
	return config.Load(cmd.Flags(), file)
}
