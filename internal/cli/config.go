// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/spf13/cobra"
)

func getConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved run configuration as YAML",
		Args:  cobra.NoArgs,
		RunE:  runConfigCommand,
	}
}

func runConfigCommand(cmd *cobra.Command, args []string) error {
	config, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	bytes, err := config.YAML()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(bytes)
	return err
}
