// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/onosproject/kubejob/internal/cli"
)

func main() {
	cmd := cli.GetRootCommand()
	if err := cmd.Execute(); err != nil {
		os.Exit(cli.ReportError(os.Stdout, err))
	}
}
