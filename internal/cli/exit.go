// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"

	"github.com/onosproject/kubejob/internal/logging"
	"github.com/pkg/errors"
)

// ExitError reports that the pod did not succeed. The run itself completed,
// so there is nothing more to print: the process just exits with Code.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ReportError writes a fatal error to the console and returns the process exit code for it
func ReportError(writer io.Writer, err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	logging.NewConsole(writer, false).Errorf("%s", err)
	return 1
}
