package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/macropower/configdoc/pkg/configdoc"
)

// ExitCode returns the process exit code for an error returned by a command.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *configdoc.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return 1
}

// PrintError writes err to w, unless the command already reported it.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}

	var exitErr *configdoc.ExitError
	if errors.As(err, &exitErr) {
		return
	}

	fmt.Fprintf(w, "Error: %s\n", strings.TrimLeft(err.Error(), "\n"))
}
