package commands

import (
	"errors"
	"fmt"
	"io"

	"tareas/internal/exitcode"
	"tareas/internal/service"
)

// reportRemoteErr prints a remote failure and returns the exit code for
// it. Auth rejections get their own code so scripts can distinguish an
// expired session from a broken backend.
func reportRemoteErr(errOut io.Writer, err error) int {
	if errors.Is(err, service.ErrAuth) {
		fmt.Fprintf(errOut, "error: auth error: %v (run: tareas login)\n", err)
		return exitcode.AuthError
	}
	fmt.Fprintf(errOut, "error: backend error: %v\n", err)
	return exitcode.BackendError
}

// isNotFound reports whether err is a 404 rejection.
func isNotFound(err error) bool {
	var apiErr *service.APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}
