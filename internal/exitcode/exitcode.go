// Package exitcode defines the process exit codes of the CLI.
//
// Scripts rely on these staying distinct: an expired session (2) calls
// for a re-login, a backend failure (3) for a retry.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates bad input: unknown command or flag, missing
	// argument, task reference not found.
	UserError = 1

	// AuthError indicates a missing, rejected or expired session.
	AuthError = 2

	// BackendError indicates a backend or network failure.
	BackendError = 3
)
