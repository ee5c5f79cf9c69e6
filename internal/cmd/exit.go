// Package cmd provides command implementations for the rnapp CLI.
package cmd

// Exit codes returned by rnapp.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid input: project name, bundle id, target dir or config.
	ExitValidationError = 2

	// ExitPermissionDenied indicates insufficient filesystem permissions.
	ExitPermissionDenied = 4

	// ExitNotFound indicates a template, file or directory was not found.
	ExitNotFound = 5

	// ExitCopyFailed indicates the template could not be copied into the target.
	ExitCopyFailed = 7

	// ExitRewriteFailed indicates identifier rewriting could not run.
	ExitRewriteFailed = 8
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitPermissionDenied:
		return "Permission Denied"
	case ExitNotFound:
		return "Not Found"
	case ExitCopyFailed:
		return "Copy Failed"
	case ExitRewriteFailed:
		return "Rewrite Failed"
	default:
		return "Unknown"
	}
}
