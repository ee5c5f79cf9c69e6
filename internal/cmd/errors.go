package cmd

import (
	"errors"

	oerrors "github.com/GilTRipper/create-react-native-app/internal/errors"
	"github.com/GilTRipper/create-react-native-app/internal/output"
)

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for ExitError first
	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// Copy and rewrite failures may wrap a permission or not-found cause;
	// the phase that failed decides the code.
	switch {
	case errors.Is(err, oerrors.ErrCopy):
		return ExitCopyFailed
	case errors.Is(err, oerrors.ErrRewrite):
		return ExitRewriteFailed
	case errors.Is(err, oerrors.ErrValidation):
		return ExitValidationError
	case errors.Is(err, oerrors.ErrPermission):
		return ExitPermissionDenied
	case errors.Is(err, oerrors.ErrNotFound):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}

// exitError logs err once and wraps it with its exit code so main does not print it again.
func exitError(err error) error {
	if err == nil {
		return nil
	}

	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	output.Error(err.Error())
	return &oerrors.ExitError{Code: ExitCodeFromError(err), Err: err, Printed: true}
}
