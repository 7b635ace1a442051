package cli

import (
	stderrors "errors"

	"github.com/arthur-debert/frece/pkg/errors"
)

// Process exit codes
const (
	ExitOK      = 0
	ExitError   = 1
	ExitUsage   = 2
	ExitPartial = 3
)

// exitError carries an exit code for an outcome that has already been
// rendered. Execute prints nothing further for it.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return "exit status"
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func silentExit(code int, err error) error {
	return &exitError{code: code, err: err}
}

// usageError marks argument and flag problems.
func usageError(err error) error {
	if err == nil {
		return nil
	}
	var fe *errors.FreceError
	if stderrors.As(err, &fe) {
		return err
	}
	return errors.Wrap(err, errors.ErrInvalidInput, "invalid usage")
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *exitError
	if stderrors.As(err, &ee) {
		return ee.code
	}
	switch errors.GetErrorCode(err) {
	case errors.ErrInvalidInput, errors.ErrInvalidExtensionFilter, errors.ErrInvalidCommand:
		return ExitUsage
	}
	return ExitError
}

func isSilent(err error) bool {
	var ee *exitError
	return stderrors.As(err, &ee)
}
