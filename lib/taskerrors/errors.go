package taskerrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds surfaced by every task. Match them with errors.Is.
var (
	ErrConfiguration         = errors.New("configuration error")
	ErrValidation            = errors.New("validation error")
	ErrAuthorizationMismatch = errors.New("authorization mismatch")
	ErrRemoteRead            = errors.New("remote read error")
	ErrRemoteRejection       = errors.New("remote rejection")
)

// kindError tags a cause with one of the error kinds above.
type kindError struct {
	kind  error
	cause error
}

func (e *kindError) Error() string {
	return e.kind.Error() + ": " + e.cause.Error()
}

func (e *kindError) Unwrap() error {
	return e.cause
}

// Cause lets errors.Cause walk down to the original failure.
func (e *kindError) Cause() error {
	return e.cause
}

func (e *kindError) Is(target error) bool {
	return target == e.kind
}

// New returns an error of the given kind with a formatted message.
func New(kind error, format string, args ...interface{}) error {
	return &kindError{kind: kind, cause: errors.New(fmt.Sprintf(format, args...))}
}

// Wrap tags err with kind, prefixing it with msg. A nil err returns nil.
func Wrap(kind error, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &kindError{kind: kind, cause: errors.Wrap(err, msg)}
}

func Wrapf(kind error, err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &kindError{kind: kind, cause: errors.Wrapf(err, format, args...)}
}

// Kind reports which error kind err carries, or nil if it carries none.
func Kind(err error) error {
	for _, kind := range []error{ErrConfiguration, ErrValidation, ErrAuthorizationMismatch, ErrRemoteRead, ErrRemoteRejection} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
