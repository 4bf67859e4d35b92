// pkg/kit_err/wrap.go

package kit_err

import (
	"context"

	cerr "github.com/cockroachdb/errors"
)

// expectedUserError marks mistakes the user can fix themselves (bad
// argument, unsupported platform). They are reported without stack noise
// and never treated as tool failures.
type expectedUserError struct {
	err error
}

func (e *expectedUserError) Error() string { return e.err.Error() }
func (e *expectedUserError) Unwrap() error { return e.err }

// NewExpectedError wraps err as an expected user error.
func NewExpectedError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	return &expectedUserError{err: err}
}

// NewExpectedErrorf formats an expected user error.
func NewExpectedErrorf(ctx context.Context, format string, args ...interface{}) error {
	return &expectedUserError{err: cerr.Newf(format, args...)}
}

// IsExpectedUserError reports whether err (or anything it wraps) is an
// expected user error.
func IsExpectedUserError(err error) bool {
	if err == nil {
		return false
	}
	var ue *expectedUserError
	return cerr.As(err, &ue)
}
