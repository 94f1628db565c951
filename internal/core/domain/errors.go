package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent misuse of the field-masked resource model or
// terminal failures of the client. Validation errors are raised
// locally and are never retried.
var (
	// ErrUnknownField indicates a mask was built from an identifier
	// that is not in the field catalog.
	ErrUnknownField = errors.New("unknown field")

	// ErrFieldNotRequested indicates an accessor was used for a field
	// outside the wrapper's mask. The field's state is genuinely
	// unknown, not merely empty; this is a programmer error.
	ErrFieldNotRequested = errors.New("field not in requested mask")

	// ErrNotCreated indicates an operation requiring a server-side
	// identifier was attempted on a wrapper that has none yet.
	ErrNotCreated = errors.New("person not created on server")

	// ErrMaskMismatch indicates an update mask is not a subset of the
	// mask the wrapper was populated with.
	ErrMaskMismatch = errors.New("mask not covered by populated mask")

	// ErrAuthentication indicates credentials are invalid and the
	// interactive consent flow could not complete or was declined.
	ErrAuthentication = errors.New("authentication failed")

	// ErrRateLimited indicates the remote API rejected a call for
	// exceeding its quota. Retryable.
	ErrRateLimited = errors.New("rate limited by server")

	// ErrTransient indicates a transient transport fault (server
	// error, network). Retryable.
	ErrTransient = errors.New("transient transport failure")
)

// IsRetryable reports whether a transport failure may succeed on a
// later attempt. Only the pager retries; single-record operations
// propagate these to the caller.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrRateLimited) || errors.Is(err, ErrTransient)
}

// PagingError reports that bulk retrieval exhausted its retry budget.
// Records gathered before the failure are carried along so the caller
// can decide whether to use the partial result.
type PagingError struct {
	// Records holds the raw records gathered before the failure.
	Records []RawRecord
	// Attempts is the number of attempts made for the failing page.
	Attempts int
	// Err is the last transport failure.
	Err error
}

func (e *PagingError) Error() string {
	return fmt.Sprintf("paging failed after %d attempts with %d records gathered: %v",
		e.Attempts, len(e.Records), e.Err)
}

func (e *PagingError) Unwrap() error {
	return e.Err
}
