package requests

import "errors"

var (
	ErrRequestNotFound = errors.New("rental request not found")

	// ErrNotPending guards the one-directional transition: only pending
	// requests may be approved or rejected.
	ErrNotPending = errors.New("rental request is not pending")
)
