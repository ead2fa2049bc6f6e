package portal

import "errors"

var (
	// ErrForbidden rejects a write attempted outside the caller's
	// permitted scope. It must fire before the store is touched.
	ErrForbidden = errors.New("portal: forbidden")

	// ErrNotFound reports a missing record.
	ErrNotFound = errors.New("portal: not found")

	// ErrAlreadyEnrolled reports a duplicate (student, course) pair.
	ErrAlreadyEnrolled = errors.New("portal: already enrolled")

	// ErrInvalid marks a caller mistake (bad field, bad value)
	// that is safe to echo back. Anything else stays internal.
	ErrInvalid = errors.New("portal: invalid request")

	// ErrProfileLoad reports that a profile could not be read or
	// created. Callers must surface it, never degrade to guest.
	ErrProfileLoad = errors.New("portal: profile load failed")
)
