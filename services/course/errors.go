package courseService

import "errors"

// Failure taxonomy for the progress and certification core. Handlers map
// these onto HTTP statuses; anything else is a storage failure and
// propagates to the caller unchanged.
var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrPreconditionFailed = errors.New("precondition failed")
)
