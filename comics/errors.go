package comics

import "errors"

// Every failure the components can produce maps to exactly one of these
// sentinel values. Callers match with errors.Is; wrapped variants carry the
// underlying cause.
var (
	ErrInvalidField      = errors.New("a required field is empty or invalid")
	ErrInvalidID         = errors.New("national id does not match the expected format")
	ErrDuplicateID       = errors.New("national id is already registered")
	ErrNotAuthenticated  = errors.New("no user is registered in this session")
	ErrPermissionDenied  = errors.New("active user does not have permission for this operation")
	ErrNotFound          = errors.New("comic not found")
	ErrDuplicateCode     = errors.New("comic code already exists")
	ErrAlreadyReserved   = errors.New("comic is already reserved")
	ErrNothingReserved   = errors.New("there are no reserved comics")
	ErrCodePoolExhausted = errors.New("all comic codes have been issued")
	ErrPersistence       = errors.New("could not save the catalog")
	ErrReport            = errors.New("could not export the report")
)
