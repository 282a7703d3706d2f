package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
// For session-scoped lookups this also covers rows owned by another session;
// the two cases are deliberately indistinguishable to the caller.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")
