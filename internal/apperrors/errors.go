package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrForbidden indicates that the authenticated user may not act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrStorage indicates that the backing store is unreachable or rejected the
// operation for reasons unrelated to the input. Callers may retry.
var ErrStorage = errors.New("storage failure")
