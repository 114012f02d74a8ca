package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates a missing or invalid principal.
var ErrUnauthorized = errors.New("unauthorized")

// ErrStorage indicates a persistence failure. A write that fails with this
// error is surfaced to the caller as a notification; in-memory state is not
// rolled back so the app can keep operating offline.
var ErrStorage = errors.New("storage error")
