package domain

import "errors"

// User errors. Failed logins are a nil result, not an error, so there is no
// credentials sentinel.
var ErrUserExists = errors.New("employee id already registered")

// Application errors
var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrInvalidStatus       = errors.New("invalid application status")
	ErrDuplicateSubmission = errors.New("identical application submitted within the duplicate window")
	ErrDataEncoding        = errors.New("failed to encode application data")
)
