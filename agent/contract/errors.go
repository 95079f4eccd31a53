package contract

import "errors"

var (
	ErrValidation        = errors.New("validation failed")
	ErrEmptyQuery        = errors.New("query is empty")
	ErrCapabilityUnknown = errors.New("capability is not registered")
)
