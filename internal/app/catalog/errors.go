package catalog

import "errors"

var (
	// ErrInvalidArgument reports a malformed identifier or paging parameter.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidInput reports a ship that fails validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound reports an id that is not present in the store.
	ErrNotFound = errors.New("ship not found")
)
