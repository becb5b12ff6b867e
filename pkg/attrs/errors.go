// Package attrs implements the ordered attribute stores backing metadata records
package attrs

import "errors"

var (
	// ErrDuplicateKey indicates an Add on a key that already exists
	ErrDuplicateKey = errors.New("attrs: duplicate key")

	// ErrMissingKey indicates a Get or Change on a key that does not exist
	ErrMissingKey = errors.New("attrs: missing key")

	// ErrNotCountable indicates an Increment on a non-integer value
	ErrNotCountable = errors.New("attrs: value is not countable")

	// ErrNotList indicates an Append on a non-list value
	ErrNotList = errors.New("attrs: value is not a list")
)
