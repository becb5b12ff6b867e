package record

import "errors"

var (
	// ErrNotCollection indicates a collection record was requested for an
	// entity that does not expose a member mapping
	ErrNotCollection = errors.New("record: entity is not a collection")
)
