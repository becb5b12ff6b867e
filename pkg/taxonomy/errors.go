// Package taxonomy holds the per-entity set of metadata records
package taxonomy

import "errors"

var (
	// ErrKindNotFound indicates a lookup with no matching record kind
	ErrKindNotFound = errors.New("taxonomy: no matching kind")
)
