// Package entity provides metadata-bearing dataset and data source types
package entity

import "errors"

var (
	// ErrMemberExists indicates an Add with a member key already taken
	ErrMemberExists = errors.New("entity: member key already exists")

	// ErrMemberNotFound indicates a lookup or Change with no such member
	ErrMemberNotFound = errors.New("entity: member not found")
)
