// Package apperr holds the error kinds shared by the engine, the store and the HTTP layer.
package apperr

import "errors"

var (
	// ErrNotFound is returned when a referenced team, match or bracket slot does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when a bracket or record is created twice.
	ErrAlreadyExists = errors.New("already exists")
	// ErrUnresolved is returned when standings or a bracket are requested before any matches exist.
	ErrUnresolved = errors.New("not ready")
	// ErrInvalidParticipant is returned when a declared winner is not one of the match participants.
	ErrInvalidParticipant = errors.New("winner is not part of this match")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
)
