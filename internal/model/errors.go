package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrPlayerExists   = errors.New("player already exists")

	// ErrMultipleMatches means a lookup that expects a single player found
	// several. The stored data is inconsistent when this happens.
	ErrMultipleMatches = errors.New("multiple players matched")
)

// ConflictError is returned when creating a player whose ID is taken.
// It carries the player already stored under that ID.
type ConflictError struct {
	Existing Player
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("player %d already exists", e.Existing.ID)
}

func (e *ConflictError) Unwrap() error {
	return ErrPlayerExists
}
